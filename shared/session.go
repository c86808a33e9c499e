// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shared

// Role is a closed set of marketplace roles. Only this package can add variants.
type Role interface {
	roleName() string
	// SubjectID is the identity id the role acts for.
	SubjectID() string
}

type AthleteRole struct {
	AthleteID string
}

type BrandRole struct {
	BrandID string
}

// DirectorRole is an athletic director. Directors read every application and deal but never act on them.
type DirectorRole struct {
	UserID string
}

func (AthleteRole) roleName() string  { return "athlete" }
func (BrandRole) roleName() string    { return "brand" }
func (DirectorRole) roleName() string { return "director" }

func (r AthleteRole) SubjectID() string  { return r.AthleteID }
func (r BrandRole) SubjectID() string    { return r.BrandID }
func (r DirectorRole) SubjectID() string { return r.UserID }

func RoleName(r Role) string {
	if r == nil {
		return "none"
	}
	return r.roleName()
}

// ParseRole builds the role variant from the identity metadata. Unknown roles yield nil.
func ParseRole(userID string, metadata map[string]any) Role {
	name, _ := metadata["role"].(string)
	switch name {
	case "athlete":
		return AthleteRole{AthleteID: userID}
	case "brand":
		return BrandRole{BrandID: userID}
	case "director":
		return DirectorRole{UserID: userID}
	}
	return nil
}

type AuthSession interface {
	GetUserID() string
	GetEmail() string
	GetRole() Role
}
