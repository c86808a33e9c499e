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

package accesscontrol

import "github.com/l3montree-dev/dealflow/shared"

type session struct {
	userID string
	email  string
	role   shared.Role
}

// NoSession is set for requests without a valid identity. Every workflow operation rejects it.
var NoSession = &session{}

func NewSession(userID string, email string, role shared.Role) *session {
	return &session{
		userID: userID,
		email:  email,
		role:   role,
	}
}

func (s *session) GetUserID() string {
	return s.userID
}

func (s *session) GetEmail() string {
	return s.email
}

func (s *session) GetRole() shared.Role {
	return s.role
}

var _ shared.AuthSession = (*session)(nil)
