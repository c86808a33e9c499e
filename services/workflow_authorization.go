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

package services

import (
	"strings"

	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/shared"
)

func unauthorized(format string, args ...any) error {
	return shared.NewError(shared.ErrKindUnauthorized, format, args...)
}

func requireActor(actor shared.AuthSession) error {
	if actor == nil || actor.GetUserID() == "" {
		return shared.NewError(shared.ErrKindUnauthenticated, "no user session")
	}
	return nil
}

func athleteOf(actor shared.AuthSession) (string, error) {
	if err := requireActor(actor); err != nil {
		return "", err
	}
	role, ok := actor.GetRole().(shared.AthleteRole)
	if !ok {
		return "", unauthorized("only athletes can do this, user is %s", shared.RoleName(actor.GetRole()))
	}
	return role.AthleteID, nil
}

func brandOf(actor shared.AuthSession) (string, error) {
	if err := requireActor(actor); err != nil {
		return "", err
	}
	role, ok := actor.GetRole().(shared.BrandRole)
	if !ok {
		return "", unauthorized("only brands can do this, user is %s", shared.RoleName(actor.GetRole()))
	}
	return role.BrandID, nil
}

// canReadApplication grants the applying athlete, the brand owning the opportunity and directors.
func canReadApplication(actor shared.AuthSession, application models.Application) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	switch role := actor.GetRole().(type) {
	case shared.AthleteRole:
		if role.AthleteID == application.AthleteID {
			return nil
		}
	case shared.BrandRole:
		if role.BrandID == application.Opportunity.BrandID {
			return nil
		}
	case shared.DirectorRole:
		return nil
	}
	return unauthorized("no access to application %s", application.ID)
}

// canReadDeal grants both deal participants and directors.
func canReadDeal(actor shared.AuthSession, deal models.Deal) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	switch role := actor.GetRole().(type) {
	case shared.AthleteRole, shared.BrandRole:
		if deal.IsParticipant(role.SubjectID()) {
			return nil
		}
	case shared.DirectorRole:
		return nil
	}
	return unauthorized("no access to deal %s", deal.ID)
}

func isDealBrand(actor shared.AuthSession, deal models.Deal) error {
	brandID, err := brandOf(actor)
	if err != nil {
		return err
	}
	if brandID != deal.BrandID {
		return unauthorized("deal %s belongs to another brand", deal.ID)
	}
	return nil
}

func emailMatches(actor shared.AuthSession, party *models.SignatureParty) bool {
	email := strings.TrimSpace(actor.GetEmail())
	return party != nil && email != "" && strings.EqualFold(email, strings.TrimSpace(party.Email))
}

// canReadContract extends deal access to guardians and witnesses listed on the contract.
func canReadContract(actor shared.AuthSession, deal models.Deal, contract models.Contract) error {
	if err := canReadDeal(actor, deal); err == nil || shared.IsKind(err, shared.ErrKindUnauthenticated) {
		return err
	}
	if emailMatches(actor, contract.Party(dtos.PartyTypeGuardian)) || emailMatches(actor, contract.Party(dtos.PartyTypeWitness)) {
		return nil
	}
	return unauthorized("no access to contract %s", contract.ID)
}

// canActAsParty decides who may sign or decline for a party.
// Athlete and brand parties act through their role, guardian and witness through the party email.
// The deal's own athlete or brand never acts for a guardian or witness.
func canActAsParty(actor shared.AuthSession, deal models.Deal, contract models.Contract, partyType dtos.PartyType) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	switch partyType {
	case dtos.PartyTypeAthlete:
		if role, ok := actor.GetRole().(shared.AthleteRole); ok && role.AthleteID == deal.AthleteID {
			return nil
		}
	case dtos.PartyTypeBrand:
		if role, ok := actor.GetRole().(shared.BrandRole); ok && role.BrandID == deal.BrandID {
			return nil
		}
	case dtos.PartyTypeGuardian, dtos.PartyTypeWitness:
		if deal.IsParticipant(actor.GetUserID()) {
			return unauthorized("a deal participant cannot act as %s party of contract %s", partyType, contract.ID)
		}
		if emailMatches(actor, contract.Party(partyType)) {
			return nil
		}
	default:
		return shared.NewValidationError([]string{"unknown party type " + string(partyType)})
	}
	return unauthorized("user cannot act as %s party of contract %s", partyType, contract.ID)
}
