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

package statemachine

import (
	"fmt"
	"strings"
	"time"

	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/l3montree-dev/dealflow/utils"
)

// RequiredParties returns the party types whose signature completes the contract.
func RequiredParties(contract models.Contract) []dtos.PartyType {
	required := []dtos.PartyType{dtos.PartyTypeAthlete, dtos.PartyTypeBrand}
	if contract.RequiresGuardianSignature {
		required = append(required, dtos.PartyTypeGuardian)
	}
	if contract.RequiresWitness {
		required = append(required, dtos.PartyTypeWitness)
	}
	return required
}

// HasBeenSent is true once a send was recorded or any party acted.
func HasBeenSent(contract models.Contract) bool {
	if contract.SentAt != nil {
		return true
	}
	for _, party := range contract.Parties {
		if party.SignatureStatus != dtos.SignatureStatusPending {
			return true
		}
	}
	return false
}

func IsPastExpiration(contract models.Contract, now time.Time) bool {
	return contract.ExpirationDate != nil && now.After(*contract.ExpirationDate)
}

// DeriveContractStatus computes the status from the full signature set.
// It only depends on the current state, never on the order signatures arrived in.
func DeriveContractStatus(contract models.Contract, now time.Time) dtos.ContractStatus {
	if contract.Status.IsFrozen() {
		return contract.Status
	}
	if IsPastExpiration(contract, now) {
		return dtos.ContractStatusExpired
	}
	if !HasBeenSent(contract) {
		return dtos.ContractStatusDraft
	}

	required := RequiredParties(contract)
	signed := 0
	for _, partyType := range required {
		party := contract.Party(partyType)
		if party != nil && party.SignatureStatus == dtos.SignatureStatusSigned {
			signed++
		}
	}

	switch {
	case signed == 0:
		return dtos.ContractStatusPendingSignature
	case signed < len(required):
		return dtos.ContractStatusPartiallySigned
	}
	if contract.EffectiveDate != nil && !contract.EffectiveDate.After(now) {
		return dtos.ContractStatusActive
	}
	return dtos.ContractStatusFullySigned
}

// ValidateContract lists every rule the contract violates. An empty result means it may leave draft.
func ValidateContract(contract models.Contract) []string {
	violations := []string{}

	if strings.TrimSpace(contract.Title) == "" {
		violations = append(violations, "contract title is required")
	}
	if contract.CompensationAmount < 0 {
		violations = append(violations, "compensation amount must not be negative")
	}
	if contract.EffectiveDate != nil && contract.ExpirationDate != nil && !contract.ExpirationDate.After(*contract.EffectiveDate) {
		violations = append(violations, "expiration date must be after the effective date")
	}

	for _, clause := range contract.Clauses {
		if clause.IsRequired && !clause.HasContent() {
			violations = append(violations, fmt.Sprintf("required clause %q has no content", clause.Title))
		}
	}

	counts := map[dtos.PartyType]int{}
	for _, party := range contract.Parties {
		if !party.PartyType.IsValid() {
			violations = append(violations, fmt.Sprintf("unknown party type %q", party.PartyType))
			continue
		}
		counts[party.PartyType]++
		if strings.TrimSpace(party.Name) == "" {
			violations = append(violations, fmt.Sprintf("%s party requires a name", party.PartyType))
		}
		if strings.TrimSpace(party.Email) == "" {
			violations = append(violations, fmt.Sprintf("%s party requires an email", party.PartyType))
		}
	}

	for _, partyType := range []dtos.PartyType{dtos.PartyTypeAthlete, dtos.PartyTypeBrand} {
		if counts[partyType] != 1 {
			violations = append(violations, fmt.Sprintf("exactly one %s party is required", partyType))
		}
	}
	violations = append(violations, optionalPartyViolations(dtos.PartyTypeGuardian, contract.RequiresGuardianSignature, counts[dtos.PartyTypeGuardian])...)
	violations = append(violations, optionalPartyViolations(dtos.PartyTypeWitness, contract.RequiresWitness, counts[dtos.PartyTypeWitness])...)
	violations = append(violations, sharedEmailViolations(contract)...)

	return violations
}

// sharedEmailViolations flags a guardian or witness signing with the email of another party.
// Guardian and witness act through their email, so a shared one lets a single person sign twice.
func sharedEmailViolations(contract models.Contract) []string {
	violations := []string{}
	seen := map[string]dtos.PartyType{}
	for _, partyType := range []dtos.PartyType{dtos.PartyTypeAthlete, dtos.PartyTypeBrand, dtos.PartyTypeGuardian, dtos.PartyTypeWitness} {
		party := contract.Party(partyType)
		if party == nil {
			continue
		}
		email := strings.ToLower(strings.TrimSpace(party.Email))
		if email == "" {
			continue
		}
		if other, ok := seen[email]; ok && (partyType == dtos.PartyTypeGuardian || partyType == dtos.PartyTypeWitness) {
			violations = append(violations, fmt.Sprintf("%s party must not use the email of the %s party", partyType, other))
			continue
		}
		seen[email] = partyType
	}
	return violations
}

func optionalPartyViolations(partyType dtos.PartyType, required bool, count int) []string {
	switch {
	case required && count != 1:
		return []string{fmt.Sprintf("exactly one %s party is required", partyType)}
	case !required && count > 0:
		return []string{fmt.Sprintf("%s party is present but not required", partyType)}
	}
	return nil
}

func SendContract(contract *models.Contract, now time.Time) error {
	if contract.Status != dtos.ContractStatusDraft {
		return shared.NewError(shared.ErrKindInvalidTransition, "only draft contracts can be sent, contract is %s", contract.Status)
	}
	if err := shared.NewValidationError(ValidateContract(*contract)); err != nil {
		return err
	}
	contract.SentAt = &now
	contract.Status = DeriveContractStatus(*contract, now)
	return nil
}

// CheckPartyCanAct returns NotSignable, a validation error for an absent party, or AlreadyActed.
func CheckPartyCanAct(contract models.Contract, partyType dtos.PartyType) error {
	if contract.Status != dtos.ContractStatusPendingSignature && contract.Status != dtos.ContractStatusPartiallySigned {
		return shared.NewError(shared.ErrKindNotSignable, "contract is %s", contract.Status)
	}
	party := contract.Party(partyType)
	if party == nil {
		return shared.NewError(shared.ErrKindValidation, "contract has no %s party", partyType)
	}
	if party.SignatureStatus != dtos.SignatureStatusPending {
		return shared.NewError(shared.ErrKindAlreadyActed, "%s party already %s", partyType, party.SignatureStatus)
	}
	return nil
}

func SignContract(contract *models.Contract, partyType dtos.PartyType, actorID string, now time.Time) error {
	if err := CheckPartyCanAct(*contract, partyType); err != nil {
		return err
	}
	party := contract.Party(partyType)
	party.SignatureStatus = dtos.SignatureStatusSigned
	party.SignedAt = &now
	party.ActedBy = &actorID
	contract.Status = DeriveContractStatus(*contract, now)
	return nil
}

// DeclineContract records the decline. The contract keeps its status, voiding is up to the caller.
func DeclineContract(contract *models.Contract, partyType dtos.PartyType, actorID string) error {
	if err := CheckPartyCanAct(*contract, partyType); err != nil {
		return err
	}
	party := contract.Party(partyType)
	party.SignatureStatus = dtos.SignatureStatusDeclined
	party.ActedBy = &actorID
	return nil
}

func VoidContract(contract *models.Contract, reason string) error {
	if contract.Status.IsTerminal() {
		return shared.NewError(shared.ErrKindInvalidTransition, "contract is already %s", contract.Status)
	}
	contract.Status = dtos.ContractStatusVoided
	contract.VoidReason = utils.EmptyThenNil(reason)
	return nil
}

func CancelContract(contract *models.Contract) error {
	if contract.Status.IsTerminal() {
		return shared.NewError(shared.ErrKindInvalidTransition, "contract is already %s", contract.Status)
	}
	contract.Status = dtos.ContractStatusCancelled
	return nil
}

// DealStatusFor maps a contract status onto the deal it governs.
// A dead contract puts the deal back to accepted so a new contract can be issued.
// Statuses without a deal consequence return false.
func DealStatusFor(status dtos.ContractStatus) (dtos.DealStatus, bool) {
	switch status {
	case dtos.ContractStatusFullySigned:
		return dtos.DealStatusContracted, true
	case dtos.ContractStatusActive:
		return dtos.DealStatusActive, true
	case dtos.ContractStatusVoided, dtos.ContractStatusCancelled, dtos.ContractStatusExpired:
		return dtos.DealStatusAccepted, true
	}
	return "", false
}
