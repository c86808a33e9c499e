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
	"testing"
	"time"

	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/shared"
	"github.com/l3montree-dev/dealflow/utils"
	"github.com/stretchr/testify/assert"
)

func party(partyType dtos.PartyType) models.SignatureParty {
	return models.SignatureParty{
		PartyType:       partyType,
		Name:            string(partyType) + " name",
		Email:           string(partyType) + "@example.com",
		SignatureStatus: dtos.SignatureStatusPending,
	}
}

func draftContract() models.Contract {
	return models.Contract{
		Title:              "Endorsement",
		CompensationAmount: 5000,
		Status:             dtos.ContractStatusDraft,
		Clauses: []models.Clause{
			{Title: "Compensation", Content: "5000 USD", IsRequired: true, Order: 1},
			{Title: "Notes", IsRequired: false, Order: 2},
		},
		Parties: []models.SignatureParty{party(dtos.PartyTypeAthlete), party(dtos.PartyTypeBrand)},
	}
}

func sentContract(t *testing.T, now time.Time) models.Contract {
	contract := draftContract()
	assert.NoError(t, SendContract(&contract, now))
	return contract
}

func TestDeriveContractStatus(t *testing.T) {
	now := time.Now()

	t.Run("should stay draft when never sent", func(t *testing.T) {
		assert.Equal(t, dtos.ContractStatusDraft, DeriveContractStatus(draftContract(), now))
	})

	t.Run("should be pending signature after send", func(t *testing.T) {
		contract := draftContract()
		contract.SentAt = &now
		assert.Equal(t, dtos.ContractStatusPendingSignature, DeriveContractStatus(contract, now))
	})

	t.Run("should treat an acted party as sent", func(t *testing.T) {
		contract := draftContract()
		contract.Parties[0].SignatureStatus = dtos.SignatureStatusDeclined
		assert.Equal(t, dtos.ContractStatusPendingSignature, DeriveContractStatus(contract, now))
	})

	t.Run("should be partially signed with one of two signatures", func(t *testing.T) {
		contract := sentContract(t, now)
		contract.Parties[0].SignatureStatus = dtos.SignatureStatusSigned
		assert.Equal(t, dtos.ContractStatusPartiallySigned, DeriveContractStatus(contract, now))
	})

	t.Run("should be fully signed without effective date", func(t *testing.T) {
		contract := sentContract(t, now)
		contract.Parties[0].SignatureStatus = dtos.SignatureStatusSigned
		contract.Parties[1].SignatureStatus = dtos.SignatureStatusSigned
		assert.Equal(t, dtos.ContractStatusFullySigned, DeriveContractStatus(contract, now))
	})

	t.Run("should advance to active once the effective date is reached", func(t *testing.T) {
		contract := sentContract(t, now)
		contract.Parties[0].SignatureStatus = dtos.SignatureStatusSigned
		contract.Parties[1].SignatureStatus = dtos.SignatureStatusSigned

		contract.EffectiveDate = utils.Ptr(now.Add(time.Hour))
		assert.Equal(t, dtos.ContractStatusFullySigned, DeriveContractStatus(contract, now))

		contract.EffectiveDate = &now
		assert.Equal(t, dtos.ContractStatusActive, DeriveContractStatus(contract, now))
	})

	t.Run("should remain partially signed while the guardian is missing", func(t *testing.T) {
		contract := draftContract()
		contract.RequiresGuardianSignature = true
		contract.Parties = append(contract.Parties, party(dtos.PartyTypeGuardian))
		assert.NoError(t, SendContract(&contract, now))

		assert.NoError(t, SignContract(&contract, dtos.PartyTypeAthlete, "athlete-1", now))
		assert.NoError(t, SignContract(&contract, dtos.PartyTypeBrand, "brand-1", now))

		assert.Equal(t, dtos.ContractStatusPartiallySigned, contract.Status)
	})

	t.Run("should expire past the expiration date", func(t *testing.T) {
		contract := sentContract(t, now)
		contract.ExpirationDate = utils.Ptr(now.Add(-time.Minute))
		assert.Equal(t, dtos.ContractStatusExpired, DeriveContractStatus(contract, now))
	})

	t.Run("should expire an active contract", func(t *testing.T) {
		contract := sentContract(t, now)
		contract.Status = dtos.ContractStatusActive
		contract.ExpirationDate = utils.Ptr(now.Add(-time.Minute))
		assert.Equal(t, dtos.ContractStatusExpired, DeriveContractStatus(contract, now))
	})

	t.Run("should not touch voided, cancelled or expired contracts", func(t *testing.T) {
		for _, status := range []dtos.ContractStatus{dtos.ContractStatusVoided, dtos.ContractStatusCancelled, dtos.ContractStatusExpired} {
			contract := sentContract(t, now)
			contract.Status = status
			contract.Parties[0].SignatureStatus = dtos.SignatureStatusSigned
			contract.Parties[1].SignatureStatus = dtos.SignatureStatusSigned
			assert.Equal(t, status, DeriveContractStatus(contract, now))
		}
	})

	t.Run("should be idempotent", func(t *testing.T) {
		contract := sentContract(t, now)
		contract.Parties[1].SignatureStatus = dtos.SignatureStatusSigned
		first := DeriveContractStatus(contract, now)
		contract.Status = first
		assert.Equal(t, first, DeriveContractStatus(contract, now))
	})
}

func TestSignContract(t *testing.T) {
	now := time.Now()

	t.Run("should yield the same status regardless of signing order", func(t *testing.T) {
		athleteFirst := sentContract(t, now)
		assert.NoError(t, SignContract(&athleteFirst, dtos.PartyTypeAthlete, "athlete-1", now))
		assert.NoError(t, SignContract(&athleteFirst, dtos.PartyTypeBrand, "brand-1", now))

		brandFirst := sentContract(t, now)
		assert.NoError(t, SignContract(&brandFirst, dtos.PartyTypeBrand, "brand-1", now))
		assert.NoError(t, SignContract(&brandFirst, dtos.PartyTypeAthlete, "athlete-1", now))

		assert.Equal(t, dtos.ContractStatusFullySigned, athleteFirst.Status)
		assert.Equal(t, athleteFirst.Status, brandFirst.Status)
	})

	t.Run("should record signer and time", func(t *testing.T) {
		contract := sentContract(t, now)
		assert.NoError(t, SignContract(&contract, dtos.PartyTypeAthlete, "athlete-1", now))

		signed := contract.Party(dtos.PartyTypeAthlete)
		assert.Equal(t, dtos.SignatureStatusSigned, signed.SignatureStatus)
		assert.Equal(t, now, *signed.SignedAt)
		assert.Equal(t, "athlete-1", *signed.ActedBy)
		assert.Equal(t, dtos.ContractStatusPartiallySigned, contract.Status)
	})

	t.Run("should fail with already acted on a second signature", func(t *testing.T) {
		contract := sentContract(t, now)
		assert.NoError(t, SignContract(&contract, dtos.PartyTypeAthlete, "athlete-1", now))
		assert.ErrorIs(t, SignContract(&contract, dtos.PartyTypeAthlete, "athlete-1", now), shared.ErrAlreadyActed)
	})

	t.Run("should fail with already acted after a decline", func(t *testing.T) {
		contract := sentContract(t, now)
		assert.NoError(t, DeclineContract(&contract, dtos.PartyTypeBrand, "brand-1"))
		assert.ErrorIs(t, SignContract(&contract, dtos.PartyTypeBrand, "brand-1", now), shared.ErrAlreadyActed)
	})

	t.Run("should not sign a draft", func(t *testing.T) {
		contract := draftContract()
		assert.ErrorIs(t, SignContract(&contract, dtos.PartyTypeAthlete, "athlete-1", now), shared.ErrNotSignable)
	})

	t.Run("should not sign a voided contract", func(t *testing.T) {
		contract := sentContract(t, now)
		assert.NoError(t, VoidContract(&contract, "wrong terms"))
		assert.ErrorIs(t, SignContract(&contract, dtos.PartyTypeAthlete, "athlete-1", now), shared.ErrNotSignable)
	})

	t.Run("should reject a party that is not on the contract", func(t *testing.T) {
		contract := sentContract(t, now)
		assert.ErrorIs(t, SignContract(&contract, dtos.PartyTypeWitness, "someone", now), shared.ErrValidation)
	})
}

func TestDeclineContract(t *testing.T) {
	now := time.Now()

	t.Run("should keep the status when a party declines", func(t *testing.T) {
		contract := sentContract(t, now)
		assert.NoError(t, SignContract(&contract, dtos.PartyTypeAthlete, "athlete-1", now))

		assert.NoError(t, DeclineContract(&contract, dtos.PartyTypeBrand, "brand-1"))

		assert.Equal(t, dtos.ContractStatusPartiallySigned, contract.Status)
		assert.Equal(t, dtos.ContractStatusPartiallySigned, DeriveContractStatus(contract, now))
		assert.Equal(t, dtos.SignatureStatusDeclined, contract.Party(dtos.PartyTypeBrand).SignatureStatus)
	})
}

func TestSendContract(t *testing.T) {
	now := time.Now()

	t.Run("should move a valid draft to pending signature", func(t *testing.T) {
		contract := draftContract()
		assert.NoError(t, SendContract(&contract, now))
		assert.Equal(t, dtos.ContractStatusPendingSignature, contract.Status)
		assert.Equal(t, now, *contract.SentAt)
	})

	t.Run("should not send twice", func(t *testing.T) {
		contract := sentContract(t, now)
		assert.ErrorIs(t, SendContract(&contract, now), shared.ErrInvalidTransition)
	})

	t.Run("should refuse to send with an empty required clause", func(t *testing.T) {
		contract := draftContract()
		contract.Clauses[0].Content = "   "
		err := SendContract(&contract, now)
		assert.ErrorIs(t, err, shared.ErrValidation)
		assert.Nil(t, contract.SentAt)
		assert.Equal(t, dtos.ContractStatusDraft, contract.Status)
	})
}

func TestValidateContract(t *testing.T) {
	t.Run("should accept a complete two party contract", func(t *testing.T) {
		assert.Empty(t, ValidateContract(draftContract()))
	})

	t.Run("should list every violation", func(t *testing.T) {
		contract := draftContract()
		contract.Clauses[0].Content = ""
		contract.Parties = []models.SignatureParty{{PartyType: dtos.PartyTypeAthlete, SignatureStatus: dtos.SignatureStatusPending}}
		contract.RequiresWitness = true

		violations := ValidateContract(contract)

		assert.ElementsMatch(t, []string{
			`required clause "Compensation" has no content`,
			"athlete party requires a name",
			"athlete party requires an email",
			"exactly one brand party is required",
			"exactly one witness party is required",
		}, violations)
	})

	t.Run("should flag a guardian that is not required", func(t *testing.T) {
		contract := draftContract()
		contract.Parties = append(contract.Parties, party(dtos.PartyTypeGuardian))
		assert.Equal(t, []string{"guardian party is present but not required"}, ValidateContract(contract))
	})

	t.Run("should flag duplicate parties", func(t *testing.T) {
		contract := draftContract()
		contract.Parties = append(contract.Parties, party(dtos.PartyTypeBrand))
		assert.Equal(t, []string{"exactly one brand party is required"}, ValidateContract(contract))
	})

	t.Run("should flag a guardian or witness using the email of another party", func(t *testing.T) {
		contract := draftContract()
		contract.RequiresGuardianSignature = true
		contract.RequiresWitness = true
		guardian := party(dtos.PartyTypeGuardian)
		guardian.Email = " BRAND@example.com"
		witness := party(dtos.PartyTypeWitness)
		witness.Email = "athlete@example.com"
		contract.Parties = append(contract.Parties, guardian, witness)

		assert.ElementsMatch(t, []string{
			"guardian party must not use the email of the brand party",
			"witness party must not use the email of the athlete party",
		}, ValidateContract(contract))
	})

	t.Run("should flag a witness sharing the guardian email", func(t *testing.T) {
		contract := draftContract()
		contract.RequiresGuardianSignature = true
		contract.RequiresWitness = true
		witness := party(dtos.PartyTypeWitness)
		witness.Email = "guardian@example.com"
		contract.Parties = append(contract.Parties, party(dtos.PartyTypeGuardian), witness)

		assert.Equal(t, []string{"witness party must not use the email of the guardian party"}, ValidateContract(contract))
	})

	t.Run("should flag inverted dates", func(t *testing.T) {
		contract := draftContract()
		now := time.Now()
		contract.EffectiveDate = &now
		contract.ExpirationDate = utils.Ptr(now.Add(-time.Hour))
		assert.Equal(t, []string{"expiration date must be after the effective date"}, ValidateContract(contract))
	})
}

func TestVoidAndCancelContract(t *testing.T) {
	now := time.Now()

	t.Run("should void with a reason", func(t *testing.T) {
		contract := sentContract(t, now)
		assert.NoError(t, VoidContract(&contract, "superseded"))
		assert.Equal(t, dtos.ContractStatusVoided, contract.Status)
		assert.Equal(t, "superseded", *contract.VoidReason)
	})

	t.Run("should void without a reason", func(t *testing.T) {
		contract := sentContract(t, now)
		assert.NoError(t, VoidContract(&contract, " "))
		assert.Equal(t, dtos.ContractStatusVoided, contract.Status)
		assert.Nil(t, contract.VoidReason)
	})

	t.Run("should void an expired contract", func(t *testing.T) {
		contract := sentContract(t, now)
		contract.Status = dtos.ContractStatusExpired
		assert.NoError(t, VoidContract(&contract, "cleanup"))
	})

	t.Run("should not void or cancel twice", func(t *testing.T) {
		contract := draftContract()
		assert.NoError(t, CancelContract(&contract))
		assert.Equal(t, dtos.ContractStatusCancelled, contract.Status)
		assert.ErrorIs(t, CancelContract(&contract), shared.ErrInvalidTransition)
		assert.ErrorIs(t, VoidContract(&contract, "reason"), shared.ErrInvalidTransition)
	})
}

func TestDealStatusFor(t *testing.T) {
	status, ok := DealStatusFor(dtos.ContractStatusFullySigned)
	assert.True(t, ok)
	assert.Equal(t, dtos.DealStatusContracted, status)

	status, ok = DealStatusFor(dtos.ContractStatusActive)
	assert.True(t, ok)
	assert.Equal(t, dtos.DealStatusActive, status)

	status, ok = DealStatusFor(dtos.ContractStatusVoided)
	assert.True(t, ok)
	assert.Equal(t, dtos.DealStatusAccepted, status)

	_, ok = DealStatusFor(dtos.ContractStatusPartiallySigned)
	assert.False(t, ok)
}
