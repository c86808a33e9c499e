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

package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/shared"
	"gorm.io/gorm"
)

type contractRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Contract]
}

func NewContractRepository(db *gorm.DB) *contractRepository {
	return &contractRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Contract](db),
	}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Clauses", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Preload("Parties")
}

func (r *contractRepository) ReadWithRelations(tx shared.DB, id uuid.UUID) (models.Contract, error) {
	var contract models.Contract
	err := lockedIfTx(tx, withRelations(r.GetDB(tx))).First(&contract, "contracts.id = ?", id).Error
	return contract, err
}

func (r *contractRepository) FindLiveByDeal(tx shared.DB, dealID uuid.UUID) (models.Contract, error) {
	var contract models.Contract
	err := lockedIfTx(tx, withRelations(r.GetDB(tx))).
		Where("deal_id = ? AND status NOT IN ?", dealID, []dtos.ContractStatus{dtos.ContractStatusVoided, dtos.ContractStatusCancelled}).
		Order("created_at DESC").
		First(&contract).Error
	return contract, err
}

func (r *contractRepository) CompareAndSetSignature(tx shared.DB, contractID uuid.UUID, partyType dtos.PartyType, to dtos.SignatureStatus, actedBy string, at time.Time) (bool, error) {
	updates := map[string]any{
		"signature_status": to,
		"acted_by":         actedBy,
		"updated_at":       at,
	}
	if to == dtos.SignatureStatusSigned {
		updates["signed_at"] = at
	}
	res := r.GetDB(tx).Model(&models.SignatureParty{}).
		Where("contract_id = ? AND party_type = ? AND signature_status = ?", contractID, partyType, dtos.SignatureStatusPending).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *contractRepository) ExpirePendingParties(tx shared.DB, contractID uuid.UUID) error {
	return r.GetDB(tx).Model(&models.SignatureParty{}).
		Where("contract_id = ? AND signature_status = ?", contractID, dtos.SignatureStatusPending).
		Update("signature_status", dtos.SignatureStatusExpired).Error
}

func (r *contractRepository) UpdateState(tx shared.DB, contract *models.Contract) error {
	return r.GetDB(tx).Model(&models.Contract{}).Where("id = ?", contract.ID).Updates(map[string]any{
		"status":      contract.Status,
		"sent_at":     contract.SentAt,
		"void_reason": contract.VoidReason,
		"updated_at":  time.Now(),
	}).Error
}

// ListDue returns the contracts whose stored status lags behind their dates: past the expiration
// date or fully signed with the effective date reached.
func (r *contractRepository) ListDue(now time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Contract{}).
		Where("status NOT IN ?", []dtos.ContractStatus{dtos.ContractStatusExpired, dtos.ContractStatusCancelled, dtos.ContractStatusVoided}).
		Where("((expiration_date IS NOT NULL AND expiration_date < ?) OR (status = ? AND effective_date IS NOT NULL AND effective_date <= ?))",
			now, dtos.ContractStatusFullySigned, now).
		Order("created_at ASC").
		Pluck("id", &ids).Error
	return ids, err
}
