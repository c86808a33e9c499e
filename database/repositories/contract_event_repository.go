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
	"github.com/google/uuid"
	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/shared"
	"gorm.io/gorm"
)

type contractEventRepository struct {
	db *gorm.DB
}

func NewContractEventRepository(db *gorm.DB) *contractEventRepository {
	return &contractEventRepository{db: db}
}

func (r *contractEventRepository) Create(tx shared.DB, event *models.ContractEvent) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(event).Error
}

func (r *contractEventRepository) ListByContract(contractID uuid.UUID) ([]models.ContractEvent, error) {
	var events []models.ContractEvent
	err := r.db.Where("contract_id = ?", contractID).Order("created_at ASC").Find(&events).Error
	return events, err
}
