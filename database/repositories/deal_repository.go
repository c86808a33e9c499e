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
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/shared"
	"gorm.io/gorm"
)

type dealRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Deal]
}

func NewDealRepository(db *gorm.DB) *dealRepository {
	return &dealRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Deal](db),
	}
}

func (r *dealRepository) FindBySourceApplication(applicationID uuid.UUID) (models.Deal, error) {
	var deal models.Deal
	err := r.db.First(&deal, "source_application_id = ?", applicationID).Error
	return deal, err
}

func (r *dealRepository) UpdateStatus(tx shared.DB, dealID uuid.UUID, status dtos.DealStatus) error {
	return r.GetDB(tx).Model(&models.Deal{}).Where("id = ?", dealID).Update("status", status).Error
}
