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
	"gorm.io/gorm/clause"
)

type applicationRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Application]
}

func NewApplicationRepository(db *gorm.DB) *applicationRepository {
	return &applicationRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Application](db),
	}
}

// Save never writes the preloaded opportunity, it belongs to another service.
func (r *applicationRepository) Save(tx shared.DB, application *models.Application) error {
	return r.GetDB(tx).Omit(clause.Associations).Save(application).Error
}

func (r *applicationRepository) ReadWithOpportunity(tx shared.DB, id uuid.UUID) (models.Application, error) {
	var application models.Application
	err := lockedIfTx(tx, r.GetDB(tx).Preload("Opportunity")).First(&application, "applications.id = ?", id).Error
	return application, err
}

// FindByAthleteAndOpportunity prefers the active application over withdrawn ones.
func (r *applicationRepository) FindByAthleteAndOpportunity(tx shared.DB, athleteID string, opportunityID uuid.UUID) (models.Application, error) {
	var application models.Application
	err := lockedIfTx(tx, r.GetDB(tx)).
		Where("athlete_id = ? AND opportunity_id = ?", athleteID, opportunityID).
		Order("CASE WHEN status = 'withdrawn' THEN 1 ELSE 0 END, updated_at DESC").
		First(&application).Error
	return application, err
}

func (r *applicationRepository) ListByAthlete(athleteID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Opportunity").
		Where("athlete_id = ?", athleteID).
		Order("submitted_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) ListByOpportunity(opportunityID uuid.UUID) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.
		Where("opportunity_id = ? AND status <> ?", opportunityID, dtos.ApplicationStatusWithdrawn).
		Order("submitted_at DESC").
		Find(&applications).Error
	return applications, err
}
