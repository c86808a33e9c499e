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
	"encoding/json"
	"time"

	"github.com/l3montree-dev/dealflow/database/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type configRepository struct {
	db *gorm.DB
	*GormRepository[string, models.Config]
}

func NewConfigRepository(db *gorm.DB) *configRepository {
	return &configRepository{
		db:             db,
		GormRepository: newGormRepository[string, models.Config](db),
	}
}

type lease struct {
	HolderID string `json:"holderId"`
	LastPing int64  `json:"lastPing"`
}

// ClaimLease is a single upsert, so two instances racing for an expired lease cannot both win.
func (r *configRepository) ClaimLease(key string, holderID string, now time.Time, ttl time.Duration) (bool, error) {
	b, err := json.Marshal(lease{HolderID: holderID, LastPing: now.Unix()})
	if err != nil {
		return false, err
	}
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"val"}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{
				SQL:  "config.val::jsonb->>'holderId' = ? OR (config.val::jsonb->>'lastPing')::bigint < ?",
				Vars: []any{holderID, now.Add(-ttl).Unix()},
			},
		}},
	}).Create(&models.Config{Key: key, Val: string(b)})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *configRepository) ReleaseLease(key string, holderID string) error {
	return r.db.Where("key = ? AND val::jsonb->>'holderId' = ?", key, holderID).Delete(&models.Config{}).Error
}
