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
	"github.com/l3montree-dev/dealflow/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository carries the operations every workflow entity shares. Writes take the
// transaction of the calling service, nil means the plain connection.
type GormRepository[ID comparable, T utils.Tabler] struct {
	db *gorm.DB
}

func newGormRepository[ID comparable, T utils.Tabler](db *gorm.DB) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{db: db}
}

func (g *GormRepository[ID, T]) GetDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return g.db
}

// Transaction commits when f returns nil and rolls back on an error or a panic.
// All repositories share the pool, so a tx started here may be passed to any of them.
func (g *GormRepository[ID, T]) Transaction(f func(tx *gorm.DB) error) error {
	return g.db.Transaction(f)
}

func (g *GormRepository[ID, T]) Create(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Create(t).Error
}

// Save writes all columns including zero values.
func (g *GormRepository[ID, T]) Save(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Save(t).Error
}

func (g *GormRepository[ID, T]) Read(id ID) (T, error) {
	var t T
	err := g.db.Where("id = ?", id).Take(&t).Error
	return t, err
}

// lockedIfTx adds FOR UPDATE when running inside a transaction.
// Outside of a transaction a row lock would be released immediately.
func lockedIfTx(tx *gorm.DB, query *gorm.DB) *gorm.DB {
	if tx == nil {
		return query
	}
	return query.Clauses(clause.Locking{Strength: "UPDATE"})
}
