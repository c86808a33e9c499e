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

package models

// Opportunity rows are owned by the opportunity service. This module only reads them.
type Opportunity struct {
	Model
	BrandID            string  `json:"brandId" gorm:"type:text;not null;index"`
	Title              string  `json:"title" gorm:"type:text;not null"`
	Description        *string `json:"description" gorm:"type:text"`
	DealType           string  `json:"dealType" gorm:"type:text;not null"`
	CompensationAmount float64 `json:"compensationAmount" gorm:"type:numeric(12,2);not null;default:0"`
	CompensationType   string  `json:"compensationType" gorm:"type:text;not null"`
}

func (Opportunity) TableName() string {
	return "opportunities"
}
