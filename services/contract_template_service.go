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
	"fmt"

	"github.com/l3montree-dev/dealflow/database/models"
	"github.com/l3montree-dev/dealflow/dtos"
	"github.com/l3montree-dev/dealflow/shared"
)

type clauseTemplate struct {
	title      string
	required   bool
	editable   bool
	contentFor func(deal models.Deal) string
}

func fixed(content string) func(models.Deal) string {
	return func(models.Deal) string { return content }
}

func partiesClause(deal models.Deal) string {
	return fmt.Sprintf("This agreement is entered into between the brand and the athlete named below for the engagement %q (%s).", deal.Title, deal.DealType)
}

func compensationClause(deal models.Deal) string {
	return fmt.Sprintf("In consideration of the services described in this agreement the brand pays the athlete %.2f (%s).", deal.CompensationAmount, deal.CompensationType)
}

var complianceClause = fixed("The athlete remains responsible for complying with the name, image and likeness rules of their institution, conference and association. Nothing in this agreement requires the athlete to act against those rules.")

var contractTemplates = map[dtos.TemplateType][]clauseTemplate{
	dtos.TemplateTypeStandardEndorsement: {
		{title: "Parties and Purpose", required: true, editable: false, contentFor: partiesClause},
		{title: "Compensation", required: true, editable: true, contentFor: compensationClause},
		{title: "Name, Image and Likeness Rights", required: true, editable: true, contentFor: fixed("The athlete grants the brand a non-exclusive license to use the athlete's name, image and likeness in connection with the engagement for the term of this agreement.")},
		{title: "Term and Termination", required: true, editable: true, contentFor: fixed("This agreement starts on the effective date and ends on the expiration date. Either party may terminate it in writing if the other party materially breaches it.")},
		{title: "Compliance", required: true, editable: false, contentFor: complianceClause},
		{title: "Additional Terms", required: false, editable: true, contentFor: fixed("")},
	},
	dtos.TemplateTypeSocialMedia: {
		{title: "Parties and Purpose", required: true, editable: false, contentFor: partiesClause},
		{title: "Compensation", required: true, editable: true, contentFor: compensationClause},
		{title: "Content Deliverables", required: true, editable: true, contentFor: func(deal models.Deal) string {
			return fmt.Sprintf("The athlete publishes the content agreed for %q on the channels named by the brand.", deal.Title)
		}},
		{title: "Disclosure", required: true, editable: false, contentFor: fixed("Every sponsored post is clearly labeled as an advertisement as required by applicable endorsement guidelines.")},
		{title: "Content Approval", required: false, editable: true, contentFor: fixed("")},
		{title: "Compliance", required: true, editable: false, contentFor: complianceClause},
	},
	dtos.TemplateTypeAppearance: {
		{title: "Parties and Purpose", required: true, editable: false, contentFor: partiesClause},
		{title: "Compensation", required: true, editable: true, contentFor: compensationClause},
		{title: "Appearance Details", required: true, editable: true, contentFor: func(deal models.Deal) string {
			return fmt.Sprintf("The athlete appears in person at the event agreed for %q. Date, place and duration are confirmed in writing before the appearance.", deal.Title)
		}},
		{title: "Travel and Expenses", required: false, editable: true, contentFor: fixed("")},
		{title: "Cancellation", required: true, editable: true, contentFor: fixed("If the appearance is cancelled by the brand less than seven days in advance the full compensation remains due.")},
		{title: "Compliance", required: true, editable: false, contentFor: complianceClause},
	},
}

func IsKnownTemplate(templateType dtos.TemplateType) bool {
	_, ok := contractTemplates[templateType]
	return ok
}

type ContractTemplateService struct{}

func NewContractTemplateService() *ContractTemplateService {
	return &ContractTemplateService{}
}

// DefaultClauses returns the ordered clauses of the template, required ones filled from the deal.
func (s *ContractTemplateService) DefaultClauses(templateType dtos.TemplateType, deal models.Deal) ([]models.Clause, error) {
	templates, ok := contractTemplates[templateType]
	if !ok {
		return nil, shared.NewValidationError([]string{fmt.Sprintf("unknown template type %q", templateType)})
	}
	clauses := make([]models.Clause, 0, len(templates))
	for i, t := range templates {
		clauses = append(clauses, models.Clause{
			Title:      t.title,
			Content:    t.contentFor(deal),
			IsRequired: t.required,
			IsEditable: t.editable,
			Order:      i + 1,
		})
	}
	return clauses, nil
}
