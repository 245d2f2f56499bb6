// pkg/catalog/rules.go
package catalog

import (
	"afcare-client/internal/common/validation"
)

// ProjectRules builds the form rules for a project draft.
func (c *Catalog) ProjectRules() map[string]validation.Rule {
	return map[string]validation.Rule{
		"name":            {Required: true},
		"sector":          {Required: true, Enum: c.Sectors},
		"country":         {Required: true},
		"stage":           {Enum: c.Stages},
		"estimated_capex": {Required: true, Numeric: true},
	}
}

// BankabilityRules builds the rules for the four V3 screening scores, each
// bounded to 0-100.
func (c *Catalog) BankabilityRules() map[string]validation.Rule {
	lo, hi := validation.Range(0, 100)
	score := validation.Rule{Required: true, Numeric: true, Minimum: lo, Maximum: hi}
	return map[string]validation.Rule{
		"technical_readiness":  score,
		"financial_robustness": score,
		"legal_clarity":        score,
		"esg_compliance":       score,
	}
}

// InvestorRules builds the form rules for an investor mandate draft.
func (c *Catalog) InvestorRules() map[string]validation.Rule {
	return map[string]validation.Rule{
		"fund_name":       {Required: true},
		"ticket_size_min": {Required: true, Numeric: true},
		"ticket_size_max": {Required: true, Numeric: true},
	}
}
