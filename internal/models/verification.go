// internal/models/verification.go
package models

// Bankability holds the four V3 screening sub-scores, each 0-100. The
// overall score is the arithmetic mean, computed on the client at submit
// time and transmitted as-is.
type Bankability struct {
	TechnicalReadiness  int     `json:"technical_readiness"`
	FinancialRobustness int     `json:"financial_robustness"`
	LegalClarity        int     `json:"legal_clarity"`
	ESGCompliance       int     `json:"esg_compliance"`
	OverallScore        float64 `json:"overall_score"`
}

// ComputeOverall sets OverallScore to the mean of the four sub-scores.
func (b *Bankability) ComputeOverall() {
	b.OverallScore = float64(b.TechnicalReadiness+b.FinancialRobustness+b.LegalClarity+b.ESGCompliance) / 4.0
}

type Verification struct {
	ID           int               `json:"id,omitempty"`
	ProjectID    int               `json:"project_id"`
	Level        VerificationLevel `json:"level"`
	Bankability  *Bankability      `json:"bankability,omitempty"`
	RiskFlags    []string          `json:"risk_flags,omitempty"`
	LastVerified string            `json:"last_verified,omitempty"`
}
