// internal/api/investors.go
package api

import (
	"context"
	"fmt"
	"net/http"

	"afcare-client/internal/common/validation"
	"afcare-client/internal/models"
)

type InvestorsService struct {
	*Resource[models.Investor]
	c *Client
}

// ServerMatch is one entry of the server-side scored match endpoint. The
// pure client-side filter lives in internal/matching; this call is for the
// platform's own ranking.
type ServerMatch struct {
	ProjectID      int     `json:"project_id"`
	ProjectName    string  `json:"project_name"`
	Country        string  `json:"country"`
	Sector         string  `json:"sector"`
	EstimatedCapex float64 `json:"estimated_capex"`
	MatchScore     int     `json:"match_score"`
	MatchReasons   []string `json:"match_reasons"`
}

type ServerMatchResult struct {
	InvestorID int           `json:"investor_id"`
	Matches    []ServerMatch `json:"matches"`
}

// InvestorDraft holds the free-text form fields of an investor profile.
// Multi-select fields arrive as comma-separated strings and are split into
// sets before the profile goes on the wire.
type InvestorDraft struct {
	FundName       string
	TicketSizeMin  float64
	TicketSizeMax  float64
	SectorsCSV     string
	CountriesCSV   string
	InstrumentsCSV string
}

// Build translates the draft into a wire-ready Investor.
func (d InvestorDraft) Build() models.Investor {
	inv := models.Investor{
		FundName:      d.FundName,
		TicketSizeMin: d.TicketSizeMin,
		TicketSizeMax: d.TicketSizeMax,
		CountryFocus:  validation.SplitSet(d.CountriesCSV),
	}
	for _, s := range validation.SplitSet(d.SectorsCSV) {
		inv.SectorFocus = append(inv.SectorFocus, models.Sector(s))
	}
	for _, i := range validation.SplitSet(d.InstrumentsCSV) {
		inv.Instruments = append(inv.Instruments, models.Instrument(i))
	}
	return inv
}

func (s *InvestorsService) Match(ctx context.Context, investorID int) (*ServerMatchResult, error) {
	var out ServerMatchResult
	path := fmt.Sprintf("/investors/%d/match", investorID)
	if err := s.c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
