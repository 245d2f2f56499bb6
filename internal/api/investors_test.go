// internal/api/investors_test.go
package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"afcare-client/internal/models"
)

func TestInvestorDraftBuild(t *testing.T) {
	draft := InvestorDraft{
		FundName:       "Savannah Infra Fund",
		TicketSizeMin:  5_000_000,
		TicketSizeMax:  50_000_000,
		SectorsCSV:     "Energy, Water ,Transport",
		CountriesCSV:   "Kenya,  Ghana",
		InstrumentsCSV: "Equity,Debt",
	}

	inv := draft.Build()

	assert.Equal(t, "Savannah Infra Fund", inv.FundName)
	assert.Equal(t, []models.Sector{models.SectorEnergy, models.SectorWater, models.SectorTransport}, inv.SectorFocus)
	assert.Equal(t, []string{"Kenya", "Ghana"}, inv.CountryFocus)
	assert.Equal(t, []models.Instrument{models.InstrumentEquity, models.InstrumentDebt}, inv.Instruments)
}

func TestInvestorDraftBuildEmptyFields(t *testing.T) {
	inv := InvestorDraft{FundName: "Solo"}.Build()

	assert.Empty(t, inv.SectorFocus)
	assert.Empty(t, inv.CountryFocus)
	assert.Empty(t, inv.Instruments)
}
