// internal/matching/matcher_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"afcare-client/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestInvestor() models.Investor {
	return models.Investor{
		ID:            1,
		FundName:      "Savannah Infrastructure Fund",
		TicketSizeMin: 10_000_000,
		TicketSizeMax: 100_000_000,
		CountryFocus:  []string{"Kenya", "Tanzania"},
		SectorFocus:   []models.Sector{models.SectorEnergy, models.SectorWater},
	}
}

func createTestProjects() []models.Project {
	return []models.Project{
		{ID: 1, Name: "Lake Turkana Wind", Sector: models.SectorEnergy, Country: "Kenya", EstimatedCapex: 50_000_000},
		{ID: 2, Name: "Mombasa Port Upgrade", Sector: models.SectorPorts, Country: "Kenya", EstimatedCapex: 200_000_000},
		{ID: 3, Name: "Dar Water Treatment", Sector: models.SectorWater, Country: "Tanzania", EstimatedCapex: 30_000_000},
		{ID: 4, Name: "Lagos Solar Park", Sector: models.SectorEnergy, Country: "Nigeria", EstimatedCapex: 40_000_000},
	}
}

// ==========================
// Binary Filter Tests
// ==========================

func TestMatch_SectorAndCountry(t *testing.T) {
	investor := createTestInvestor()
	projects := createTestProjects()

	matched := Match(investor, projects)

	require.Len(t, matched, 2)
	assert.Equal(t, "Lake Turkana Wind", matched[0].Name)
	assert.Equal(t, "Dar Water Treatment", matched[1].Name)
}

func TestMatch_GlobalCountryFocus(t *testing.T) {
	investor := createTestInvestor()
	investor.CountryFocus = []string{models.CountryFocusGlobal}

	matched := Match(investor, createTestProjects())

	// Every energy and water project regardless of country.
	require.Len(t, matched, 3)
	assert.Equal(t, "Lagos Solar Park", matched[2].Name)
}

func TestMatch_CountryCaseInsensitive(t *testing.T) {
	investor := createTestInvestor()
	investor.CountryFocus = []string{"kenya"}

	matched := Match(investor, createTestProjects())

	require.Len(t, matched, 1)
	assert.Equal(t, "Lake Turkana Wind", matched[0].Name)
}

func TestMatch_EmptySectorFocusMatchesNothing(t *testing.T) {
	investor := createTestInvestor()
	investor.SectorFocus = nil

	matched := Match(investor, createTestProjects())

	assert.Empty(t, matched)
}

func TestMatch_EmptyCountryFocusMatchesNothing(t *testing.T) {
	investor := createTestInvestor()
	investor.CountryFocus = nil

	matched := Match(investor, createTestProjects())

	assert.Empty(t, matched)
}

func TestMatch_PreservesInputOrder(t *testing.T) {
	investor := models.Investor{
		SectorFocus:  []models.Sector{models.SectorEnergy},
		CountryFocus: []string{models.CountryFocusGlobal},
	}
	projects := []models.Project{
		{ID: 9, Sector: models.SectorEnergy, Country: "Ghana"},
		{ID: 3, Sector: models.SectorEnergy, Country: "Kenya"},
		{ID: 7, Sector: models.SectorEnergy, Country: "Egypt"},
	}

	matched := Match(investor, projects)

	require.Len(t, matched, 3)
	assert.Equal(t, []int{9, 3, 7}, []int{matched[0].ID, matched[1].ID, matched[2].ID})
}

func TestMatch_NoProjects(t *testing.T) {
	assert.Empty(t, Match(createTestInvestor(), nil))
}

// ==========================
// Scored Ranking Tests
// ==========================

func TestScore_FullMatch(t *testing.T) {
	investor := createTestInvestor()
	projects := []models.Project{
		{ID: 1, Name: "Lake Turkana Wind", Sector: models.SectorEnergy, Country: "Kenya", EstimatedCapex: 50_000_000},
	}

	ranked := Score(investor, projects)

	require.Len(t, ranked, 1)
	assert.Equal(t, 100, ranked[0].MatchScore)
	assert.Len(t, ranked[0].MatchReasons, 3)
}

func TestScore_PartialMatches(t *testing.T) {
	investor := createTestInvestor()

	tests := []struct {
		name     string
		project  models.Project
		expected int
	}{
		{
			name:     "sector only",
			project:  models.Project{Sector: models.SectorEnergy, Country: "Nigeria", EstimatedCapex: 500_000_000},
			expected: SectorWeight,
		},
		{
			name:     "country only",
			project:  models.Project{Sector: models.SectorRoads, Country: "Kenya", EstimatedCapex: 500_000_000},
			expected: CountryWeight,
		},
		{
			name:     "ticket only",
			project:  models.Project{Sector: models.SectorRoads, Country: "Nigeria", EstimatedCapex: 50_000_000},
			expected: TicketWeight,
		},
		{
			name:     "sector and ticket",
			project:  models.Project{Sector: models.SectorWater, Country: "Nigeria", EstimatedCapex: 20_000_000},
			expected: SectorWeight + TicketWeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Score(investor, []models.Project{tt.project})
			require.Len(t, ranked, 1)
			assert.Equal(t, tt.expected, ranked[0].MatchScore)
		})
	}
}

func TestScore_OmitsZeroScores(t *testing.T) {
	investor := createTestInvestor()
	projects := []models.Project{
		{ID: 1, Sector: models.SectorRail, Country: "Morocco", EstimatedCapex: 900_000_000},
	}

	assert.Empty(t, Score(investor, projects))
}

func TestScore_SortedDescendingStable(t *testing.T) {
	investor := createTestInvestor()
	projects := []models.Project{
		{ID: 1, Name: "A", Sector: models.SectorEnergy, Country: "Nigeria"},
		{ID: 2, Name: "B", Sector: models.SectorEnergy, Country: "Kenya", EstimatedCapex: 20_000_000},
		{ID: 3, Name: "C", Sector: models.SectorEnergy, Country: "Ghana"},
	}

	ranked := Score(investor, projects)

	require.Len(t, ranked, 3)
	assert.Equal(t, 2, ranked[0].ProjectID)
	// Equal scores keep input order.
	assert.Equal(t, 1, ranked[1].ProjectID)
	assert.Equal(t, 3, ranked[2].ProjectID)
}

func TestScore_ZeroCapexSkipsTicketCheck(t *testing.T) {
	investor := createTestInvestor()
	investor.TicketSizeMin = 0

	ranked := Score(investor, []models.Project{
		{ID: 1, Sector: models.SectorEnergy, Country: "Kenya", EstimatedCapex: 0},
	})

	require.Len(t, ranked, 1)
	assert.Equal(t, SectorWeight+CountryWeight, ranked[0].MatchScore)
}
