// internal/matching/matcher.go
package matching

import (
	"fmt"
	"sort"
	"strings"

	"afcare-client/internal/models"
)

// Match weights, kept in sync with the server-side /investors/{id}/match
// endpoint so client and server scored results agree.
const (
	SectorWeight  = 40
	CountryWeight = 30
	TicketWeight  = 30
)

// Match filters projects down to those compatible with the investor's
// mandate. A project matches when its sector is in the investor's sector
// focus AND its country is covered by the country focus. Country comparison
// is case-insensitive; a "Global" entry in country_focus covers every
// country. Order of the input slice is preserved.
func Match(investor models.Investor, projects []models.Project) []models.Project {
	if len(investor.SectorFocus) == 0 {
		return nil
	}

	var matched []models.Project
	for _, project := range projects {
		if sectorMatches(investor, project.Sector) && countryMatches(investor, project.Country) {
			matched = append(matched, project)
		}
	}
	return matched
}

func sectorMatches(investor models.Investor, sector models.Sector) bool {
	for _, focus := range investor.SectorFocus {
		if focus == sector {
			return true
		}
	}
	return false
}

func countryMatches(investor models.Investor, country string) bool {
	for _, focus := range investor.CountryFocus {
		if focus == models.CountryFocusGlobal {
			return true
		}
		if strings.EqualFold(focus, country) {
			return true
		}
	}
	return false
}

// ScoredMatch is one project ranked against an investor mandate, with
// human-readable reasons for each satisfied dimension.
type ScoredMatch struct {
	ProjectID      int      `json:"project_id"`
	ProjectName    string   `json:"project_name"`
	Country        string   `json:"country"`
	Sector         string   `json:"sector"`
	EstimatedCapex float64  `json:"estimated_capex"`
	MatchScore     int      `json:"match_score"`
	MatchReasons   []string `json:"match_reasons"`
}

// Score ranks projects against the investor on three weighted dimensions:
// sector focus (40), country focus (30) and CAPEX within the ticket range
// (30). Projects scoring zero are omitted. Results are sorted by score
// descending; ties keep input order.
func Score(investor models.Investor, projects []models.Project) []ScoredMatch {
	var matched []ScoredMatch
	for _, project := range projects {
		score := 0
		var reasons []string

		if sectorMatches(investor, project.Sector) {
			score += SectorWeight
			reasons = append(reasons, fmt.Sprintf("Sector match: %s", project.Sector))
		}

		if countryMatches(investor, project.Country) {
			score += CountryWeight
			reasons = append(reasons, fmt.Sprintf("Country match: %s", project.Country))
		}

		if project.EstimatedCapex > 0 &&
			investor.TicketSizeMin <= project.EstimatedCapex &&
			project.EstimatedCapex <= investor.TicketSizeMax {
			score += TicketWeight
			reasons = append(reasons, "CAPEX within ticket range")
		}

		if score > 0 {
			matched = append(matched, ScoredMatch{
				ProjectID:      project.ID,
				ProjectName:    project.Name,
				Country:        project.Country,
				Sector:         string(project.Sector),
				EstimatedCapex: project.EstimatedCapex,
				MatchScore:     score,
				MatchReasons:   reasons,
			})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchScore > matched[j].MatchScore
	})
	return matched
}
