// internal/models/project.go
package models

type Project struct {
	ID             int          `json:"id,omitempty"`
	Name           string       `json:"name"`
	Sector         Sector       `json:"sector"`
	Country        string       `json:"country"`
	Region         string       `json:"region,omitempty"`
	GPSLocation    string       `json:"gps_location,omitempty"`
	Stage          ProjectStage `json:"stage"`
	EstimatedCapex float64      `json:"estimated_capex"`
	FundingGap     float64      `json:"funding_gap,omitempty"`
	RevenueModel   string       `json:"revenue_model,omitempty"`
	Offtaker       string       `json:"offtaker,omitempty"`
	Technology     string       `json:"technology,omitempty"`
	ESGCategory    string       `json:"esg_category,omitempty"`
	CreatedAt      string       `json:"created_at,omitempty"`
	UpdatedAt      string       `json:"updated_at,omitempty"`
}

type Investor struct {
	ID             int          `json:"id,omitempty"`
	FundName       string       `json:"fund_name"`
	AUM            float64      `json:"aum,omitempty"`
	TicketSizeMin  float64      `json:"ticket_size_min"`
	TicketSizeMax  float64      `json:"ticket_size_max"`
	Instruments    []Instrument `json:"instruments"`
	TargetIRR      float64      `json:"target_irr,omitempty"`
	CountryFocus   []string     `json:"country_focus"`
	SectorFocus    []Sector     `json:"sector_focus"`
	ESGConstraints string       `json:"esg_constraints,omitempty"`
}

// CountryFocusGlobal is the sentinel value meaning "any country".
const CountryFocusGlobal = "Global"
