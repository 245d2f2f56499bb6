// internal/models/resources.go
package models

type DataRoom struct {
	ID          int               `json:"id,omitempty"`
	ProjectID   int               `json:"project_id"`
	NDARequired bool              `json:"nda_required"`
	AccessUsers []int             `json:"access_users,omitempty"`
	Documents   map[string]string `json:"documents,omitempty"`
	CreatedAt   string            `json:"created_at,omitempty"`
}

type Event struct {
	ID               int    `json:"id,omitempty"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	EventDate        string `json:"event_date"`
	Type             string `json:"type"`
	ProjectsInvolved []int  `json:"projects_involved,omitempty"`
}

type AnalyticReport struct {
	ID        int    `json:"id,omitempty"`
	Title     string `json:"title"`
	Sector    Sector `json:"sector,omitempty"`
	Country   string `json:"country,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
}
