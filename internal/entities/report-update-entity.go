package entities

type ReportUpdate struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Timestamps
}
