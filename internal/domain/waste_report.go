package domain

import "time"

type WasteReportItem struct {
	WasteType   WasteType `db:"waste_type" json:"waste_type"`
	Kg          float64   `db:"kg" json:"kg"`
	Description *string   `db:"description" json:"description,omitempty"`
}

type WasteReport struct {
	ID         string            `json:"id"`
	LocationID string            `json:"location_id"`
	CreatedBy  string            `json:"created_by"`
	Status     *string           `json:"status,omitempty"`
	Notes      *string           `json:"notes,omitempty"`
	Items      []WasteReportItem `json:"items"`
	CreatedAt  time.Time         `json:"created_at"`
}
