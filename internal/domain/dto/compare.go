// Package dto holds the request/response shapes of the HTTP API.
package dto

import "github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"

// CompareRange bounds one side of a comparison. Day strings are local
// YYYY-MM-DD; the optional RFC3339 instants take precedence when set.
type CompareRange struct {
	DayFrom string `json:"dayFrom" validate:"required"`
	DayTo   string `json:"dayTo" validate:"required"`
	FromTs  string `json:"fromTs,omitempty"`
	ToTs    string `json:"toTs,omitempty"`
}

type CompareRequest struct {
	Selection string       `json:"selection" validate:"required"`
	RangeA    CompareRange `json:"rangeA"`
	RangeB    CompareRange `json:"rangeB"`
}

type CompareResponse struct {
	Label      string                   `json:"label"`
	IsFavorite bool                     `json:"isFavorite"`
	WasteTypes []domain.WasteType       `json:"wasteTypes"`
	Result     *domain.ComparisonResult `json:"result"`
}
