package dto

// WasteReportItemInput keeps kg as a string so "1,5" from the form's text
// input survives binding; the waste service normalizes it.
type WasteReportItemInput struct {
	WasteType   string  `json:"wasteType" validate:"required"`
	Kg          string  `json:"kg" validate:"required"`
	Description *string `json:"description,omitempty"`
}

type SubmitWasteReportRequest struct {
	LocationID string                 `json:"locationId" validate:"required"`
	Status     *string                `json:"status,omitempty"`
	Notes      *string                `json:"notes,omitempty"`
	Items      []WasteReportItemInput `json:"items" validate:"required"`
}

type SubmitWasteReportResponse struct {
	ID string `json:"id"`
}
