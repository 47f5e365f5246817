// Package waste validates and records waste report submissions.
package waste

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
)

type Store interface {
	InsertWasteReport(ctx context.Context, report *domain.WasteReport) (string, error)
}

type Service struct {
	store Store
}

func NewService(reportStore Store) *Service {
	return &Service{store: reportStore}
}

// NormalizeKg parses a kilogram text input, accepting a comma decimal
// separator. The second return is false for empty or non-finite input.
func NormalizeKg(input string) (float64, bool) {
	normalized := strings.TrimSpace(strings.ReplaceAll(input, ",", "."))
	if normalized == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

type ItemInput struct {
	WasteType   string
	Kg          string
	Description *string
}

type SubmitInput struct {
	LocationID string
	CreatedBy  string
	Status     *string
	Notes      *string
	Items      []ItemInput
}

// Submit validates the form input and inserts the report with its item rows,
// returning the generated report id.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (string, error) {
	if input.LocationID == "" {
		return "", constants.NewValidationError("select a location")
	}
	if len(input.Items) == 0 {
		return "", constants.NewValidationError("select at least one waste type")
	}

	items := make([]domain.WasteReportItem, 0, len(input.Items))
	for _, item := range input.Items {
		wt := domain.WasteType(strings.ToUpper(strings.TrimSpace(item.WasteType)))
		if !wt.Valid() {
			return "", constants.NewValidationError(fmt.Sprintf("unknown waste type %q", item.WasteType))
		}

		kg, ok := NormalizeKg(item.Kg)
		if !ok || kg <= 0 {
			return "", constants.NewValidationError(
				fmt.Sprintf("enter the amount in kilograms (kg > 0) for waste type %q", wt.Label()))
		}

		items = append(items, domain.WasteReportItem{
			WasteType:   wt,
			Kg:          kg,
			Description: item.Description,
		})
	}

	id, err := s.store.InsertWasteReport(ctx, &domain.WasteReport{
		LocationID: input.LocationID,
		CreatedBy:  input.CreatedBy,
		Status:     input.Status,
		Notes:      input.Notes,
		Items:      items,
	})
	if err != nil {
		return "", fmt.Errorf("submit waste report: %w", err)
	}
	return id, nil
}
