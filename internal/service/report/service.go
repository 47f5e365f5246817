// Package report implements the comparison and aggregation engine behind the
// reporting screens.
package report

import (
	"context"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store"
)

// TotalsStore is the slice of the store the engine needs.
type TotalsStore interface {
	SelectTotals(ctx context.Context, opts store.SelectTotalsOpts) ([]*domain.TotalsRow, error)
}

type Service struct {
	store TotalsStore
}

func NewService(totalsStore TotalsStore) *Service {
	return &Service{store: totalsStore}
}
