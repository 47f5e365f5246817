package store

import (
	"context"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	SelectTotals(ctx context.Context, opts SelectTotalsOpts) ([]*domain.TotalsRow, error)

	ListActiveLocations(ctx context.Context) ([]*domain.Location, error)
	ListMenuLocations(ctx context.Context) ([]*domain.MenuLocation, error)

	ListFavorites(ctx context.Context, ownerID string) ([]*domain.Favorite, error)
	GetFavoriteDetails(ctx context.Context, favoriteID string) (*domain.FavoriteDetails, error)
	InsertFavorite(ctx context.Context, opts InsertFavoriteOpts) (string, error)
	DeleteFavorite(ctx context.Context, favoriteID, ownerID string) error

	InsertWasteReport(ctx context.Context, report *domain.WasteReport) (string, error)

	InsertComplaint(ctx context.Context, complaint *domain.Complaint) (string, error)
	ListComplaints(ctx context.Context) ([]*domain.Complaint, error)
	UpdateComplaintReply(ctx context.Context, complaintID, reply, repliedBy string) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
