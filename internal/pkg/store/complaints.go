package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/store/xpgx"
)

var complaintColumns = []string{
	"id", "location_id", "created_by", "title", "message", "reply", "replied_by", "status", "created_at",
}

func (s *store) InsertComplaint(ctx context.Context, complaint *domain.Complaint) (string, error) {
	id := uuid.NewString()

	query := builder().
		Insert(tableComplaints).
		Columns("id", "location_id", "created_by", "title", "message", "status").
		Values(id, complaint.LocationID, complaint.CreatedBy, complaint.Title, complaint.Message, domain.ComplaintStatusOpen)

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return "", wrapErr(err)
	}
	return id, nil
}

func (s *store) ListComplaints(ctx context.Context) ([]*domain.Complaint, error) {
	query := builder().
		Select(complaintColumns...).
		From(tableComplaints).
		OrderBy("created_at desc")

	selected, err := xpgx.Selectx[domain.Complaint](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) UpdateComplaintReply(ctx context.Context, complaintID, reply, repliedBy string) error {
	query := builder().
		Update(tableComplaints).
		Set("reply", reply).
		Set("replied_by", repliedBy).
		Set("status", domain.ComplaintStatusReplied).
		Where(sq.Eq{"id": complaintID})

	tag, err := xpgx.Execx(ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}
	return nil
}
