// Package complaints covers the staff complaint box: create, list, reply.
package complaints

import (
	"context"
	"fmt"
	"strings"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/domain"
	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
)

type Store interface {
	InsertComplaint(ctx context.Context, complaint *domain.Complaint) (string, error)
	ListComplaints(ctx context.Context) ([]*domain.Complaint, error)
	UpdateComplaintReply(ctx context.Context, complaintID, reply, repliedBy string) error
}

type Service struct {
	store Store
}

func NewService(complaintStore Store) *Service {
	return &Service{store: complaintStore}
}

func (s *Service) Create(ctx context.Context, createdBy string, locationID *string, title, message string) (string, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" {
		return "", constants.NewValidationError("give the complaint a title")
	}
	if message == "" {
		return "", constants.NewValidationError("write the complaint message")
	}

	id, err := s.store.InsertComplaint(ctx, &domain.Complaint{
		LocationID: locationID,
		CreatedBy:  createdBy,
		Title:      title,
		Message:    message,
	})
	if err != nil {
		return "", fmt.Errorf("create complaint: %w", err)
	}
	return id, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Complaint, error) {
	complaints, err := s.store.ListComplaints(ctx)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return complaints, nil
}

func (s *Service) Reply(ctx context.Context, complaintID, reply, repliedBy string) error {
	if strings.TrimSpace(reply) == "" {
		return constants.NewValidationError("write a reply")
	}
	if err := s.store.UpdateComplaintReply(ctx, complaintID, strings.TrimSpace(reply), repliedBy); err != nil {
		return fmt.Errorf("reply to complaint: %w", err)
	}
	return nil
}
