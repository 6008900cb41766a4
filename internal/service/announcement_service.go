package service

import (
	"context"
	"errors"

	"github.com/helpnearby/backend/internal/model"
	"github.com/helpnearby/backend/internal/repository"
)

// AnnouncementService provides the listing lifecycle: feed reads, the
// close/delete transitions and per-listing view tracking. Creation and the
// pending_payment → published transition live in PaymentService, since a
// listing is born through a payment.
type AnnouncementService interface {
	// Feed returns published announcements, vip/boosted/regular, newest first.
	Feed(ctx context.Context) ([]*model.Announcement, error)
	// ListByAuthor returns an author's own announcements in every status.
	ListByAuthor(ctx context.Context, author string) ([]*model.Announcement, error)
	// ListAll returns all announcements regardless of status (admin view).
	ListAll(ctx context.Context) ([]*model.Announcement, error)
	// Close moves a published announcement to closed.
	Close(ctx context.Context, id int) error
	// Delete removes an announcement and cascades to its responses and
	// messages (admin only; the handler enforces the credential).
	Delete(ctx context.Context, id int) error
	// TrackView adds exactly one view to an announcement's counter.
	TrackView(ctx context.Context, id int) error
}

type announcementService struct {
	repo repository.AnnouncementRepository
}

// NewAnnouncementService creates an AnnouncementService.
func NewAnnouncementService(repo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{repo: repo}
}

func (s *announcementService) Feed(ctx context.Context) ([]*model.Announcement, error) {
	return s.repo.ListPublished(ctx)
}

func (s *announcementService) ListByAuthor(ctx context.Context, author string) ([]*model.Announcement, error) {
	return s.repo.ListByAuthor(ctx, author)
}

func (s *announcementService) ListAll(ctx context.Context) ([]*model.Announcement, error) {
	return s.repo.ListAll(ctx)
}

func (s *announcementService) Close(ctx context.Context, id int) error {
	err := s.repo.SetStatus(ctx, id, model.StatusPublished, model.StatusClosed)
	if errors.Is(err, repository.ErrNotFound) {
		return s.transitionError(ctx, id)
	}
	return err
}

// transitionError distinguishes "no such announcement" from "announcement
// exists but is not in the required status" after a guarded UPDATE hit zero rows.
func (s *announcementService) transitionError(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrInvalidTransition
}

func (s *announcementService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *announcementService) TrackView(ctx context.Context, id int) error {
	return s.repo.IncrementViewCount(ctx, id)
}
