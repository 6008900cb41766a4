package repository

import (
	"context"

	"github.com/helpnearby/backend/internal/model"
)

// AnnouncementRepository handles persistence for help-request listings.
type AnnouncementRepository interface {
	// Create inserts an announcement and sets its ID and CreatedAt.
	Create(ctx context.Context, a *model.Announcement) error
	// GetByID returns a single announcement by ID.
	GetByID(ctx context.Context, id int) (*model.Announcement, error)
	// ListPublished returns the public feed: published announcements only,
	// vip first, then boosted, then regular, newest first within each tier.
	ListPublished(ctx context.Context) ([]*model.Announcement, error)
	// ListByAuthor returns an author's announcements regardless of status.
	ListByAuthor(ctx context.Context, author string) ([]*model.Announcement, error)
	// ListAll returns every announcement regardless of status (admin view).
	ListAll(ctx context.Context) ([]*model.Announcement, error)
	// SetStatus moves an announcement from one status to another. Returns
	// ErrNotFound when no row is currently in the `from` status.
	SetStatus(ctx context.Context, id int, from, to string) error
	// Delete removes an announcement; responses and messages cascade.
	Delete(ctx context.Context, id int) error
	// IncrementViewCount adds exactly one tracked view.
	IncrementViewCount(ctx context.Context, id int) error
	// TotalViews returns the sum of view counters across all announcements.
	TotalViews(ctx context.Context) (int, error)
}
