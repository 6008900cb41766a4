package repository

import (
	"context"

	"github.com/helpnearby/backend/internal/model"
)

// CelebrityRepository handles persistence for celebrity outreach requests.
type CelebrityRepository interface {
	// Create inserts a request and sets its ID, Status and CreatedAt.
	Create(ctx context.Context, req *model.CelebrityRequest) error
	// ListPublic returns the latest non-rejected requests.
	ListPublic(ctx context.Context, limit int) ([]*model.CelebrityRequest, error)
	// ListAll returns every request, newest first (admin view).
	ListAll(ctx context.Context) ([]*model.CelebrityRequest, error)
	// UpdateStatus sets a request's status and admin notes.
	UpdateStatus(ctx context.Context, id int, status, adminNotes string) error
}
