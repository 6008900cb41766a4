package repository

import (
	"context"

	"github.com/helpnearby/backend/internal/model"
)

// ResponseRepository handles persistence for responses and their chat threads.
type ResponseRepository interface {
	// Create inserts a response and sets its ID and CreatedAt.
	Create(ctx context.Context, resp *model.Response) error
	// GetByID returns a single response by ID.
	GetByID(ctx context.Context, id int) (*model.Response, error)
	// ListByAnnouncement returns an announcement's responses, newest first,
	// each with message_count computed at read time.
	ListByAnnouncement(ctx context.Context, announcementID int) ([]*model.Response, error)
	// CreateMessage appends a message to a response's thread and sets its
	// ID and CreatedAt.
	CreateMessage(ctx context.Context, msg *model.Message) error
	// ListMessages returns a thread's messages ascending by created_at.
	ListMessages(ctx context.Context, responseID int) ([]*model.Message, error)
}
