package repository

import (
	"context"

	"github.com/helpnearby/backend/internal/model"
)

// DonationRepository handles persistence for charitable donations.
type DonationRepository interface {
	// Create inserts a donation and sets its ID and CreatedAt.
	Create(ctx context.Context, d *model.Donation) error
	// GetByID returns a single donation by ID.
	GetByID(ctx context.Context, id int) (*model.Donation, error)
	// ListPaid returns the latest paid donations for the public wall.
	ListPaid(ctx context.Context, limit int) ([]*model.Donation, error)
	// ListAll returns every donation, newest first (admin view).
	ListAll(ctx context.Context) ([]*model.Donation, error)
	// Assign sets the distribution target and admin notes on a donation.
	Assign(ctx context.Context, id int, assignedTo, adminNotes string) error
}
