package repository

import "context"

// VisitCounts are the raw visit aggregates; announcement views are summed
// separately by the AnnouncementRepository.
type VisitCounts struct {
	Total  int
	Unique int
	Today  int
}

// VisitRepository records site visits for the admin statistics panel.
type VisitRepository interface {
	// Record stores one visit for the given visitor token.
	Record(ctx context.Context, visitorToken string) error
	// Counts returns total, distinct-visitor and same-day visit counts.
	Counts(ctx context.Context) (VisitCounts, error)
}
