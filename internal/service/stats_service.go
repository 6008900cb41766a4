package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/helpnearby/backend/internal/model"
	"github.com/helpnearby/backend/internal/repository"
)

// StatsService records site visits and aggregates the counters shown in the
// admin statistics panel.
type StatsService interface {
	// RecordVisit stores one visit. When visitorToken is blank a fresh token
	// is issued; either way the token to keep client-side is returned.
	RecordVisit(ctx context.Context, visitorToken string) (string, error)
	// Stats returns the visit aggregates plus the summed announcement views.
	Stats(ctx context.Context) (*model.VisitStats, error)
}

type statsService struct {
	visits        repository.VisitRepository
	announcements repository.AnnouncementRepository
}

// NewStatsService creates a StatsService.
func NewStatsService(visits repository.VisitRepository, announcements repository.AnnouncementRepository) StatsService {
	return &statsService{visits: visits, announcements: announcements}
}

func (s *statsService) RecordVisit(ctx context.Context, visitorToken string) (string, error) {
	token := strings.TrimSpace(visitorToken)
	if token == "" {
		token = uuid.NewString()
	}
	if err := s.visits.Record(ctx, token); err != nil {
		return "", err
	}
	return token, nil
}

func (s *statsService) Stats(ctx context.Context) (*model.VisitStats, error) {
	counts, err := s.visits.Counts(ctx)
	if err != nil {
		return nil, err
	}
	views, err := s.announcements.TotalViews(ctx)
	if err != nil {
		return nil, err
	}
	return &model.VisitStats{
		TotalVisits:            counts.Total,
		UniqueVisitors:         counts.Unique,
		TodayVisits:            counts.Today,
		TotalAnnouncementViews: views,
	}, nil
}
