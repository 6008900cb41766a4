package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/helpnearby/backend/internal/model"
	"github.com/helpnearby/backend/internal/repository"
	"github.com/helpnearby/backend/pkg/telegram"
)

// celebrityRelayFee is the fixed fee for relaying a request, matching the
// original gateway.
const celebrityRelayFee = 60

// publicCelebrityLimit caps the public request listing.
const publicCelebrityLimit = 50

// CreateCelebrityRequestParams are the inputs for a celebrity outreach request.
type CreateCelebrityRequestParams struct {
	RequesterName    string
	RequesterContact string
	CelebrityName    string
	RequestText      string
}

// CelebrityReceipt is returned after a request is recorded.
type CelebrityReceipt struct {
	Request    *model.CelebrityRequest
	Amount     int
	CardNumber string
}

// CelebrityService provides the celebrity outreach flow and its admin
// moderation workflow.
type CelebrityService interface {
	// Create records a request. Requester name, celebrity name and request
	// text are required.
	Create(ctx context.Context, params CreateCelebrityRequestParams) (*CelebrityReceipt, error)
	// ListPublic returns the latest non-rejected requests without contact
	// or admin-note fields.
	ListPublic(ctx context.Context) ([]*model.CelebrityRequest, error)
	// ListAll returns every request with all fields (admin only; the
	// handler enforces the credential).
	ListAll(ctx context.Context) ([]*model.CelebrityRequest, error)
	// UpdateStatus moves a request between the four enumerated statuses.
	UpdateStatus(ctx context.Context, id int, status, adminNotes string) error
}

type celebrityService struct {
	repo       repository.CelebrityRepository
	notifier   telegram.Notifier
	cardNumber string
}

// NewCelebrityService creates a CelebrityService. notifier can be nil to
// disable admin notifications.
func NewCelebrityService(repo repository.CelebrityRepository, notifier telegram.Notifier, cardNumber string) CelebrityService {
	return &celebrityService{repo: repo, notifier: notifier, cardNumber: cardNumber}
}

func (s *celebrityService) Create(ctx context.Context, params CreateCelebrityRequestParams) (*CelebrityReceipt, error) {
	req := &model.CelebrityRequest{
		RequesterName:    strings.TrimSpace(params.RequesterName),
		RequesterContact: strings.TrimSpace(params.RequesterContact),
		CelebrityName:    strings.TrimSpace(params.CelebrityName),
		RequestText:      strings.TrimSpace(params.RequestText),
	}
	if req.RequesterName == "" || req.CelebrityName == "" || req.RequestText == "" {
		return nil, ErrValidation
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.notify(fmt.Sprintf(
		"⭐ <b>Новое обращение к знаменитости!</b>\n\n👤 <b>От:</b> %s\n🎭 <b>К кому:</b> %s\n📝 <b>Текст:</b> %s\n📞 <b>Контакт:</b> %s\n\nID обращения: %d",
		req.RequesterName, req.CelebrityName, truncate(req.RequestText, 200), req.RequesterContact, req.ID))

	return &CelebrityReceipt{
		Request:    req,
		Amount:     celebrityRelayFee,
		CardNumber: s.cardNumber,
	}, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func (s *celebrityService) notify(text string) {
	if s.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.notifier.Notify(ctx, text); err != nil && err != telegram.ErrNotConfigured {
			slog.Error("telegram notification failed", "error", err)
		}
	}()
}

func (s *celebrityService) ListPublic(ctx context.Context) ([]*model.CelebrityRequest, error) {
	requests, err := s.repo.ListPublic(ctx, publicCelebrityLimit)
	if err != nil {
		return nil, err
	}
	// Contact and admin notes are only shown with an admin credential.
	for _, r := range requests {
		r.RequesterContact = ""
		r.AdminNotes = ""
	}
	return requests, nil
}

func (s *celebrityService) ListAll(ctx context.Context) ([]*model.CelebrityRequest, error) {
	return s.repo.ListAll(ctx)
}

func (s *celebrityService) UpdateStatus(ctx context.Context, id int, status, adminNotes string) error {
	if !model.ValidCelebrityStatus(status) {
		return ErrValidation
	}
	return s.repo.UpdateStatus(ctx, id, status, adminNotes)
}
