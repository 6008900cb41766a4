package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/helpnearby/backend/internal/model"
	"github.com/helpnearby/backend/internal/repository"
)

// vipLifetime is how long a vip listing stays boosted before it expires.
const vipLifetime = 7 * 24 * time.Hour

// Defaults applied when the optional fields are blank, matching the original
// gateway's behavior.
const (
	defaultCategory = "Разное"
	anonymousName   = "Аноним"
)

// CreatePaymentParams are the inputs for creating a listing payment.
type CreatePaymentParams struct {
	Title         string
	Description   string
	Category      string
	AuthorName    string
	AuthorContact string
	Tier          string
}

// PaymentIntent is the result of initiating a listing payment: what to pay,
// where to transfer it, and the listing the payment is for.
type PaymentIntent struct {
	AnnouncementID int
	Amount         int
	CardNumber     string
	PaymentStatus  string
}

// PaymentService creates listings through the manual bank-transfer payment
// flow and confirms them once an operator has verified the transfer.
type PaymentService interface {
	// Create validates the listing, fixes its tier price, and stores it in
	// pending_payment (or published, when payment is waived).
	Create(ctx context.Context, params CreatePaymentParams) (*PaymentIntent, error)
	// Check returns the payment status and amount for an announcement.
	Check(ctx context.Context, announcementID int) (*PaymentIntent, error)
	// Confirm publishes a pending_payment announcement (admin only; the
	// handler enforces the credential).
	Confirm(ctx context.Context, announcementID int) error
}

type paymentService struct {
	repo        repository.AnnouncementRepository
	cardNumber  string
	autoConfirm bool
}

// NewPaymentService creates a PaymentService. cardNumber is the bank-transfer
// target returned to payers; autoConfirm waives payment and publishes
// listings immediately.
func NewPaymentService(repo repository.AnnouncementRepository, cardNumber string, autoConfirm bool) PaymentService {
	return &paymentService{repo: repo, cardNumber: cardNumber, autoConfirm: autoConfirm}
}

func (s *paymentService) Create(ctx context.Context, params CreatePaymentParams) (*PaymentIntent, error) {
	title := strings.TrimSpace(params.Title)
	description := strings.TrimSpace(params.Description)
	if title == "" || description == "" {
		return nil, ErrValidation
	}

	tier := params.Tier
	if tier == "" {
		tier = model.TierRegular
	}
	if !model.ValidTier(tier) {
		return nil, ErrValidation
	}

	category := strings.TrimSpace(params.Category)
	if category == "" {
		category = defaultCategory
	}
	author := strings.TrimSpace(params.AuthorName)
	if author == "" {
		author = anonymousName
	}

	status := model.StatusPendingPayment
	if s.autoConfirm {
		status = model.StatusPublished
	}

	a := &model.Announcement{
		Title:         title,
		Description:   description,
		Category:      category,
		Author:        author,
		AuthorContact: strings.TrimSpace(params.AuthorContact),
		Tier:          tier,
		Status:        status,
		PaymentAmount: model.PriceForTier(tier),
	}
	if tier == model.TierVIP {
		expires := time.Now().Add(vipLifetime)
		a.ExpiresAt = &expires
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	return &PaymentIntent{
		AnnouncementID: a.ID,
		Amount:         a.PaymentAmount,
		CardNumber:     s.cardNumber,
		PaymentStatus:  a.Status,
	}, nil
}

func (s *paymentService) Check(ctx context.Context, announcementID int) (*PaymentIntent, error) {
	a, err := s.repo.GetByID(ctx, announcementID)
	if err != nil {
		return nil, err
	}
	status := "paid"
	if a.Status == model.StatusPendingPayment {
		status = model.StatusPendingPayment
	}
	return &PaymentIntent{
		AnnouncementID: a.ID,
		Amount:         a.PaymentAmount,
		CardNumber:     s.cardNumber,
		PaymentStatus:  status,
	}, nil
}

func (s *paymentService) Confirm(ctx context.Context, announcementID int) error {
	err := s.repo.SetStatus(ctx, announcementID, model.StatusPendingPayment, model.StatusPublished)
	if errors.Is(err, repository.ErrNotFound) {
		if _, getErr := s.repo.GetByID(ctx, announcementID); getErr != nil {
			return getErr
		}
		return ErrInvalidTransition
	}
	return err
}
