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

// publicDonationLimit caps the public donation wall, matching the original
// gateway.
const publicDonationLimit = 20

// CreateDonationParams are the inputs for recording a donation.
type CreateDonationParams struct {
	DonorName    string
	DonorContact string
	Amount       int
	Message      string
}

// DonationReceipt is returned after a donation is recorded: where to transfer
// the money.
type DonationReceipt struct {
	Donation   *model.Donation
	CardNumber string
	PaymentURL string
}

// DonationService provides the charitable donation flow and the admin
// distribution workflow.
type DonationService interface {
	// Create records a donation (amount must be positive) and notifies the
	// admin chat.
	Create(ctx context.Context, params CreateDonationParams) (*DonationReceipt, error)
	// ListPublic returns the latest paid donations without contact or
	// assignment fields.
	ListPublic(ctx context.Context) ([]*model.PublicDonation, error)
	// ListAll returns every donation with all fields (admin only; the
	// handler enforces the credential).
	ListAll(ctx context.Context) ([]*model.Donation, error)
	// Assign sets the distribution target and notes on a donation.
	Assign(ctx context.Context, id int, assignedTo, adminNotes string) error
}

type donationService struct {
	repo       repository.DonationRepository
	notifier   telegram.Notifier
	cardNumber string
}

// NewDonationService creates a DonationService. notifier can be nil to
// disable admin notifications.
func NewDonationService(repo repository.DonationRepository, notifier telegram.Notifier, cardNumber string) DonationService {
	return &donationService{repo: repo, notifier: notifier, cardNumber: cardNumber}
}

func (s *donationService) Create(ctx context.Context, params CreateDonationParams) (*DonationReceipt, error) {
	if params.Amount <= 0 {
		return nil, ErrValidation
	}

	donor := strings.TrimSpace(params.DonorName)
	if donor == "" {
		donor = anonymousName
	}

	d := &model.Donation{
		DonorName:     donor,
		DonorContact:  strings.TrimSpace(params.DonorContact),
		Amount:        params.Amount,
		Message:       strings.TrimSpace(params.Message),
		PaymentStatus: "paid",
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.notify(fmt.Sprintf(
		"💰 <b>Новое пожертвование!</b>\n\n👤 <b>От:</b> %s\n💵 <b>Сумма:</b> %d₽\n💬 <b>Сообщение:</b> %s\n📞 <b>Контакт:</b> %s\n\nID пожертвования: %d",
		d.DonorName, d.Amount, d.Message, d.DonorContact, d.ID))

	return &DonationReceipt{
		Donation:   d,
		CardNumber: s.cardNumber,
		PaymentURL: fmt.Sprintf("https://www.tinkoff.ru/rm/p2p/?card=%s&amount=%d", s.cardNumber, d.Amount),
	}, nil
}

// notify delivers an admin notification without blocking the request; a
// failed delivery must never fail the donation itself.
func (s *donationService) notify(text string) {
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

func (s *donationService) ListPublic(ctx context.Context) ([]*model.PublicDonation, error) {
	donations, err := s.repo.ListPaid(ctx, publicDonationLimit)
	if err != nil {
		return nil, err
	}
	public := make([]*model.PublicDonation, 0, len(donations))
	for _, d := range donations {
		public = append(public, d.Public())
	}
	return public, nil
}

func (s *donationService) ListAll(ctx context.Context) ([]*model.Donation, error) {
	return s.repo.ListAll(ctx)
}

func (s *donationService) Assign(ctx context.Context, id int, assignedTo, adminNotes string) error {
	if strings.TrimSpace(assignedTo) == "" {
		return ErrValidation
	}
	return s.repo.Assign(ctx, id, assignedTo, adminNotes)
}
