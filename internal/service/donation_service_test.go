package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/helpnearby/backend/internal/model"
	"github.com/helpnearby/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock DonationRepository
// ---------------------------------------------------------------------------

type mockDonationRepo struct {
	createFunc   func(ctx context.Context, d *model.Donation) error
	getByIDFunc  func(ctx context.Context, id int) (*model.Donation, error)
	listPaidFunc func(ctx context.Context, limit int) ([]*model.Donation, error)
	listAllFunc  func(ctx context.Context) ([]*model.Donation, error)
	assignFunc   func(ctx context.Context, id int, assignedTo, adminNotes string) error
}

func (m *mockDonationRepo) Create(ctx context.Context, d *model.Donation) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, d)
	}
	return nil
}
func (m *mockDonationRepo) GetByID(ctx context.Context, id int) (*model.Donation, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockDonationRepo) ListPaid(ctx context.Context, limit int) ([]*model.Donation, error) {
	if m.listPaidFunc != nil {
		return m.listPaidFunc(ctx, limit)
	}
	return nil, nil
}
func (m *mockDonationRepo) ListAll(ctx context.Context) ([]*model.Donation, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, nil
}
func (m *mockDonationRepo) Assign(ctx context.Context, id int, assignedTo, adminNotes string) error {
	if m.assignFunc != nil {
		return m.assignFunc(ctx, id, assignedTo, adminNotes)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Create tests
// ---------------------------------------------------------------------------

func TestDonationService_Create_RequiresPositiveAmount(t *testing.T) {
	svc := NewDonationService(&mockDonationRepo{}, nil, testCard)

	if _, err := svc.Create(context.Background(), CreateDonationParams{Amount: 0}); !errors.Is(err, ErrValidation) {
		t.Errorf("zero amount: expected ErrValidation, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateDonationParams{Amount: -50}); !errors.Is(err, ErrValidation) {
		t.Errorf("negative amount: expected ErrValidation, got %v", err)
	}
}

func TestDonationService_Create_AnonymousDefault(t *testing.T) {
	var created *model.Donation
	mock := &mockDonationRepo{
		createFunc: func(ctx context.Context, d *model.Donation) error {
			d.ID = 7
			created = d
			return nil
		},
	}
	svc := NewDonationService(mock, nil, testCard)

	receipt, err := svc.Create(context.Background(), CreateDonationParams{Amount: 500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.DonorName != "Аноним" {
		t.Errorf("expected default donor Аноним, got %q", created.DonorName)
	}
	if receipt.Donation.ID != 7 {
		t.Errorf("expected stored ID on receipt, got %d", receipt.Donation.ID)
	}
}

func TestDonationService_Create_ReceiptCarriesPaymentTarget(t *testing.T) {
	mock := &mockDonationRepo{
		createFunc: func(ctx context.Context, d *model.Donation) error {
			d.ID = 1
			return nil
		},
	}
	svc := NewDonationService(mock, nil, testCard)

	receipt, err := svc.Create(context.Background(), CreateDonationParams{DonorName: "Ольга", Amount: 300})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receipt.CardNumber != testCard {
		t.Errorf("expected card %s, got %s", testCard, receipt.CardNumber)
	}
	if !strings.Contains(receipt.PaymentURL, "card="+testCard) ||
		!strings.Contains(receipt.PaymentURL, "amount=300") {
		t.Errorf("payment URL missing card or amount: %s", receipt.PaymentURL)
	}
}

// ---------------------------------------------------------------------------
// Listing tests
// ---------------------------------------------------------------------------

func TestDonationService_ListPublic_StripsAdminFields(t *testing.T) {
	mock := &mockDonationRepo{
		listPaidFunc: func(ctx context.Context, limit int) ([]*model.Donation, error) {
			if limit != 20 {
				t.Errorf("expected public limit 20, got %d", limit)
			}
			return []*model.Donation{
				{ID: 1, DonorName: "Ольга", DonorContact: "@olga", Amount: 300,
					PaymentStatus: "paid", AssignedTo: "семья Ивановых", AdminNotes: "urgent"},
			}, nil
		},
	}
	svc := NewDonationService(mock, nil, testCard)

	got, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 donation, got %d", len(got))
	}
	if got[0].DonorName != "Ольга" || got[0].Amount != 300 {
		t.Errorf("public fields lost: %+v", got[0])
	}
}

func TestDonationService_ListAll_ReturnsEverything(t *testing.T) {
	mock := &mockDonationRepo{
		listAllFunc: func(ctx context.Context) ([]*model.Donation, error) {
			return []*model.Donation{{ID: 1, DonorContact: "@olga", AssignedTo: "семья"}}, nil
		},
	}
	svc := NewDonationService(mock, nil, testCard)

	got, err := svc.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].DonorContact == "" || got[0].AssignedTo == "" {
		t.Error("admin listing must keep contact and assignment fields")
	}
}

// ---------------------------------------------------------------------------
// Assign tests
// ---------------------------------------------------------------------------

func TestDonationService_Assign_RequiresTarget(t *testing.T) {
	svc := NewDonationService(&mockDonationRepo{}, nil, testCard)

	if err := svc.Assign(context.Background(), 1, "  ", "note"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestDonationService_Assign_Propagates(t *testing.T) {
	var gotID int
	var gotTarget, gotNotes string
	mock := &mockDonationRepo{
		assignFunc: func(ctx context.Context, id int, assignedTo, adminNotes string) error {
			gotID, gotTarget, gotNotes = id, assignedTo, adminNotes
			return nil
		},
	}
	svc := NewDonationService(mock, nil, testCard)

	if err := svc.Assign(context.Background(), 3, "семья Ивановых", "передано"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != 3 || gotTarget != "семья Ивановых" || gotNotes != "передано" {
		t.Errorf("unexpected assign args: %d %q %q", gotID, gotTarget, gotNotes)
	}
}

func TestDonationService_Assign_UnknownIDIsNotFound(t *testing.T) {
	mock := &mockDonationRepo{
		assignFunc: func(ctx context.Context, id int, assignedTo, adminNotes string) error {
			return repository.ErrNotFound
		},
	}
	svc := NewDonationService(mock, nil, testCard)

	if err := svc.Assign(context.Background(), 404, "семья", ""); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
