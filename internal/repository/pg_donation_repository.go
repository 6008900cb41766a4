package repository

import (
	"context"
	"errors"

	"github.com/helpnearby/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgDonationRepository struct {
	pool *pgxpool.Pool
}

// NewPgDonationRepository returns a PostgreSQL-backed DonationRepository.
func NewPgDonationRepository(pool *pgxpool.Pool) DonationRepository {
	return &pgDonationRepository{pool: pool}
}

const donationSelectCols = `id, donor_name, COALESCE(donor_contact, ''), amount,
	COALESCE(message, ''), payment_status, COALESCE(assigned_to, ''),
	COALESCE(admin_notes, ''), created_at`

func scanDonation(scan func(...any) error) (*model.Donation, error) {
	d := &model.Donation{}
	return d, scan(
		&d.ID, &d.DonorName, &d.DonorContact, &d.Amount, &d.Message,
		&d.PaymentStatus, &d.AssignedTo, &d.AdminNotes, &d.CreatedAt,
	)
}

func (r *pgDonationRepository) Create(ctx context.Context, d *model.Donation) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO donations
		 (donor_name, donor_contact, amount, message, payment_status)
		 VALUES ($1, NULLIF($2,''), $3, NULLIF($4,''), $5)
		 RETURNING id, created_at`,
		d.DonorName, d.DonorContact, d.Amount, d.Message, d.PaymentStatus,
	).Scan(&d.ID, &d.CreatedAt)
}

func (r *pgDonationRepository) GetByID(ctx context.Context, id int) (*model.Donation, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+donationSelectCols+` FROM donations WHERE id = $1`, id)
	d, err := scanDonation(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *pgDonationRepository) ListPaid(ctx context.Context, limit int) ([]*model.Donation, error) {
	return r.list(ctx,
		`SELECT `+donationSelectCols+` FROM donations
		 WHERE payment_status = 'paid'
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
}

func (r *pgDonationRepository) ListAll(ctx context.Context) ([]*model.Donation, error) {
	return r.list(ctx,
		`SELECT `+donationSelectCols+` FROM donations ORDER BY created_at DESC`)
}

func (r *pgDonationRepository) list(ctx context.Context, query string, args ...any) ([]*model.Donation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.Donation
	for rows.Next() {
		d, err := scanDonation(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *pgDonationRepository) Assign(ctx context.Context, id int, assignedTo, adminNotes string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE donations
		 SET assigned_to = NULLIF($1,''), admin_notes = NULLIF($2,'')
		 WHERE id = $3`,
		assignedTo, adminNotes, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
