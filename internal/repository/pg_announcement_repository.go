package repository

import (
	"context"
	"errors"

	"github.com/helpnearby/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgAnnouncementRepository struct {
	pool *pgxpool.Pool
}

// NewPgAnnouncementRepository returns a PostgreSQL-backed AnnouncementRepository.
func NewPgAnnouncementRepository(pool *pgxpool.Pool) AnnouncementRepository {
	return &pgAnnouncementRepository{pool: pool}
}

const announcementSelectCols = `id, title, description, category, author_name,
	COALESCE(author_contact, ''), type, status, payment_amount, view_count,
	expires_at, created_at`

func scanAnnouncement(scan func(...any) error) (*model.Announcement, error) {
	a := &model.Announcement{}
	return a, scan(
		&a.ID, &a.Title, &a.Description, &a.Category, &a.Author,
		&a.AuthorContact, &a.Tier, &a.Status, &a.PaymentAmount, &a.ViewCount,
		&a.ExpiresAt, &a.CreatedAt,
	)
}

func (r *pgAnnouncementRepository) Create(ctx context.Context, a *model.Announcement) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO announcements
		 (title, description, category, author_name, author_contact, type,
		  status, payment_amount, expires_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5,''), $6, $7, $8, $9)
		 RETURNING id, created_at`,
		a.Title, a.Description, a.Category, a.Author, a.AuthorContact,
		a.Tier, a.Status, a.PaymentAmount, a.ExpiresAt,
	).Scan(&a.ID, &a.CreatedAt)
}

func (r *pgAnnouncementRepository) GetByID(ctx context.Context, id int) (*model.Announcement, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+announcementSelectCols+` FROM announcements WHERE id = $1`, id)
	a, err := scanAnnouncement(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Feed ordering matches the original gateway: vip, then boosted, then regular,
// newest first within each group.
const tierOrderClause = `ORDER BY CASE type
		WHEN 'vip' THEN 1 WHEN 'boosted' THEN 2 ELSE 3 END, created_at DESC`

func (r *pgAnnouncementRepository) ListPublished(ctx context.Context) ([]*model.Announcement, error) {
	return r.list(ctx,
		`SELECT `+announcementSelectCols+` FROM announcements
		 WHERE status = 'published' `+tierOrderClause)
}

func (r *pgAnnouncementRepository) ListByAuthor(ctx context.Context, author string) ([]*model.Announcement, error) {
	return r.list(ctx,
		`SELECT `+announcementSelectCols+` FROM announcements
		 WHERE author_name = $1 `+tierOrderClause, author)
}

func (r *pgAnnouncementRepository) ListAll(ctx context.Context) ([]*model.Announcement, error) {
	return r.list(ctx,
		`SELECT `+announcementSelectCols+` FROM announcements
		 ORDER BY created_at DESC`)
}

func (r *pgAnnouncementRepository) list(ctx context.Context, query string, args ...any) ([]*model.Announcement, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *pgAnnouncementRepository) SetStatus(ctx context.Context, id int, from, to string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE announcements SET status = $1 WHERE id = $2 AND status = $3`,
		to, id, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgAnnouncementRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgAnnouncementRepository) IncrementViewCount(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE announcements SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgAnnouncementRepository) TotalViews(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(view_count), 0)::int FROM announcements`).Scan(&total)
	return total, err
}
