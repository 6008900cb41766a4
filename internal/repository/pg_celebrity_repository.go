package repository

import (
	"context"

	"github.com/helpnearby/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgCelebrityRepository struct {
	pool *pgxpool.Pool
}

// NewPgCelebrityRepository returns a PostgreSQL-backed CelebrityRepository.
func NewPgCelebrityRepository(pool *pgxpool.Pool) CelebrityRepository {
	return &pgCelebrityRepository{pool: pool}
}

const celebritySelectCols = `id, requester_name, COALESCE(requester_contact, ''),
	celebrity_name, request_text, status, COALESCE(admin_notes, ''), created_at`

func scanCelebrityRequest(scan func(...any) error) (*model.CelebrityRequest, error) {
	cr := &model.CelebrityRequest{}
	return cr, scan(
		&cr.ID, &cr.RequesterName, &cr.RequesterContact, &cr.CelebrityName,
		&cr.RequestText, &cr.Status, &cr.AdminNotes, &cr.CreatedAt,
	)
}

func (r *pgCelebrityRepository) Create(ctx context.Context, req *model.CelebrityRequest) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO celebrity_requests
		 (requester_name, requester_contact, celebrity_name, request_text)
		 VALUES ($1, NULLIF($2,''), $3, $4)
		 RETURNING id, status, created_at`,
		req.RequesterName, req.RequesterContact, req.CelebrityName, req.RequestText,
	).Scan(&req.ID, &req.Status, &req.CreatedAt)
}

func (r *pgCelebrityRepository) ListPublic(ctx context.Context, limit int) ([]*model.CelebrityRequest, error) {
	return r.list(ctx,
		`SELECT `+celebritySelectCols+` FROM celebrity_requests
		 WHERE status != 'rejected'
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
}

func (r *pgCelebrityRepository) ListAll(ctx context.Context) ([]*model.CelebrityRequest, error) {
	return r.list(ctx,
		`SELECT `+celebritySelectCols+` FROM celebrity_requests
		 ORDER BY created_at DESC`)
}

func (r *pgCelebrityRepository) list(ctx context.Context, query string, args ...any) ([]*model.CelebrityRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.CelebrityRequest
	for rows.Next() {
		cr, err := scanCelebrityRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, cr)
	}
	return list, rows.Err()
}

func (r *pgCelebrityRepository) UpdateStatus(ctx context.Context, id int, status, adminNotes string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE celebrity_requests
		 SET status = $1, admin_notes = NULLIF($2,'')
		 WHERE id = $3`,
		status, adminNotes, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
