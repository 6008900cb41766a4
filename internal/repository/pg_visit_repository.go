package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type pgVisitRepository struct {
	pool *pgxpool.Pool
}

// NewPgVisitRepository returns a PostgreSQL-backed VisitRepository.
func NewPgVisitRepository(pool *pgxpool.Pool) VisitRepository {
	return &pgVisitRepository{pool: pool}
}

func (r *pgVisitRepository) Record(ctx context.Context, visitorToken string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO visits (visitor_token) VALUES ($1)`, visitorToken)
	return err
}

func (r *pgVisitRepository) Counts(ctx context.Context) (VisitCounts, error) {
	var c VisitCounts
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*)::int,
		        COUNT(DISTINCT visitor_token)::int,
		        COUNT(*) FILTER (WHERE created_at >= DATE_TRUNC('day', NOW()))::int
		 FROM visits`).Scan(&c.Total, &c.Unique, &c.Today)
	return c, err
}
