package repository

import (
	"context"
	"errors"

	"github.com/helpnearby/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgResponseRepository struct {
	pool *pgxpool.Pool
}

// NewPgResponseRepository returns a PostgreSQL-backed ResponseRepository.
func NewPgResponseRepository(pool *pgxpool.Pool) ResponseRepository {
	return &pgResponseRepository{pool: pool}
}

func (r *pgResponseRepository) Create(ctx context.Context, resp *model.Response) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO responses
		 (announcement_id, responder_name, responder_contact, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, status, created_at`,
		resp.AnnouncementID, resp.ResponderName, resp.ResponderContact, resp.Message,
	).Scan(&resp.ID, &resp.Status, &resp.CreatedAt)
}

func (r *pgResponseRepository) GetByID(ctx context.Context, id int) (*model.Response, error) {
	resp := &model.Response{}
	err := r.pool.QueryRow(ctx,
		`SELECT r.id, r.announcement_id, r.responder_name,
		        COALESCE(r.responder_contact, ''), r.message, r.status,
		        (SELECT COUNT(*) FROM messages WHERE response_id = r.id),
		        r.created_at
		 FROM responses r WHERE r.id = $1`, id,
	).Scan(&resp.ID, &resp.AnnouncementID, &resp.ResponderName,
		&resp.ResponderContact, &resp.Message, &resp.Status,
		&resp.MessageCount, &resp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return resp, nil
}

func (r *pgResponseRepository) ListByAnnouncement(ctx context.Context, announcementID int) ([]*model.Response, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT r.id, r.announcement_id, r.responder_name,
		        COALESCE(r.responder_contact, ''), r.message, r.status,
		        (SELECT COUNT(*) FROM messages WHERE response_id = r.id),
		        r.created_at
		 FROM responses r
		 WHERE r.announcement_id = $1
		 ORDER BY r.created_at DESC`,
		announcementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.Response
	for rows.Next() {
		resp := &model.Response{}
		if err := rows.Scan(&resp.ID, &resp.AnnouncementID, &resp.ResponderName,
			&resp.ResponderContact, &resp.Message, &resp.Status,
			&resp.MessageCount, &resp.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, resp)
	}
	return list, rows.Err()
}

func (r *pgResponseRepository) CreateMessage(ctx context.Context, msg *model.Message) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO messages (response_id, sender_name, message)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		msg.ResponseID, msg.Sender, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *pgResponseRepository) ListMessages(ctx context.Context, responseID int) ([]*model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, response_id, sender_name, message, created_at
		 FROM messages
		 WHERE response_id = $1
		 ORDER BY created_at ASC`,
		responseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.Message
	for rows.Next() {
		m := &model.Message{}
		if err := rows.Scan(&m.ID, &m.ResponseID, &m.Sender, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
