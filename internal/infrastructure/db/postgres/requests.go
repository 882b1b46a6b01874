package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

type RequestRepo struct {
	pool *pgxpool.Pool
}

func NewRequestRepo(pool *pgxpool.Pool) *RequestRepo { return &RequestRepo{pool: pool} }

const requestColumns = `id, event_id, requester_id, status, created_at`

func (r *RequestRepo) Create(ctx context.Context, req *domain.ParticipationRequest) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO requests (`+requestColumns+`)
VALUES ($1,$2,$3,$4,$5)
`, req.ID, req.EventID, req.RequesterID, string(req.Status), req.CreatedAt)
	return err
}

func (r *RequestRepo) GetByID(ctx context.Context, id string) (*domain.ParticipationRequest, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)
	req, err := scanRequest(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("participation request " + id + " not found")
	}
	return req, err
}

func (r *RequestRepo) GetManyByID(ctx context.Context, ids []string) ([]*domain.ParticipationRequest, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.queryRequests(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = ANY($1)`, ids)
}

func (r *RequestRepo) Update(ctx context.Context, req *domain.ParticipationRequest) error {
	_, err := r.pool.Exec(ctx, `UPDATE requests SET status = $2 WHERE id = $1`,
		req.ID, string(req.Status))
	return err
}

// UpdateAll persists a moderation batch as one transaction. The touched rows
// are locked FOR UPDATE first, ordered by id to keep lock acquisition
// deadlock-free against concurrent batches.
func (r *RequestRepo) UpdateAll(ctx context.Context, reqs []*domain.ParticipationRequest) error {
	if len(reqs) == 0 {
		return nil
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ids := make([]string, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.ID)
	}
	rows, err := tx.Query(ctx, `SELECT id FROM requests WHERE id = ANY($1) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return err
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, req := range reqs {
		if _, err := tx.Exec(ctx, `UPDATE requests SET status = $2 WHERE id = $1`,
			req.ID, string(req.Status)); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *RequestRepo) ListByRequester(ctx context.Context, requesterID string) ([]*domain.ParticipationRequest, error) {
	return r.queryRequests(ctx, `
SELECT `+requestColumns+` FROM requests
WHERE requester_id = $1
ORDER BY created_at ASC, id ASC
`, requesterID)
}

func (r *RequestRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.ParticipationRequest, error) {
	return r.queryRequests(ctx, `
SELECT `+requestColumns+` FROM requests
WHERE event_id = $1
ORDER BY created_at ASC, id ASC
`, eventID)
}

func (r *RequestRepo) CountConfirmed(ctx context.Context, eventID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
SELECT COUNT(*) FROM requests WHERE event_id = $1 AND status = 'confirmed'
`, eventID).Scan(&n)
	return n, err
}

// ConfirmedCount satisfies the event read-path port with the same query.
func (r *RequestRepo) ConfirmedCount(ctx context.Context, eventID string) (int, error) {
	return r.CountConfirmed(ctx, eventID)
}

func (r *RequestRepo) queryRequests(ctx context.Context, q string, args ...any) ([]*domain.ParticipationRequest, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.ParticipationRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func scanRequest(row pgx.Row) (*domain.ParticipationRequest, error) {
	var req domain.ParticipationRequest
	var status string
	if err := row.Scan(&req.ID, &req.EventID, &req.RequesterID, &status, &req.CreatedAt); err != nil {
		return nil, err
	}
	req.Status = domain.RequestStatus(status)
	return &req, nil
}
