package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

type CompilationRepo struct {
	pool *pgxpool.Pool
}

func NewCompilationRepo(pool *pgxpool.Pool) *CompilationRepo {
	return &CompilationRepo{pool: pool}
}

// Compilation membership lives in compilation_events(position keeps order);
// writes replace the membership wholesale inside the compilation's tx.

func (r *CompilationRepo) Create(ctx context.Context, c *domain.Compilation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
INSERT INTO compilations (id, title, pinned, created_at) VALUES ($1,$2,$3,$4)
`, c.ID, c.Title, c.Pinned, c.CreatedAt); err != nil {
		return err
	}
	if err := insertMembers(ctx, tx, c.ID, c.EventIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *CompilationRepo) GetByID(ctx context.Context, id string) (*domain.Compilation, error) {
	var c domain.Compilation
	err := r.pool.QueryRow(ctx, `
SELECT id, title, pinned, created_at FROM compilations WHERE id = $1
`, id).Scan(&c.ID, &c.Title, &c.Pinned, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("compilation " + id + " not found")
	}
	if err != nil {
		return nil, err
	}

	c.EventIDs, err = r.members(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompilationRepo) Update(ctx context.Context, c *domain.Compilation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
UPDATE compilations SET title = $2, pinned = $3 WHERE id = $1
`, c.ID, c.Title, c.Pinned); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM compilation_events WHERE compilation_id = $1`, c.ID); err != nil {
		return err
	}
	if err := insertMembers(ctx, tx, c.ID, c.EventIDs); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *CompilationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM compilations WHERE id = $1`, id)
	return err
}

func (r *CompilationRepo) List(ctx context.Context, pinned *bool, from, size int) ([]*domain.Compilation, error) {
	q := `
SELECT id, title, pinned, created_at FROM compilations
ORDER BY created_at ASC, id ASC
LIMIT $1 OFFSET $2
`
	args := []any{size, from}
	if pinned != nil {
		q = `
SELECT id, title, pinned, created_at FROM compilations
WHERE pinned = $3
ORDER BY created_at ASC, id ASC
LIMIT $1 OFFSET $2
`
		args = append(args, *pinned)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Compilation
	for rows.Next() {
		var c domain.Compilation
		if err := rows.Scan(&c.ID, &c.Title, &c.Pinned, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, c := range out {
		c.EventIDs, err = r.members(ctx, c.ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *CompilationRepo) members(ctx context.Context, compilationID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
SELECT event_id FROM compilation_events
WHERE compilation_id = $1
ORDER BY position ASC
`, compilationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func insertMembers(ctx context.Context, tx pgx.Tx, compilationID string, eventIDs []string) error {
	for i, eventID := range eventIDs {
		if _, err := tx.Exec(ctx, `
INSERT INTO compilation_events (compilation_id, event_id, position) VALUES ($1,$2,$3)
`, compilationID, eventID, i); err != nil {
			return err
		}
	}
	return nil
}
