package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo { return &CommentRepo{pool: pool} }

func (r *CommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO comments (id, event_id, author_id, text, created_at)
VALUES ($1,$2,$3,$4,$5)
`, c.ID, c.EventID, c.AuthorID, c.Text, c.CreatedAt)
	return err
}

func (r *CommentRepo) ListByEvent(ctx context.Context, eventID string, from, size int) ([]*domain.Comment, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, event_id, author_id, text, created_at FROM comments
WHERE event_id = $1
ORDER BY created_at ASC, id ASC
LIMIT $2 OFFSET $3
`, eventID, size, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.EventID, &c.AuthorID, &c.Text, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
