package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	appevent "github.com/baechuer/cityevents/services/listing-service/internal/application/event"
	"github.com/baechuer/cityevents/services/listing-service/internal/domain"
)

type EventRepo struct {
	pool *pgxpool.Pool
}

func NewEventRepo(pool *pgxpool.Pool) *EventRepo { return &EventRepo{pool: pool} }

const eventColumns = `id, owner_id, category_id, title, annotation, description,
       lat, lon, paid, start_time, participant_limit, request_moderation,
       state, published_at, created_at, updated_at`

func (r *EventRepo) Create(ctx context.Context, e *domain.Event) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO events (`+eventColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
`, e.ID, e.OwnerID, e.CategoryID, e.Title, e.Annotation, e.Description,
		e.Lat, e.Lon, e.Paid, e.StartTime, e.ParticipantLimit, e.RequestModeration,
		string(e.State), e.PublishedAt, e.CreatedAt, e.UpdatedAt)
	return err
}

func (r *EventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound("event " + id + " not found")
	}
	return e, err
}

func (r *EventRepo) GetMany(ctx context.Context, ids []string) ([]*domain.Event, error) {
	return r.queryEvents(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ANY($1) ORDER BY start_time ASC`, ids)
}

func (r *EventRepo) Update(ctx context.Context, e *domain.Event) error {
	_, err := r.pool.Exec(ctx, `
UPDATE events SET
  category_id=$2, title=$3, annotation=$4, description=$5,
  lat=$6, lon=$7, paid=$8, start_time=$9, participant_limit=$10,
  request_moderation=$11, state=$12, published_at=$13, updated_at=$14
WHERE id=$1
`, e.ID, e.CategoryID, e.Title, e.Annotation, e.Description,
		e.Lat, e.Lon, e.Paid, e.StartTime, e.ParticipantLimit,
		e.RequestModeration, string(e.State), e.PublishedAt, e.UpdatedAt)
	return err
}

func (r *EventRepo) ListPublic(ctx context.Context, f appevent.PublicFilter) ([]*domain.Event, error) {
	conds := []string{"state = 'published'"}
	args := []any{}

	if f.Text != "" {
		args = append(args, "%"+strings.ToLower(f.Text)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(LOWER(annotation) LIKE $%d OR LOWER(description) LIKE $%d)", n, n))
	}
	if len(f.CategoryIDs) > 0 {
		args = append(args, f.CategoryIDs)
		conds = append(conds, fmt.Sprintf("category_id = ANY($%d)", len(args)))
	}
	if f.Paid != nil {
		args = append(args, *f.Paid)
		conds = append(conds, fmt.Sprintf("paid = $%d", len(args)))
	}
	if f.RangeStart != nil {
		args = append(args, *f.RangeStart)
		conds = append(conds, fmt.Sprintf("start_time >= $%d", len(args)))
	}
	if f.RangeEnd != nil {
		args = append(args, *f.RangeEnd)
		conds = append(conds, fmt.Sprintf("start_time <= $%d", len(args)))
	}

	args = append(args, f.Size, f.From)
	q := fmt.Sprintf(`
SELECT `+eventColumns+`
FROM events
WHERE %s
ORDER BY start_time ASC, id ASC
LIMIT $%d OFFSET $%d
`, strings.Join(conds, " AND "), len(args)-1, len(args))

	return r.queryEvents(ctx, q, args...)
}

func (r *EventRepo) ListByOwner(ctx context.Context, ownerID string, from, size int) ([]*domain.Event, error) {
	return r.queryEvents(ctx, `
SELECT `+eventColumns+`
FROM events
WHERE owner_id = $1
ORDER BY created_at DESC, id ASC
LIMIT $2 OFFSET $3
`, ownerID, size, from)
}

func (r *EventRepo) ListAdmin(ctx context.Context, f appevent.AdminFilter) ([]*domain.Event, error) {
	conds := []string{"TRUE"}
	args := []any{}

	if len(f.UserIDs) > 0 {
		args = append(args, f.UserIDs)
		conds = append(conds, fmt.Sprintf("owner_id = ANY($%d)", len(args)))
	}
	if len(f.States) > 0 {
		states := make([]string, 0, len(f.States))
		for _, st := range f.States {
			states = append(states, string(st))
		}
		args = append(args, states)
		conds = append(conds, fmt.Sprintf("state = ANY($%d)", len(args)))
	}
	if len(f.CategoryIDs) > 0 {
		args = append(args, f.CategoryIDs)
		conds = append(conds, fmt.Sprintf("category_id = ANY($%d)", len(args)))
	}
	if f.RangeStart != nil {
		args = append(args, *f.RangeStart)
		conds = append(conds, fmt.Sprintf("start_time >= $%d", len(args)))
	}
	if f.RangeEnd != nil {
		args = append(args, *f.RangeEnd)
		conds = append(conds, fmt.Sprintf("start_time <= $%d", len(args)))
	}

	args = append(args, f.Size, f.From)
	q := fmt.Sprintf(`
SELECT `+eventColumns+`
FROM events
WHERE %s
ORDER BY created_at DESC, id ASC
LIMIT $%d OFFSET $%d
`, strings.Join(conds, " AND "), len(args)-1, len(args))

	return r.queryEvents(ctx, q, args...)
}

// Exists backs compilation event-id validation.
func (r *EventRepo) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

// AnyInCategory backs the category delete guard.
func (r *EventRepo) AnyInCategory(ctx context.Context, categoryID string) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE category_id = $1)`, categoryID).Scan(&ok)
	return ok, err
}

func (r *EventRepo) queryEvents(ctx context.Context, q string, args ...any) ([]*domain.Event, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var e domain.Event
	var state string
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.CategoryID, &e.Title, &e.Annotation, &e.Description,
		&e.Lat, &e.Lon, &e.Paid, &e.StartTime, &e.ParticipantLimit, &e.RequestModeration,
		&state, &e.PublishedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.State = domain.EventState(state)
	if !e.State.Valid() {
		return nil, fmt.Errorf("invalid event state %q in db", state)
	}
	return &e, nil
}
