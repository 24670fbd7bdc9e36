package itemrequest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Repository defines methods for accessing item requests from storage.
type Repository interface {
	Create(ctx context.Context, req *ItemRequest) error
	GetByID(ctx context.Context, id int64) (*ItemRequest, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]*ItemRequest, error)
	// ListByOtherUsers returns requests published by everyone except the
	// given user, newest first. A non-positive limit disables pagination.
	ListByOtherUsers(ctx context.Context, requestorID int64, limit, offset int) ([]*ItemRequest, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// itemsSubquery aggregates the items answering a request into a JSON array,
// scanned alongside the request row.
const itemsSubquery = `
	COALESCE(
		(
			SELECT json_agg(json_build_object(
				'id', i.id,
				'name', i.name,
				'description', i.description,
				'available', i.is_available,
				'requestId', i.request_id
			))
			FROM public.items i
			WHERE i.request_id = r.id
		),
		'[]'::json
	)
`

func (r *pgxRepository) Create(ctx context.Context, req *ItemRequest) error {
	const query = `
		INSERT INTO public.requests (description, requestor_id)
		VALUES ($1, $2)
		RETURNING id, created
	`

	if err := r.pool.QueryRow(ctx, query, req.Description, req.RequestorID).
		Scan(&req.ID, &req.Created); err != nil {
		return fmt.Errorf("create item request failed: %w", err)
	}

	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*ItemRequest, error) {
	query := `
		SELECT r.id, r.description, r.requestor_id, r.created, ` + itemsSubquery + `
		FROM public.requests r
		WHERE r.id = $1
	`

	req, err := scanRequest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item request failed: %w", err)
	}

	return req, nil
}

func (r *pgxRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]*ItemRequest, error) {
	query := `
		SELECT r.id, r.description, r.requestor_id, r.created, ` + itemsSubquery + `
		FROM public.requests r
		WHERE r.requestor_id = $1
		ORDER BY r.created
	`

	rows, err := r.pool.Query(ctx, query, requestorID)
	if err != nil {
		return nil, fmt.Errorf("list item requests failed: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

func (r *pgxRepository) ListByOtherUsers(ctx context.Context, requestorID int64, limit, offset int) ([]*ItemRequest, error) {
	query := `
		SELECT r.id, r.description, r.requestor_id, r.created, ` + itemsSubquery + `
		FROM public.requests r
		WHERE r.requestor_id <> $1
		ORDER BY r.created DESC
	`
	args := []any{requestorID}

	if limit > 0 {
		query += " LIMIT $2 OFFSET $3"
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list other users' item requests failed: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

func scanRequest(row pgx.Row) (*ItemRequest, error) {
	var req ItemRequest
	var itemsJSON []byte

	if err := row.Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created, &itemsJSON); err != nil {
		return nil, err
	}

	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &req.Items); err != nil {
			log.Warnf("failed to unmarshal items for request %d: %v", req.ID, err)
		}
	}

	return &req, nil
}

func collectRequests(rows pgx.Rows) ([]*ItemRequest, error) {
	var requests []*ItemRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item request failed: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
