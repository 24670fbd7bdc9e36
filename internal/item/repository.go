package item

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing items, their comments and the
// booking projection used by item views.
type Repository interface {
	Create(ctx context.Context, i *Item) error
	GetByID(ctx context.Context, id int64) (*Item, error)
	// ListByOwner returns the owner's items ordered by id. A non-positive
	// limit disables pagination.
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*Item, error)
	Update(ctx context.Context, i *Item) error
	// Search finds available items whose name or description contains the
	// text, case-insensitively.
	Search(ctx context.Context, text string, limit, offset int) ([]*Item, error)

	// ListBookingDetails returns the item's bookings ordered by start
	// descending, restricted to items owned by ownerID. The order is load
	// bearing for the last/next booking projection.
	ListBookingDetails(ctx context.Context, itemID, ownerID int64) ([]BookingDetails, error)

	CreateComment(ctx context.Context, c *Comment) error
	ListComments(ctx context.Context, itemID int64) ([]Comment, error)
	ListCommentsByAuthor(ctx context.Context, authorID, itemID int64) ([]Comment, error)
	// HasFinishedBooking reports whether the user has an APPROVED booking
	// of the item that ended before now.
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, i *Item) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.items").
		Columns("name", "description", "is_available", "owner_id", "request_id").
		Values(i.Name, i.Description, i.Available, i.OwnerID, nullableID(i.RequestID)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create item query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&i.ID)
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Item, error) {
	const query = `
		SELECT id, name, description, is_available, owner_id, COALESCE(request_id, 0)
		FROM public.items
		WHERE id = $1
	`

	var i Item
	if err := r.pool.QueryRow(ctx, query, id).
		Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &i.RequestID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item failed: %w", err)
	}

	return &i, nil
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("id", "name", "description", "is_available", "owner_id", "COALESCE(request_id, 0)").
		From("public.items").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id")

	if limit > 0 {
		query = query.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list items failed: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

func (r *pgxRepository) Update(ctx context.Context, i *Item) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.items").
		Set("name", i.Name).
		Set("description", i.Description).
		Set("is_available", i.Available).
		Where(squirrel.Eq{"id": i.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update item query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update item failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *pgxRepository) Search(ctx context.Context, text string, limit, offset int) ([]*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	pattern := "%" + text + "%"
	query := psql.Select("id", "name", "description", "is_available", "owner_id", "COALESCE(request_id, 0)").
		From("public.items").
		Where(squirrel.Eq{"is_available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}).
		OrderBy("id")

	if limit > 0 {
		query = query.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search items query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search items failed: %w", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

func (r *pgxRepository) ListBookingDetails(ctx context.Context, itemID, ownerID int64) ([]BookingDetails, error) {
	const query = `
		SELECT b.id, b.start_date, b.end_date, b.booker_id
		FROM public.bookings b
		JOIN public.items i ON b.item_id = i.id
		WHERE b.item_id = $1 AND i.owner_id = $2
		ORDER BY b.start_date DESC
	`

	rows, err := r.pool.Query(ctx, query, itemID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list booking details failed: %w", err)
	}
	defer rows.Close()

	var details []BookingDetails
	for rows.Next() {
		var d BookingDetails
		if err := rows.Scan(&d.ID, &d.Start, &d.End, &d.BookerID); err != nil {
			return nil, fmt.Errorf("scan booking details failed: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

func (r *pgxRepository) CreateComment(ctx context.Context, c *Comment) error {
	const query = `
		INSERT INTO public.comments (text, item_id, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created
	`

	if err := r.pool.QueryRow(ctx, query, c.Text, c.ItemID, c.AuthorID).
		Scan(&c.ID, &c.Created); err != nil {
		return fmt.Errorf("create comment failed: %w", err)
	}

	return nil
}

func (r *pgxRepository) ListComments(ctx context.Context, itemID int64) ([]Comment, error) {
	const query = `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
		FROM public.comments c
		JOIN public.users u ON c.author_id = u.id
		WHERE c.item_id = $1
		ORDER BY c.created
	`

	rows, err := r.pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments failed: %w", err)
	}
	defer rows.Close()

	return collectComments(rows)
}

func (r *pgxRepository) ListCommentsByAuthor(ctx context.Context, authorID, itemID int64) ([]Comment, error) {
	const query = `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
		FROM public.comments c
		JOIN public.users u ON c.author_id = u.id
		WHERE c.author_id = $1 AND c.item_id = $2
		ORDER BY c.created
	`

	rows, err := r.pool.Query(ctx, query, authorID, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments by author failed: %w", err)
	}
	defer rows.Close()

	return collectComments(rows)
}

func (r *pgxRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM public.bookings
			WHERE booker_id = $1 AND item_id = $2 AND status = 'APPROVED' AND end_date < $3
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, bookerID, itemID, now).Scan(&exists); err != nil {
		return false, fmt.Errorf("check finished booking failed: %w", err)
	}

	return exists, nil
}

func collectItems(rows pgx.Rows) ([]*Item, error) {
	var items []*Item
	for rows.Next() {
		var i Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.Available, &i.OwnerID, &i.RequestID); err != nil {
			return nil, fmt.Errorf("scan item failed: %w", err)
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}

func collectComments(rows pgx.Rows) ([]Comment, error) {
	var comments []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.Created); err != nil {
			return nil, fmt.Errorf("scan comment failed: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
