package reviews

import (
	"context"
	"errors"
	"fmt"

	"masterneo/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

type Store interface {
	Create(ctx context.Context, rv *Review) error
	GetByID(ctx context.Context, id int64) (*Review, error)
	List(ctx context.Context, f Filter) ([]Review, int, error)
	// Delete removes the review and returns the talent it belonged to.
	Delete(ctx context.Context, id int64) (int64, error)
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) Store {
	return &Repository{db: q}
}

const reviewColumns = `id, talent_id, reviewer_name, reviewer_occupation, review, rating, created_at`

func scanReview(row pgx.Row, rv *Review, extra ...any) error {
	dest := []any{&rv.ID, &rv.TalentID, &rv.ReviewerName, &rv.ReviewerOccupation, &rv.Review, &rv.Rating, &rv.CreatedAt}
	return row.Scan(append(dest, extra...)...)
}

func (r *Repository) Create(ctx context.Context, rv *Review) error {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	const query = `
		INSERT INTO reviews (talent_id, reviewer_name, reviewer_occupation, review, rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		rv.TalentID, rv.ReviewerName, rv.ReviewerOccupation, rv.Review, rv.Rating,
	).Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Review, error) {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	var rv Review
	err := scanReview(r.db.QueryRow(ctx, "SELECT "+reviewColumns+" FROM reviews WHERE id = $1", id), &rv)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}
	return &rv, nil
}

// List returns reviews newest first, optionally scoped to one talent.
func (r *Repository) List(ctx context.Context, f Filter) ([]Review, int, error) {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	query := "SELECT " + reviewColumns + ", COUNT(*) OVER() AS total_count FROM reviews"
	args := []any{}
	if f.TalentID != nil {
		args = append(args, *f.TalentID)
		query += " WHERE talent_id = $1"
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var (
		out   = make([]Review, 0)
		total int
	)
	for rows.Next() {
		var rv Review
		if err := scanReview(rows, &rv, &total); err != nil {
			return nil, 0, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(out) == 0 && f.Offset > 0 {
		countQuery := "SELECT COUNT(*) FROM reviews"
		countArgs := []any{}
		if f.TalentID != nil {
			countQuery += " WHERE talent_id = $1"
			countArgs = append(countArgs, *f.TalentID)
		}
		if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count reviews: %w", err)
		}
	}
	return out, total, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	var talentID int64
	err := r.db.QueryRow(ctx, `DELETE FROM reviews WHERE id = $1 RETURNING talent_id`, id).Scan(&talentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrReviewNotFound
		}
		return 0, fmt.Errorf("delete review %d: %w", id, err)
	}
	return talentID, nil
}
