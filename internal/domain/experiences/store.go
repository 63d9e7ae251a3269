package experiences

import (
	"context"
	"errors"
	"fmt"
	"time"

	"masterneo/internal/domain/talents"
	"masterneo/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

type Store interface {
	Create(ctx context.Context, e *Experience) error
	GetByID(ctx context.Context, id int64) (*Experience, error)
	List(ctx context.Context, f Filter) ([]Experience, int, error)
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id int64) error
	SetVerified(ctx context.Context, id int64, verified bool) (*Experience, error)
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) Store {
	return &Repository{db: q}
}

const experienceColumns = `id, talent_id, project_logo, company_name, role, description,
	start_date, end_date, currently_working, verified, twitter_link, discord_link,
	created_at, updated_at`

func scanExperience(row pgx.Row, e *Experience, extra ...any) error {
	var (
		start time.Time
		end   *time.Time
	)
	dest := []any{
		&e.ID, &e.TalentID, &e.ProjectLogo, &e.CompanyName, &e.Role, &e.Description,
		&start, &end, &e.CurrentlyWorking, &e.Verified, &e.TwitterLink, &e.DiscordLink,
		&e.CreatedAt, &e.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	e.StartDate = MonthOf(start)
	e.EndDate = nil
	if end != nil {
		m := MonthOf(*end)
		e.EndDate = &m
	}
	return nil
}

func endDateArg(e *Experience) *time.Time {
	if e.EndDate == nil {
		return nil
	}
	t := e.EndDate.Time
	return &t
}

// mapWriteErr turns integrity errors into domain errors.
func mapWriteErr(op string, err error) error {
	switch {
	case dbx.IsForeignKeyViolation(err):
		return talents.ErrTalentNotFound
	case dbx.ConstraintName(err) == "experiences_working_end_chk":
		return ErrEndDateWhileWorking
	case dbx.ConstraintName(err) == "experiences_date_order_chk":
		return ErrEndBeforeStart
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *Repository) Create(ctx context.Context, e *Experience) error {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	const query = `
		INSERT INTO experiences (
			talent_id, project_logo, company_name, role, description,
			start_date, end_date, currently_working, twitter_link, discord_link
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, verified, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		e.TalentID, e.ProjectLogo, e.CompanyName, e.Role, e.Description,
		e.StartDate.Time, endDateArg(e), e.CurrentlyWorking, e.TwitterLink, e.DiscordLink,
	).Scan(&e.ID, &e.Verified, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return mapWriteErr("insert experience", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	var e Experience
	err := scanExperience(r.db.QueryRow(ctx, "SELECT "+experienceColumns+" FROM experiences WHERE id = $1", id), &e)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("get experience %d: %w", id, err)
	}
	return &e, nil
}

// List returns experiences, most recent start first.
func (r *Repository) List(ctx context.Context, f Filter) ([]Experience, int, error) {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	query := "SELECT " + experienceColumns + ", COUNT(*) OVER() AS total_count FROM experiences"
	args := []any{}
	if f.TalentID != nil {
		args = append(args, *f.TalentID)
		query += " WHERE talent_id = $1"
	}
	args = append(args, f.Limit, f.Offset)
	query += fmt.Sprintf(" ORDER BY start_date DESC, id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	var (
		out   = make([]Experience, 0)
		total int
	)
	for rows.Next() {
		var e Experience
		if err := scanExperience(rows, &e, &total); err != nil {
			return nil, 0, fmt.Errorf("scan experience: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(out) == 0 && f.Offset > 0 {
		countQuery := "SELECT COUNT(*) FROM experiences"
		countArgs := []any{}
		if f.TalentID != nil {
			countQuery += " WHERE talent_id = $1"
			countArgs = append(countArgs, *f.TalentID)
		}
		if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count experiences: %w", err)
		}
	}
	return out, total, nil
}

// Update rewrites the client-editable columns. Verified is kept as is.
func (r *Repository) Update(ctx context.Context, e *Experience) error {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	const query = `
		UPDATE experiences SET
			talent_id = $1, project_logo = $2, company_name = $3, role = $4,
			description = $5, start_date = $6, end_date = $7, currently_working = $8,
			twitter_link = $9, discord_link = $10, updated_at = now()
		WHERE id = $11
		RETURNING verified, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		e.TalentID, e.ProjectLogo, e.CompanyName, e.Role,
		e.Description, e.StartDate.Time, endDateArg(e), e.CurrentlyWorking,
		e.TwitterLink, e.DiscordLink, e.ID,
	).Scan(&e.Verified, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrExperienceNotFound
		}
		return mapWriteErr(fmt.Sprintf("update experience %d", e.ID), err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete experience %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExperienceNotFound
	}
	return nil
}

func (r *Repository) SetVerified(ctx context.Context, id int64, verified bool) (*Experience, error) {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	var e Experience
	query := `UPDATE experiences SET verified = $1, updated_at = now() WHERE id = $2 RETURNING ` + experienceColumns
	if err := scanExperience(r.db.QueryRow(ctx, query, verified, id), &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("verify experience %d: %w", id, err)
	}
	return &e, nil
}
