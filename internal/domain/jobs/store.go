package jobs

import (
	"context"
	"errors"
	"fmt"

	"masterneo/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

type Store interface {
	Create(ctx context.Context, j *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	List(ctx context.Context, f Filter) ([]Job, int, error)
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, id int64) error
	SetLogo(ctx context.Context, id int64, logoURL string) error
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) Store {
	return &Repository{db: q}
}

const jobColumns = `j.id, j.job_logo, j.job_title, j.company_name, j.job_description,
	j.job_link, j.location, j.job_type, j.is_remote, j.is_full_time,
	j.salary_min, j.salary_max, j.time_added, j.updated_at`

func scanJob(row pgx.Row, j *Job, extra ...any) error {
	dest := []any{
		&j.ID, &j.JobLogo, &j.JobTitle, &j.CompanyName, &j.JobDescription,
		&j.JobLink, &j.Location, &j.JobType, &j.IsRemote, &j.IsFullTime,
		&j.SalaryMin, &j.SalaryMax, &j.TimeAdded, &j.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *Repository) Create(ctx context.Context, j *Job) error {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	const query = `
		INSERT INTO jobs (
			job_logo, job_title, company_name, job_description, job_link,
			location, job_type, is_remote, is_full_time, salary_min, salary_max
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, time_added, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		j.JobLogo, j.JobTitle, j.CompanyName, j.JobDescription, j.JobLink,
		j.Location, j.JobType, j.IsRemote, j.IsFullTime, j.SalaryMin, j.SalaryMax,
	).Scan(&j.ID, &j.TimeAdded, &j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Job, error) {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	var j Job
	err := scanJob(r.db.QueryRow(ctx, "SELECT "+jobColumns+" FROM jobs j WHERE j.id = $1", id), &j)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("get job %d: %w", id, err)
	}
	return &j, nil
}

// List returns a page of jobs and the total number of matches.
// It uses COUNT(*) OVER() when rows exist; past the last page it falls back
// to a plain COUNT(*) so the total stays correct.
func (r *Repository) List(ctx context.Context, f Filter) ([]Job, int, error) {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	query, args := buildListQuery(f)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var (
		out   = make([]Job, 0)
		total int
	)
	for rows.Next() {
		var j Job
		if err := scanJob(rows, &j, &total); err != nil {
			return nil, 0, fmt.Errorf("scan job: %w", err)
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate jobs: %w", err)
	}

	if len(out) == 0 && f.Offset > 0 {
		countQuery, countArgs := buildCountQuery(f)
		if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count jobs: %w", err)
		}
	}
	return out, total, nil
}

// Update overwrites every editable column of the job.
func (r *Repository) Update(ctx context.Context, j *Job) error {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	const query = `
		UPDATE jobs SET
			job_logo = $1, job_title = $2, company_name = $3, job_description = $4,
			job_link = $5, location = $6, job_type = $7, is_remote = $8,
			is_full_time = $9, salary_min = $10, salary_max = $11, updated_at = now()
		WHERE id = $12
		RETURNING time_added, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		j.JobLogo, j.JobTitle, j.CompanyName, j.JobDescription,
		j.JobLink, j.Location, j.JobType, j.IsRemote,
		j.IsFullTime, j.SalaryMin, j.SalaryMax, j.ID,
	).Scan(&j.TimeAdded, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrJobNotFound
		}
		return fmt.Errorf("update job %d: %w", j.ID, err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *Repository) SetLogo(ctx context.Context, id int64, logoURL string) error {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, `UPDATE jobs SET job_logo = $1, updated_at = now() WHERE id = $2`, logoURL, id)
	if err != nil {
		return fmt.Errorf("set job logo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrJobNotFound
	}
	return nil
}
