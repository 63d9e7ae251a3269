package talents

import (
	"context"
	"errors"
	"fmt"

	"masterneo/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

type Store interface {
	Create(ctx context.Context, t *Talent) error
	GetByID(ctx context.Context, id int64) (*Talent, error)
	List(ctx context.Context, f Filter) ([]Talent, int, error)
	Update(ctx context.Context, t *Talent) error
	Delete(ctx context.Context, id int64) error

	SetSkills(ctx context.Context, id int64, skills []string) error
	SetAboutMe(ctx context.Context, id int64, aboutMe string) error
	SetSummary(ctx context.Context, id int64, summary string) error
	SetUsername(ctx context.Context, id int64, username string) error
	SetAvatar(ctx context.Context, id int64, avatarURL string) error

	// RecordVisit counts a profile view once per visitor key and reports
	// whether this call was the counted one.
	RecordVisit(ctx context.Context, id int64, visitorKey string) (bool, error)

	// LockForUpdate and RecomputeAggregates are meant to run inside a
	// transaction that also writes reviews.
	LockForUpdate(ctx context.Context, id int64) error
	RecomputeAggregates(ctx context.Context, id int64) (Aggregates, error)
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) Store {
	return &Repository{db: q}
}

const talentColumns = `t.id, t.username, t.global_name, t.avatar, t.timezone, t.language,
	t.about_me, t.summary, t.skills, t.profile_visits, t.reviews_count, t.average_rating,
	t.email, t.discord_profile, t.twitter_profile, t.phone_number, t.date_joined, t.updated_at`

func scanTalent(row pgx.Row, t *Talent, extra ...any) error {
	dest := []any{
		&t.ID, &t.Username, &t.GlobalName, &t.Avatar, &t.Timezone, &t.Language,
		&t.AboutMe, &t.Summary, &t.Skills, &t.ProfileVisits, &t.ReviewsCount, &t.AverageRating,
		&t.Email, &t.DiscordProfile, &t.TwitterProfile, &t.PhoneNumber, &t.DateJoined, &t.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *Repository) Create(ctx context.Context, t *Talent) error {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	if t.Skills == nil {
		t.Skills = []string{}
	}
	if t.Timezone == "" {
		t.Timezone = "UTC"
	}

	const query = `
		INSERT INTO talents (
			username, global_name, avatar, timezone, language, about_me, summary,
			skills, email, discord_profile, twitter_profile, phone_number
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, profile_visits, reviews_count, average_rating, date_joined, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		t.Username, t.GlobalName, t.Avatar, t.Timezone, t.Language, t.AboutMe, t.Summary,
		t.Skills, t.Email, t.DiscordProfile, t.TwitterProfile, t.PhoneNumber,
	).Scan(&t.ID, &t.ProfileVisits, &t.ReviewsCount, &t.AverageRating, &t.DateJoined, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert talent: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Talent, error) {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	var t Talent
	err := scanTalent(r.db.QueryRow(ctx, "SELECT "+talentColumns+" FROM talents t WHERE t.id = $1", id), &t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTalentNotFound
		}
		return nil, fmt.Errorf("get talent %d: %w", id, err)
	}
	return &t, nil
}

func (r *Repository) List(ctx context.Context, f Filter) ([]Talent, int, error) {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	query, args := buildListQuery(f)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list talents: %w", err)
	}
	defer rows.Close()

	var (
		out   = make([]Talent, 0)
		total int
	)
	for rows.Next() {
		var t Talent
		if err := scanTalent(rows, &t, &total); err != nil {
			return nil, 0, fmt.Errorf("scan talent: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate talents: %w", err)
	}

	if len(out) == 0 && f.Offset > 0 {
		countQuery, countArgs := buildCountQuery(f)
		if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("count talents: %w", err)
		}
	}
	return out, total, nil
}

// Update writes the client-editable profile fields. Derived counters are
// left untouched.
func (r *Repository) Update(ctx context.Context, t *Talent) error {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	if t.Skills == nil {
		t.Skills = []string{}
	}

	const query = `
		UPDATE talents SET
			username = $1, global_name = $2, avatar = $3, timezone = $4, language = $5,
			about_me = $6, summary = $7, skills = $8, email = $9, discord_profile = $10,
			twitter_profile = $11, phone_number = $12, updated_at = now()
		WHERE id = $13
		RETURNING profile_visits, reviews_count, average_rating, date_joined, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		t.Username, t.GlobalName, t.Avatar, t.Timezone, t.Language,
		t.AboutMe, t.Summary, t.Skills, t.Email, t.DiscordProfile,
		t.TwitterProfile, t.PhoneNumber, t.ID,
	).Scan(&t.ProfileVisits, &t.ReviewsCount, &t.AverageRating, &t.DateJoined, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTalentNotFound
		}
		return fmt.Errorf("update talent %d: %w", t.ID, err)
	}
	return nil
}

// Delete removes the talent; reviews, experiences and visits cascade.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM talents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete talent %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTalentNotFound
	}
	return nil
}

func (r *Repository) SetSkills(ctx context.Context, id int64, skills []string) error {
	if skills == nil {
		skills = []string{}
	}
	return r.setColumn(ctx, id, "skills", skills)
}

func (r *Repository) SetAboutMe(ctx context.Context, id int64, aboutMe string) error {
	return r.setColumn(ctx, id, "about_me", aboutMe)
}

func (r *Repository) SetSummary(ctx context.Context, id int64, summary string) error {
	return r.setColumn(ctx, id, "summary", summary)
}

func (r *Repository) SetUsername(ctx context.Context, id int64, username string) error {
	return r.setColumn(ctx, id, "username", username)
}

func (r *Repository) SetAvatar(ctx context.Context, id int64, avatarURL string) error {
	return r.setColumn(ctx, id, "avatar", avatarURL)
}

// setColumn is only ever called with the literal column names above.
func (r *Repository) setColumn(ctx context.Context, id int64, column string, value any) error {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	query := fmt.Sprintf(`UPDATE talents SET %s = $1, updated_at = now() WHERE id = $2`, column)
	tag, err := r.db.Exec(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("set talent %s: %w", column, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTalentNotFound
	}
	return nil
}

func (r *Repository) RecordVisit(ctx context.Context, id int64, visitorKey string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, dbx.QueryTimeoutDuration)
	defer cancel()

	const query = `
		WITH visit AS (
			INSERT INTO talent_profile_visits (talent_id, visitor_key)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
			RETURNING talent_id
		)
		UPDATE talents SET profile_visits = profile_visits + 1
		WHERE id IN (SELECT talent_id FROM visit)
	`
	tag, err := r.db.Exec(ctx, query, id, visitorKey)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return false, ErrTalentNotFound
		}
		return false, fmt.Errorf("record visit: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) LockForUpdate(ctx context.Context, id int64) error {
	var locked int64
	err := r.db.QueryRow(ctx, `SELECT id FROM talents WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTalentNotFound
		}
		return fmt.Errorf("lock talent %d: %w", id, err)
	}
	return nil
}

// RecomputeAggregates derives reviews_count and average_rating from the
// reviews table and stores them on the talent row.
func (r *Repository) RecomputeAggregates(ctx context.Context, id int64) (Aggregates, error) {
	const query = `
		UPDATE talents t SET
			reviews_count = s.total,
			average_rating = s.average
		FROM (
			SELECT COUNT(id)::int AS total, AVG(rating)::double precision AS average
			FROM reviews
			WHERE talent_id = $1
		) s
		WHERE t.id = $1
		RETURNING t.reviews_count, t.average_rating
	`
	agg := Aggregates{TalentID: id}
	if err := r.db.QueryRow(ctx, query, id).Scan(&agg.ReviewsCount, &agg.AverageRating); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Aggregates{}, ErrTalentNotFound
		}
		return Aggregates{}, fmt.Errorf("recompute talent %d aggregates: %w", id, err)
	}
	return agg, nil
}
