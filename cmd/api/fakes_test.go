package main

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"masterneo/internal/domain/experiences"
	"masterneo/internal/domain/jobs"
	"masterneo/internal/domain/reviews"
	"masterneo/internal/domain/storage"
	"masterneo/internal/domain/talents"

	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory stand-ins for the pgx repositories. They keep just enough
// behaviour for handler tests; SQL itself is covered by the integration tests.

type fakeJobs struct {
	mu         sync.Mutex
	items      map[int64]*jobs.Job
	nextID     int64
	lastFilter jobs.Filter
}

func (f *fakeJobs) Create(_ context.Context, j *jobs.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	j.ID = f.nextID
	j.TimeAdded = time.Now()
	j.UpdatedAt = j.TimeAdded
	cp := *j
	f.items[j.ID] = &cp
	return nil
}

func (f *fakeJobs) GetByID(_ context.Context, id int64) (*jobs.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.items[id]
	if !ok {
		return nil, jobs.ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJobs) List(_ context.Context, flt jobs.Filter) ([]jobs.Job, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = flt

	var matched []jobs.Job
	for _, j := range f.items {
		if len(flt.JobTypes) > 0 {
			hit := false
			for _, t := range flt.JobTypes {
				if strings.EqualFold(t, j.JobType) {
					hit = true
				}
			}
			if !hit {
				continue
			}
		}
		if flt.IsRemote != nil && j.IsRemote != *flt.IsRemote {
			continue
		}
		if flt.IsFullTime != nil && j.IsFullTime != *flt.IsFullTime {
			continue
		}
		matched = append(matched, *j)
	}
	sort.Slice(matched, func(a, b int) bool { return matched[a].ID > matched[b].ID })
	return window(matched, flt.Limit, flt.Offset), len(matched), nil
}

func (f *fakeJobs) Update(_ context.Context, j *jobs.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[j.ID]; !ok {
		return jobs.ErrJobNotFound
	}
	cp := *j
	f.items[j.ID] = &cp
	return nil
}

func (f *fakeJobs) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return jobs.ErrJobNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeJobs) SetLogo(_ context.Context, id int64, logoURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.items[id]
	if !ok {
		return jobs.ErrJobNotFound
	}
	j.JobLogo = &logoURL
	return nil
}

type fakeTalents struct {
	mu         sync.Mutex
	items      map[int64]*talents.Talent
	visits     map[int64]map[string]bool
	nextID     int64
	reviews    *fakeReviews
	lastFilter talents.Filter
}

func (f *fakeTalents) Create(_ context.Context, t *talents.Talent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.items {
		if strings.EqualFold(existing.Username, t.Username) {
			return uniqueViolation("idx_talents_username")
		}
	}
	f.nextID++
	t.ID = f.nextID
	if t.Timezone == "" {
		t.Timezone = "UTC"
	}
	if t.Skills == nil {
		t.Skills = []string{}
	}
	t.DateJoined = time.Now()
	cp := *t
	f.items[t.ID] = &cp
	return nil
}

func (f *fakeTalents) GetByID(_ context.Context, id int64) (*talents.Talent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.items[id]
	if !ok {
		return nil, talents.ErrTalentNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTalents) List(_ context.Context, flt talents.Filter) ([]talents.Talent, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = flt
	var all []talents.Talent
	for _, t := range f.items {
		all = append(all, *t)
	}
	sort.Slice(all, func(a, b int) bool { return all[a].ID > all[b].ID })
	return window(all, flt.Limit, flt.Offset), len(all), nil
}

func (f *fakeTalents) Update(_ context.Context, t *talents.Talent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.items[t.ID]
	if !ok {
		return talents.ErrTalentNotFound
	}
	cp := *t
	cp.ProfileVisits, cp.ReviewsCount, cp.AverageRating = existing.ProfileVisits, existing.ReviewsCount, existing.AverageRating
	f.items[t.ID] = &cp
	return nil
}

func (f *fakeTalents) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return talents.ErrTalentNotFound
	}
	delete(f.items, id)
	f.reviews.deleteByTalent(id)
	return nil
}

func (f *fakeTalents) set(id int64, fn func(t *talents.Talent)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.items[id]
	if !ok {
		return talents.ErrTalentNotFound
	}
	fn(t)
	return nil
}

func (f *fakeTalents) SetSkills(_ context.Context, id int64, skills []string) error {
	return f.set(id, func(t *talents.Talent) { t.Skills = skills })
}

func (f *fakeTalents) SetAboutMe(_ context.Context, id int64, v string) error {
	return f.set(id, func(t *talents.Talent) { t.AboutMe = v })
}

func (f *fakeTalents) SetSummary(_ context.Context, id int64, v string) error {
	return f.set(id, func(t *talents.Talent) { t.Summary = v })
}

func (f *fakeTalents) SetUsername(_ context.Context, id int64, v string) error {
	return f.set(id, func(t *talents.Talent) { t.Username = v })
}

func (f *fakeTalents) SetAvatar(_ context.Context, id int64, v string) error {
	return f.set(id, func(t *talents.Talent) { t.Avatar = &v })
}

func (f *fakeTalents) RecordVisit(_ context.Context, id int64, visitorKey string) (bool, error) {
	if utf8.RuneCountInString(visitorKey) > 128 {
		return false, &pgconn.PgError{Code: "22001", Message: "value too long for type character varying(128)"}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.items[id]
	if !ok {
		return false, talents.ErrTalentNotFound
	}
	if f.visits[id] == nil {
		f.visits[id] = map[string]bool{}
	}
	if f.visits[id][visitorKey] {
		return false, nil
	}
	f.visits[id][visitorKey] = true
	t.ProfileVisits++
	return true, nil
}

func (f *fakeTalents) LockForUpdate(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return talents.ErrTalentNotFound
	}
	return nil
}

func (f *fakeTalents) RecomputeAggregates(_ context.Context, id int64) (talents.Aggregates, error) {
	count, sum := f.reviews.stats(id)

	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.items[id]
	if !ok {
		return talents.Aggregates{}, talents.ErrTalentNotFound
	}
	t.ReviewsCount = count
	t.AverageRating = nil
	if count > 0 {
		avg := float64(sum) / float64(count)
		t.AverageRating = &avg
	}
	return talents.Aggregates{TalentID: id, ReviewsCount: t.ReviewsCount, AverageRating: t.AverageRating}, nil
}

type fakeReviews struct {
	mu     sync.Mutex
	items  map[int64]*reviews.Review
	nextID int64
}

func (f *fakeReviews) Create(_ context.Context, rv *reviews.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	rv.ID = f.nextID
	rv.CreatedAt = time.Now()
	cp := *rv
	f.items[rv.ID] = &cp
	return nil
}

func (f *fakeReviews) GetByID(_ context.Context, id int64) (*reviews.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rv, ok := f.items[id]
	if !ok {
		return nil, reviews.ErrReviewNotFound
	}
	cp := *rv
	return &cp, nil
}

func (f *fakeReviews) List(_ context.Context, flt reviews.Filter) ([]reviews.Review, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []reviews.Review
	for _, rv := range f.items {
		if flt.TalentID != nil && rv.TalentID != *flt.TalentID {
			continue
		}
		out = append(out, *rv)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID > out[b].ID })
	return window(out, flt.Limit, flt.Offset), len(out), nil
}

func (f *fakeReviews) Delete(_ context.Context, id int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rv, ok := f.items[id]
	if !ok {
		return 0, reviews.ErrReviewNotFound
	}
	delete(f.items, id)
	return rv.TalentID, nil
}

func (f *fakeReviews) stats(talentID int64) (count, sum int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rv := range f.items {
		if rv.TalentID == talentID {
			count++
			sum += rv.Rating
		}
	}
	return count, sum
}

func (f *fakeReviews) deleteByTalent(talentID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, rv := range f.items {
		if rv.TalentID == talentID {
			delete(f.items, id)
		}
	}
}

// fakeLedger follows the same lock, write, recompute order as the real one.
type fakeLedger struct {
	mu      sync.Mutex
	talents *fakeTalents
	reviews *fakeReviews
}

func (l *fakeLedger) CreateReview(ctx context.Context, rv *reviews.Review) (talents.Aggregates, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.talents.LockForUpdate(ctx, rv.TalentID); err != nil {
		return talents.Aggregates{}, err
	}
	if err := l.reviews.Create(ctx, rv); err != nil {
		return talents.Aggregates{}, err
	}
	return l.talents.RecomputeAggregates(ctx, rv.TalentID)
}

func (l *fakeLedger) DeleteReview(ctx context.Context, id int64) (talents.Aggregates, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	talentID, err := l.reviews.Delete(ctx, id)
	if err != nil {
		return talents.Aggregates{}, err
	}
	return l.talents.RecomputeAggregates(ctx, talentID)
}

type fakeExperiences struct {
	mu      sync.Mutex
	items   map[int64]*experiences.Experience
	nextID  int64
	talents *fakeTalents
}

func (f *fakeExperiences) Create(ctx context.Context, e *experiences.Experience) error {
	if err := f.talents.LockForUpdate(ctx, e.TalentID); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	e.ID = f.nextID
	cp := *e
	f.items[e.ID] = &cp
	return nil
}

func (f *fakeExperiences) GetByID(_ context.Context, id int64) (*experiences.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.items[id]
	if !ok {
		return nil, experiences.ErrExperienceNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeExperiences) List(_ context.Context, flt experiences.Filter) ([]experiences.Experience, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []experiences.Experience
	for _, e := range f.items {
		if flt.TalentID != nil && e.TalentID != *flt.TalentID {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID > out[b].ID })
	return window(out, flt.Limit, flt.Offset), len(out), nil
}

func (f *fakeExperiences) Update(ctx context.Context, e *experiences.Experience) error {
	if err := f.talents.LockForUpdate(ctx, e.TalentID); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.items[e.ID]
	if !ok {
		return experiences.ErrExperienceNotFound
	}
	e.Verified = existing.Verified
	cp := *e
	f.items[e.ID] = &cp
	return nil
}

func (f *fakeExperiences) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return experiences.ErrExperienceNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeExperiences) SetVerified(_ context.Context, id int64, verified bool) (*experiences.Experience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.items[id]
	if !ok {
		return nil, experiences.ErrExperienceNotFound
	}
	e.Verified = verified
	cp := *e
	return &cp, nil
}

type fakeUploader struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
}

func (u *fakeUploader) Upload(_ context.Context, file io.Reader, folder string) (string, error) {
	if _, err := io.Copy(io.Discard, file); err != nil {
		return "", err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	url := "https://res.cloudinary.com/test/image/upload/v1/" + folder + "/asset.png"
	u.uploaded = append(u.uploaded, url)
	return url, nil
}

func (u *fakeUploader) Delete(_ context.Context, assetURL string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.deleted = append(u.deleted, assetURL)
	return nil
}

func window[T any](items []T, limit, offset int) []T {
	out := make([]T, 0)
	if offset >= len(items) {
		return out
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return append(out, items[offset:end]...)
}

type fakeStore struct {
	jobs        *fakeJobs
	talents     *fakeTalents
	reviews     *fakeReviews
	experiences *fakeExperiences
}

func newFakeStore() (*storage.Container, *fakeStore) {
	rv := &fakeReviews{items: map[int64]*reviews.Review{}}
	tl := &fakeTalents{items: map[int64]*talents.Talent{}, visits: map[int64]map[string]bool{}, reviews: rv}
	fs := &fakeStore{
		jobs:        &fakeJobs{items: map[int64]*jobs.Job{}},
		talents:     tl,
		reviews:     rv,
		experiences: &fakeExperiences{items: map[int64]*experiences.Experience{}, talents: tl},
	}
	return &storage.Container{
		Jobs:        fs.jobs,
		Talents:     fs.talents,
		Reviews:     fs.reviews,
		Experiences: fs.experiences,
		Ledger:      &fakeLedger{talents: tl, reviews: rv},
	}, fs
}
