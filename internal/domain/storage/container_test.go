package storage_test

import (
	"context"
	"sync"
	"testing"

	"masterneo/internal/db/dbtest"
	"masterneo/internal/domain/experiences"
	"masterneo/internal/domain/jobs"
	"masterneo/internal/domain/reviews"
	"masterneo/internal/domain/storage"
	"masterneo/internal/domain/talents"
	"masterneo/internal/params"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContainer(t *testing.T) *storage.Container {
	t.Helper()
	return storage.NewContainer(dbtest.Open(t))
}

func seedTalent(t *testing.T, c *storage.Container, username string, skills ...string) *talents.Talent {
	t.Helper()

	tl := &talents.Talent{Username: username, Timezone: "UTC", Skills: skills}
	require.NoError(t, c.Talents.Create(context.Background(), tl))
	return tl
}

func seedReview(t *testing.T, c *storage.Container, talentID int64, rating int) talents.Aggregates {
	t.Helper()

	agg, err := c.Ledger.CreateReview(context.Background(), &reviews.Review{
		TalentID:     talentID,
		ReviewerName: "Jane",
		Review:       "Solid work.",
		Rating:       rating,
	})
	require.NoError(t, err)
	return agg
}

func TestLedgerMaintainsAggregates(t *testing.T) {
	c := newContainer(t)
	ctx := context.Background()
	tl := seedTalent(t, c, "gopher")

	assert.Nil(t, tl.AverageRating)

	seedReview(t, c, tl.ID, 5)
	agg := seedReview(t, c, tl.ID, 2)
	assert.Equal(t, 2, agg.ReviewsCount)
	require.NotNil(t, agg.AverageRating)
	assert.InDelta(t, 3.5, *agg.AverageRating, 1e-9)

	stored, err := c.Talents.GetByID(ctx, tl.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.ReviewsCount)
	assert.InDelta(t, 3.5, *stored.AverageRating, 1e-9)

	list, _, err := c.Reviews.List(ctx, reviews.Filter{TalentID: &tl.ID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 2)

	for _, rv := range list {
		agg, err = c.Ledger.DeleteReview(ctx, rv.ID)
		require.NoError(t, err)
	}
	assert.Zero(t, agg.ReviewsCount)
	assert.Nil(t, agg.AverageRating)

	_, err = c.Ledger.DeleteReview(ctx, list[0].ID)
	assert.ErrorIs(t, err, reviews.ErrReviewNotFound)
}

func TestLedgerRejectsMissingTalent(t *testing.T) {
	c := newContainer(t)

	_, err := c.Ledger.CreateReview(context.Background(), &reviews.Review{
		TalentID: 404, ReviewerName: "Jane", Review: "?", Rating: 3,
	})
	assert.ErrorIs(t, err, talents.ErrTalentNotFound)
}

func TestLedgerConcurrentWrites(t *testing.T) {
	c := newContainer(t)
	tl := seedTalent(t, c, "gopher")

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(rating int) {
			defer wg.Done()
			_, err := c.Ledger.CreateReview(context.Background(), &reviews.Review{
				TalentID: tl.ID, ReviewerName: "Jane", Review: "ok", Rating: rating,
			})
			assert.NoError(t, err)
		}(i%5 + 1)
	}
	wg.Wait()

	stored, err := c.Talents.GetByID(context.Background(), tl.ID)
	require.NoError(t, err)
	assert.Equal(t, n, stored.ReviewsCount)
	assert.InDelta(t, 3.0, *stored.AverageRating, 1e-9)
}

func TestDeleteTalentCascades(t *testing.T) {
	c := newContainer(t)
	ctx := context.Background()
	tl := seedTalent(t, c, "gopher")
	seedReview(t, c, tl.ID, 4)

	start, err := experiences.ParseMonth("2022-01")
	require.NoError(t, err)
	exp := &experiences.Experience{TalentID: tl.ID, CompanyName: "Acme", Role: "Dev", StartDate: start, CurrentlyWorking: true}
	require.NoError(t, c.Experiences.Create(ctx, exp))

	require.NoError(t, c.Talents.Delete(ctx, tl.ID))

	_, total, err := c.Reviews.List(ctx, reviews.Filter{TalentID: &tl.ID, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = c.Experiences.GetByID(ctx, exp.ID)
	assert.ErrorIs(t, err, experiences.ErrExperienceNotFound)
}

func TestExperienceConstraints(t *testing.T) {
	c := newContainer(t)
	ctx := context.Background()

	start, _ := experiences.ParseMonth("2022-06")
	before, _ := experiences.ParseMonth("2021-01")

	err := c.Experiences.Create(ctx, &experiences.Experience{TalentID: 999, CompanyName: "Acme", Role: "Dev", StartDate: start})
	assert.ErrorIs(t, err, talents.ErrTalentNotFound)

	tl := seedTalent(t, c, "gopher")
	err = c.Experiences.Create(ctx, &experiences.Experience{
		TalentID: tl.ID, CompanyName: "Acme", Role: "Dev", StartDate: start, EndDate: &before,
	})
	assert.ErrorIs(t, err, experiences.ErrEndBeforeStart)

	err = c.Experiences.Create(ctx, &experiences.Experience{
		TalentID: tl.ID, CompanyName: "Acme", Role: "Dev", StartDate: start, EndDate: &start, CurrentlyWorking: true,
	})
	assert.ErrorIs(t, err, experiences.ErrEndDateWhileWorking)
}

func TestRecordVisitCountsUniqueVisitors(t *testing.T) {
	c := newContainer(t)
	ctx := context.Background()
	tl := seedTalent(t, c, "gopher")

	for _, visitor := range []string{"ip:1.1.1.1", "ip:1.1.1.1", "id:abc", "ip:1.1.1.1"} {
		_, err := c.Talents.RecordVisit(ctx, tl.ID, visitor)
		require.NoError(t, err)
	}

	stored, err := c.Talents.GetByID(ctx, tl.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stored.ProfileVisits)

	_, err = c.Talents.RecordVisit(ctx, 12345, "ip:1.1.1.1")
	assert.ErrorIs(t, err, talents.ErrTalentNotFound)
}

func TestTalentsSortByRatingPutsUnratedLast(t *testing.T) {
	c := newContainer(t)
	ctx := context.Background()

	low := seedTalent(t, c, "low", "Go")
	high := seedTalent(t, c, "high", "Rust", "Go")
	unrated := seedTalent(t, c, "unrated", "Python")
	seedReview(t, c, low.ID, 2)
	seedReview(t, c, high.ID, 5)

	usernames := func(sort params.Sort, skills ...string) []string {
		items, _, err := c.Talents.List(ctx, talents.Filter{Sort: sort, Skills: skills, Limit: 10})
		require.NoError(t, err)
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Username)
		}
		return out
	}

	assert.Equal(t, []string{high.Username, low.Username, unrated.Username}, usernames(params.Sort{Key: "rating", Desc: true}))
	assert.Equal(t, []string{low.Username, high.Username, unrated.Username}, usernames(params.Sort{Key: "rating"}))
	assert.Equal(t, []string{high.Username, low.Username}, usernames(params.Sort{Key: "rating", Desc: true}, "go"))
	assert.Equal(t, []string{high.Username}, usernames(params.Sort{Key: "rating", Desc: true}, "rust"))
}

func TestJobsFilterIntersectsRemoteAndType(t *testing.T) {
	c := newContainer(t)
	ctx := context.Background()

	for _, j := range []jobs.Job{
		{JobTitle: "Remote design", JobType: "Design", IsRemote: true},
		{JobTitle: "Onsite design", JobType: "design", IsRemote: false},
		{JobTitle: "Remote eng", JobType: "Engineering", IsRemote: true},
	} {
		j.CompanyName, j.JobDescription, j.JobLink, j.Location = "Acme", "desc", "https://acme.example", "Berlin"
		require.NoError(t, c.Jobs.Create(ctx, &j))
	}

	remote := true
	items, total, err := c.Jobs.List(ctx, jobs.Filter{
		JobTypes: []string{"DESIGN"},
		IsRemote: &remote,
		Sort:     params.Sort{Key: "time_added", Desc: true},
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Remote design", items[0].JobTitle)

	items, total, err = c.Jobs.List(ctx, jobs.Filter{
		JobTypes: []string{"design", "engineering"},
		Sort:     params.Sort{Key: "time_added", Desc: true},
		Limit:    1,
		Offset:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, items, 1)
}
