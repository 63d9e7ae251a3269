package main

import (
	"net/http"
	"testing"

	"masterneo/internal/domain/talents"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTalent(t *testing.T, s *testServer, username string, skills ...string) talents.Talent {
	t.Helper()

	payload := map[string]any{
		"username":    username,
		"global_name": "Test " + username,
		"timezone":    "Europe/Berlin",
		"language":    "English",
		"skills":      skills,
	}
	rec := s.do(t, http.MethodPost, "/v1/talents", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var tl talents.Talent
	decodeData(t, rec, &tl)
	return tl
}

func TestCreateTalent(t *testing.T) {
	s := newTestServer(t)

	tl := createTalent(t, s, "gopher", "Go", " go ", "Postgres")
	assert.NotZero(t, tl.ID)
	assert.Equal(t, []string{"Go", "Postgres"}, tl.Skills)
	assert.Equal(t, "Europe/Berlin", tl.Timezone)
	assert.Zero(t, tl.ProfileVisits)
	assert.Zero(t, tl.ReviewsCount)
	assert.Nil(t, tl.AverageRating)
}

func TestCreateTalentDefaultsTimezone(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/v1/talents", map[string]any{"username": "nozone"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var tl talents.Talent
	decodeData(t, rec, &tl)
	assert.Equal(t, "UTC", tl.Timezone)
	assert.NotNil(t, tl.Skills)
}

func TestCreateTalentValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		payload map[string]any
		message string
	}{
		{"missing username", map[string]any{"timezone": "UTC"}, "username is required"},
		{"unknown timezone", map[string]any{"username": "a", "timezone": "Mars/Olympus"}, "timezone"},
		{"too many skills", map[string]any{"username": "a", "skills": []string{"a", "b", "c", "d", "e", "f"}}, "skills"},
		{"bad email", map[string]any{"username": "a", "email": "nope"}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/v1/talents", tt.payload)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeError(t, rec).Message, tt.message)
		})
	}
	assert.Empty(t, s.fakes.talents.items)
}

func TestSkillLimitAppliesAfterNormalization(t *testing.T) {
	s := newTestServer(t)
	padded := []string{"Go", "go", "GO", "Go ", "Rust", "", "SQL"}

	rec := s.do(t, http.MethodPost, "/v1/talents", map[string]any{"username": "gopher", "skills": padded})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var tl talents.Talent
	decodeData(t, rec, &tl)
	assert.Equal(t, []string{"Go", "Rust", "SQL"}, tl.Skills)

	rec = s.do(t, http.MethodPut, "/v1/talents/1/skills", map[string]any{"skills": padded})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPatch, "/v1/talents/1", map[string]any{"skills": padded})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeData(t, rec, &tl)
	assert.Equal(t, []string{"Go", "Rust", "SQL"}, tl.Skills)

	sixDistinct := []string{"a", "b", "c", "d", "e", "f"}
	rec = s.do(t, http.MethodPatch, "/v1/talents/1", map[string]any{"skills": sixDistinct})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "at most 5 skills")
}

func TestCreateTalentDuplicateUsername(t *testing.T) {
	s := newTestServer(t)
	createTalent(t, s, "gopher")

	rec := s.do(t, http.MethodPost, "/v1/talents", map[string]any{"username": "GOPHER"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetTalentRecordsUniqueVisits(t *testing.T) {
	s := newTestServer(t)
	tl := createTalent(t, s, "gopher")

	visit := func(visitor string) talents.Talent {
		rec := s.do(t, http.MethodGet, "/v1/talents/1", nil, header{visitorHeader: visitor})
		require.Equal(t, http.StatusOK, rec.Code)
		var got talents.Talent
		decodeData(t, rec, &got)
		return got
	}

	assert.EqualValues(t, 1, visit("alice").ProfileVisits)
	assert.EqualValues(t, 1, visit("alice").ProfileVisits)
	assert.EqualValues(t, 2, visit("bob").ProfileVisits)
	assert.Equal(t, tl.ID, visit("bob").ID)
}

func TestGetTalentNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/v1/talents/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTalentsSortAliases(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		query string
		key   string
		desc  bool
	}{
		{"", "date_joined", true},
		{"?sort_by=most_experienced", "rating", true},
		{"?sort_by=least_experienced", "rating", false},
		{"?sort_by=rating&order=asc", "rating", false},
		{"?sort_by=-profile_visits", "profile_visits", true},
		{"?sort_by=salary", "date_joined", true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, "/v1/talents"+tt.query, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			flt := s.fakes.talents.lastFilter
			assert.Equal(t, tt.key, flt.Sort.Key)
			assert.Equal(t, tt.desc, flt.Sort.Desc)
		})
	}
}

func TestListTalentsPassesFilters(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/v1/talents?skills=go,rust&timezone=UTC&page_size=5000", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp talentListResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, 1000, resp.Pagination.PageSize)

	flt := s.fakes.talents.lastFilter
	assert.Equal(t, []string{"go", "rust"}, flt.Skills)
	assert.Equal(t, "UTC", flt.Timezone)
	assert.Equal(t, 1000, flt.Limit)
}

func TestUpdateTalent(t *testing.T) {
	s := newTestServer(t)
	createTalent(t, s, "gopher", "Go")

	rec := s.do(t, http.MethodPatch, "/v1/talents/1", map[string]any{
		"summary": "Backend developer",
		"skills":  []string{"Go", "SQL", "sql"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tl talents.Talent
	decodeData(t, rec, &tl)
	assert.Equal(t, "Backend developer", tl.Summary)
	assert.Equal(t, []string{"Go", "SQL"}, tl.Skills)
	assert.Equal(t, "gopher", tl.Username)

	rec = s.do(t, http.MethodPatch, "/v1/talents/1", map[string]any{"profile_visits": 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTalentNullKeepsValue(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/v1/talents", map[string]any{"username": "gopher", "email": "gopher@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodPatch, "/v1/talents/1", `{"email":null,"summary":"Gopher"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tl talents.Talent
	decodeData(t, rec, &tl)
	assert.Equal(t, "Gopher", tl.Summary)
	require.NotNil(t, tl.Email)
	assert.Equal(t, "gopher@example.com", *tl.Email)
}

func TestTalentSkillsEndpoints(t *testing.T) {
	s := newTestServer(t)
	createTalent(t, s, "gopher", "Go")

	rec := s.do(t, http.MethodPut, "/v1/talents/1/skills", map[string]any{"skills": []string{"Go", "Kubernetes", "GO"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/v1/talents/1/skills", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got skillsPayload
	decodeData(t, rec, &got)
	assert.Equal(t, []string{"Go", "Kubernetes"}, got.Skills)

	rec = s.do(t, http.MethodPut, "/v1/talents/1/skills", map[string]any{"skills": []string{"a", "b", "c", "d", "e", "f"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPut, "/v1/talents/7/skills", map[string]any{"skills": []string{"Go"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTalentTextFieldEndpoints(t *testing.T) {
	s := newTestServer(t)
	createTalent(t, s, "gopher")
	createTalent(t, s, "taken")

	rec := s.do(t, http.MethodPut, "/v1/talents/1/about-me", map[string]any{"about_me": "I like Go."})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPut, "/v1/talents/1/summary", map[string]any{"summary": "Gopher"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPut, "/v1/talents/1/username", map[string]any{"username": "gopher2"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPut, "/v1/talents/1/username", map[string]any{"username": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	tl := s.fakes.talents.items[1]
	assert.Equal(t, "I like Go.", tl.AboutMe)
	assert.Equal(t, "Gopher", tl.Summary)
	assert.Equal(t, "gopher2", tl.Username)
}

func TestTalentAverageRatingWithoutReviews(t *testing.T) {
	s := newTestServer(t)
	createTalent(t, s, "gopher")

	rec := s.do(t, http.MethodGet, "/v1/talents/1/average-rating", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"talent_id":1,"reviews_count":0,"average_rating":null}}`, rec.Body.String())
}

func TestDeleteTalentRemovesReviews(t *testing.T) {
	s := newTestServer(t)
	createTalent(t, s, "gopher")
	createReview(t, s, 1, 5)

	rec := s.do(t, http.MethodDelete, "/v1/talents/1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/reviews/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/talents/1/reviews", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
