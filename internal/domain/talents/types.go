package talents

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const MaxSkills = 5

var (
	ErrTalentNotFound = errors.New("talent not found")
	ErrTooManySkills  = fmt.Errorf("a talent can list at most %d skills", MaxSkills)
)

// Talent is a community member's public profile. ReviewsCount and
// AverageRating are derived from reviews and never written by clients.
type Talent struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	GlobalName     string    `json:"global_name"`
	Avatar         *string   `json:"avatar"`
	Timezone       string    `json:"timezone"`
	Language       string    `json:"language"`
	AboutMe        string    `json:"about_me"`
	Summary        string    `json:"summary"`
	Skills         []string  `json:"skills"`
	ProfileVisits  int64     `json:"profile_visits"`
	ReviewsCount   int       `json:"reviews_count"`
	AverageRating  *float64  `json:"average_rating"`
	Email          *string   `json:"email"`
	DiscordProfile *string   `json:"discord_profile"`
	TwitterProfile *string   `json:"twitter_profile"`
	PhoneNumber    *string   `json:"phone_number"`
	DateJoined     time.Time `json:"date_joined"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Aggregates are the review-derived fields of a talent.
type Aggregates struct {
	TalentID      int64    `json:"talent_id"`
	ReviewsCount  int      `json:"reviews_count"`
	AverageRating *float64 `json:"average_rating"`
}

// NormalizeSkills trims names, drops empties and case-insensitive duplicates
// (first spelling wins) and enforces MaxSkills.
func NormalizeSkills(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	if len(out) > MaxSkills {
		return nil, ErrTooManySkills
	}
	return out, nil
}
