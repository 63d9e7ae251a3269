package reviews

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")

// Review is immutable once written; it can only be deleted.
type Review struct {
	ID                 int64     `json:"id"`
	TalentID           int64     `json:"talent_id"`
	ReviewerName       string    `json:"reviewer_name"`
	ReviewerOccupation string    `json:"reviewer_occupation"`
	Review             string    `json:"review"`
	Rating             int       `json:"rating"`
	CreatedAt          time.Time `json:"created_at"`
}

type Filter struct {
	TalentID *int64
	Limit    int
	Offset   int
}
