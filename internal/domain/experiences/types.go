package experiences

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrExperienceNotFound  = errors.New("experience not found")
	ErrEndDateWhileWorking = errors.New("end_date must be empty while currently_working is true")
	ErrEndBeforeStart      = errors.New("end_date must not be before start_date")
)

const monthLayout = "2006-01"

// MonthDate is a calendar month, stored as its first day and encoded as
// "YYYY-MM" in JSON.
type MonthDate struct {
	time.Time
}

// ParseMonth accepts "YYYY-MM" or a full "YYYY-MM-DD" date; the day is dropped.
func ParseMonth(s string) (MonthDate, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		t, err = time.Parse(time.DateOnly, s)
		if err != nil {
			return MonthDate{}, fmt.Errorf("invalid month %q, expected YYYY-MM", s)
		}
	}
	return MonthOf(t), nil
}

// MonthOf truncates t to the first day of its month in UTC.
func MonthOf(t time.Time) MonthDate {
	return MonthDate{time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)}
}

func (m MonthDate) String() string {
	return m.Format(monthLayout)
}

func (m MonthDate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.String())), nil
}

func (m *MonthDate) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("month must be a string: %w", err)
	}
	parsed, err := ParseMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Experience is one entry in a talent's work history. Verified is only
// changed through the admin verify operation.
type Experience struct {
	ID               int64      `json:"id"`
	TalentID         int64      `json:"talent_id"`
	ProjectLogo      *string    `json:"project_logo"`
	CompanyName      string     `json:"company_name"`
	Role             string     `json:"role"`
	Description      string     `json:"description"`
	StartDate        MonthDate  `json:"start_date"`
	EndDate          *MonthDate `json:"end_date"`
	CurrentlyWorking bool       `json:"currently_working"`
	Verified         bool       `json:"verified"`
	TwitterLink      *string    `json:"twitter_link"`
	DiscordLink      *string    `json:"discord_link"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (e *Experience) Validate() error {
	if e.CurrentlyWorking && e.EndDate != nil {
		return ErrEndDateWhileWorking
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate.Time) {
		return ErrEndBeforeStart
	}
	return nil
}

type Filter struct {
	TalentID *int64
	Limit    int
	Offset   int
}
