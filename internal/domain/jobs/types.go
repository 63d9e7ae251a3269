package jobs

import (
	"errors"
	"time"
)

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrInvalidSalaryRange = errors.New("salary_min must not exceed salary_max")
)

// Job is a listing posted by a founder.
type Job struct {
	ID             int64     `json:"id"`
	JobLogo        *string   `json:"job_logo"`
	JobTitle       string    `json:"job_title"`
	CompanyName    string    `json:"company_name"`
	JobDescription string    `json:"job_description"`
	JobLink        string    `json:"job_link"`
	Location       string    `json:"location"`
	JobType        string    `json:"job_type"`
	IsRemote       bool      `json:"is_remote"`
	IsFullTime     bool      `json:"is_full_time"`
	SalaryMin      *int64    `json:"salary_min"`
	SalaryMax      *int64    `json:"salary_max"`
	TimeAdded      time.Time `json:"time_added"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate checks rules that span more than one field.
func (j *Job) Validate() error {
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		return ErrInvalidSalaryRange
	}
	return nil
}
