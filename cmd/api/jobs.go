package main

import (
	"errors"
	"fmt"
	"net/http"

	"masterneo/internal/domain/jobs"
	"masterneo/internal/params"
)

type createJobPayload struct {
	JobLogo        *string `json:"job_logo" validate:"omitempty,url,max=500"`
	JobTitle       string  `json:"job_title" validate:"required,max=200"`
	CompanyName    string  `json:"company_name" validate:"required,max=200"`
	JobDescription string  `json:"job_description" validate:"required"`
	JobLink        string  `json:"job_link" validate:"required,url,max=200"`
	Location       string  `json:"location" validate:"required,max=200"`
	JobType        string  `json:"job_type" validate:"max=100"`
	IsRemote       bool    `json:"is_remote"`
	IsFullTime     bool    `json:"is_full_time"`
	SalaryMin      *int64  `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *int64  `json:"salary_max" validate:"omitempty,min=0"`
}

// updateJobPayload only touches the fields that are present.
type updateJobPayload struct {
	JobLogo        *string `json:"job_logo" validate:"omitempty,url,max=500"`
	JobTitle       *string `json:"job_title" validate:"omitempty,min=1,max=200"`
	CompanyName    *string `json:"company_name" validate:"omitempty,min=1,max=200"`
	JobDescription *string `json:"job_description" validate:"omitempty,min=1"`
	JobLink        *string `json:"job_link" validate:"omitempty,url,max=200"`
	Location       *string `json:"location" validate:"omitempty,min=1,max=200"`
	JobType        *string `json:"job_type" validate:"omitempty,max=100"`
	IsRemote       *bool   `json:"is_remote"`
	IsFullTime     *bool   `json:"is_full_time"`
	SalaryMin      *int64  `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax      *int64  `json:"salary_max" validate:"omitempty,min=0"`
}

func (p updateJobPayload) apply(j *jobs.Job) {
	if p.JobLogo != nil {
		j.JobLogo = p.JobLogo
	}
	if p.JobTitle != nil {
		j.JobTitle = *p.JobTitle
	}
	if p.CompanyName != nil {
		j.CompanyName = *p.CompanyName
	}
	if p.JobDescription != nil {
		j.JobDescription = *p.JobDescription
	}
	if p.JobLink != nil {
		j.JobLink = *p.JobLink
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.JobType != nil {
		j.JobType = *p.JobType
	}
	if p.IsRemote != nil {
		j.IsRemote = *p.IsRemote
	}
	if p.IsFullTime != nil {
		j.IsFullTime = *p.IsFullTime
	}
	if p.SalaryMin != nil {
		j.SalaryMin = p.SalaryMin
	}
	if p.SalaryMax != nil {
		j.SalaryMax = p.SalaryMax
	}
}

type jobListResponse struct {
	Jobs       []jobs.Job        `json:"jobs"`
	Pagination params.Pagination `json:"pagination"`
}

// listJobsHandler godoc
//
//	@Summary		List jobs
//	@Description	Paginated job listings. Repeat job_type (or pass a comma separated list) to match any of several types.
//	@Tags			jobs
//	@Produce		json
//	@Param			job_type		query		[]string	false	"Job type, case-insensitive exact match"	collectionFormat(multi)
//	@Param			is_remote		query		bool		false	"Only remote (true) or on-site (false) jobs"
//	@Param			is_full_time	query		bool		false	"Only full-time (true) or part-time (false) jobs"
//	@Param			location		query		string		false	"Location substring"
//	@Param			search			query		string		false	"Search in title, company and description"
//	@Param			sort_by			query		string		false	"time_added, salary, job_title or company_name; prefix with - for descending"
//	@Param			order			query		string		false	"asc or desc"	default(desc)
//	@Param			page			query		int			false	"Page number"	default(1)
//	@Param			page_size		query		int			false	"Items per page (max 1000)"	default(300)
//	@Success		200				{object}	jobListResponse
//	@Failure		500				{object}	error
//	@Router			/jobs [get]
func (app *application) listJobsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pagination := params.ParsePagination(q)

	filter := jobs.ParseFilter(q)
	filter.Limit = pagination.PageSize
	filter.Offset = pagination.Offset

	items, total, err := app.store.Jobs.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, fmt.Errorf("failed to fetch jobs: %w", err))
		return
	}

	pagination.ComputeMeta(total)

	app.jsonResponse(w, http.StatusOK, jobListResponse{Jobs: items, Pagination: pagination})
}

// createJobHandler godoc
//
//	@Summary		Create a job
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createJobPayload	true	"Job"
//	@Success		201		{object}	jobs.Job
//	@Failure		400		{object}	error
//	@Failure		500		{object}	error
//	@Router			/jobs [post]
func (app *application) createJobHandler(w http.ResponseWriter, r *http.Request) {
	var payload createJobPayload
	if err := decodeAndValidate(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	job := &jobs.Job{
		JobLogo:        payload.JobLogo,
		JobTitle:       payload.JobTitle,
		CompanyName:    payload.CompanyName,
		JobDescription: payload.JobDescription,
		JobLink:        payload.JobLink,
		Location:       payload.Location,
		JobType:        payload.JobType,
		IsRemote:       payload.IsRemote,
		IsFullTime:     payload.IsFullTime,
		SalaryMin:      payload.SalaryMin,
		SalaryMax:      payload.SalaryMax,
	}
	if err := job.Validate(); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Jobs.Create(r.Context(), job); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v1/jobs/%d", job.ID))
	app.jsonResponse(w, http.StatusCreated, job)
}

// getJobHandler godoc
//
//	@Summary	Get a job
//	@Tags		jobs
//	@Produce	json
//	@Param		jobID	path		int	true	"Job ID"
//	@Success	200		{object}	jobs.Job
//	@Failure	404		{object}	error
//	@Router		/jobs/{jobID} [get]
func (app *application) getJobHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "jobID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	job, err := app.store.Jobs.GetByID(r.Context(), id)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, job)
}

// updateJobHandler godoc
//
//	@Summary		Update a job
//	@Description	Partial update; omitted fields keep their value. A null value is treated as omitted, so job_logo, salary_min and salary_max cannot be cleared here.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			jobID	path		int					true	"Job ID"
//	@Param			payload	body		updateJobPayload	true	"Fields to change"
//	@Success		200		{object}	jobs.Job
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		404		{object}	error
//	@Security		BasicAuth
//	@Router			/jobs/{jobID} [patch]
func (app *application) updateJobHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "jobID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload updateJobPayload
	if err := decodeAndValidate(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	job, err := app.store.Jobs.GetByID(r.Context(), id)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	payload.apply(job)
	if err := job.Validate(); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Jobs.Update(r.Context(), job); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, job)
}

// deleteJobHandler godoc
//
//	@Summary	Delete a job
//	@Tags		jobs
//	@Param		jobID	path	int	true	"Job ID"
//	@Success	204
//	@Failure	401	{object}	error
//	@Failure	404	{object}	error
//	@Security	BasicAuth
//	@Router		/jobs/{jobID} [delete]
func (app *application) deleteJobHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "jobID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Jobs.Delete(r.Context(), id); err != nil {
		if errors.Is(err, jobs.ErrJobNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
