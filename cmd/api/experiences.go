package main

import (
	"fmt"
	"net/http"

	"masterneo/internal/domain/experiences"
	"masterneo/internal/params"
)

// experiencePayload is used for both create and full update.
type experiencePayload struct {
	TalentID         int64   `json:"talent_id" validate:"required,min=1"`
	ProjectLogo      *string `json:"project_logo" validate:"omitempty,url,max=500"`
	CompanyName      string  `json:"company_name" validate:"required,max=200"`
	Role             string  `json:"role" validate:"required,max=200"`
	Description      string  `json:"description" validate:"max=5000"`
	StartDate        string  `json:"start_date" validate:"required,monthdate"`
	EndDate          *string `json:"end_date" validate:"omitempty,monthdate"`
	CurrentlyWorking bool    `json:"currently_working"`
	TwitterLink      *string `json:"twitter_link" validate:"omitempty,max=200"`
	DiscordLink      *string `json:"discord_link" validate:"omitempty,max=200"`
}

func (p experiencePayload) toExperience() (*experiences.Experience, error) {
	start, err := experiences.ParseMonth(p.StartDate)
	if err != nil {
		return nil, err
	}
	e := &experiences.Experience{
		TalentID:         p.TalentID,
		ProjectLogo:      p.ProjectLogo,
		CompanyName:      p.CompanyName,
		Role:             p.Role,
		Description:      p.Description,
		StartDate:        start,
		CurrentlyWorking: p.CurrentlyWorking,
		TwitterLink:      p.TwitterLink,
		DiscordLink:      p.DiscordLink,
	}
	if p.EndDate != nil && *p.EndDate != "" {
		end, err := experiences.ParseMonth(*p.EndDate)
		if err != nil {
			return nil, err
		}
		e.EndDate = &end
	}
	return e, e.Validate()
}

type verifyExperiencePayload struct {
	Verified *bool `json:"verified" validate:"required"`
}

type experienceListResponse struct {
	Experiences []experiences.Experience `json:"experiences"`
	Pagination  params.Pagination        `json:"pagination"`
}

func (app *application) writeExperienceList(w http.ResponseWriter, r *http.Request, talentID *int64) {
	pagination := params.ParsePagination(r.URL.Query())

	items, total, err := app.store.Experiences.List(r.Context(), experiences.Filter{
		TalentID: talentID,
		Limit:    pagination.PageSize,
		Offset:   pagination.Offset,
	})
	if err != nil {
		app.internalServerError(w, r, fmt.Errorf("failed to fetch experiences: %w", err))
		return
	}

	pagination.ComputeMeta(total)

	app.jsonResponse(w, http.StatusOK, experienceListResponse{Experiences: items, Pagination: pagination})
}

// listExperiencesHandler godoc
//
//	@Summary	List experiences
//	@Tags		experiences
//	@Produce	json
//	@Param		talent_id	query		int	false	"Only experiences of this talent"
//	@Param		page		query		int	false	"Page number"	default(1)
//	@Param		page_size	query		int	false	"Items per page"	default(300)
//	@Success	200			{object}	experienceListResponse
//	@Failure	400			{object}	error
//	@Router		/experiences [get]
func (app *application) listExperiencesHandler(w http.ResponseWriter, r *http.Request) {
	talentID, err := optionalIDQuery(r, "talent_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.writeExperienceList(w, r, talentID)
}

// createExperienceHandler godoc
//
//	@Summary		Add an experience
//	@Description	Dates are months (YYYY-MM). end_date must be empty while currently_working is true.
//	@Tags			experiences
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		experiencePayload	true	"Experience"
//	@Success		201		{object}	experiences.Experience
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error	"Talent not found"
//	@Router			/experiences [post]
func (app *application) createExperienceHandler(w http.ResponseWriter, r *http.Request) {
	var payload experiencePayload
	if err := decodeAndValidate(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	exp, err := payload.toExperience()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Experiences.Create(r.Context(), exp); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v1/experiences/%d", exp.ID))
	app.jsonResponse(w, http.StatusCreated, exp)
}

// getExperienceHandler godoc
//
//	@Summary	Get an experience
//	@Tags		experiences
//	@Produce	json
//	@Param		experienceID	path		int	true	"Experience ID"
//	@Success	200				{object}	experiences.Experience
//	@Failure	404				{object}	error
//	@Router		/experiences/{experienceID} [get]
func (app *application) getExperienceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "experienceID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	exp, err := app.store.Experiences.GetByID(r.Context(), id)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, exp)
}

// updateExperienceHandler godoc
//
//	@Summary		Replace an experience
//	@Description	The verified flag is kept; use the verify operation to change it.
//	@Tags			experiences
//	@Accept			json
//	@Produce		json
//	@Param			experienceID	path		int					true	"Experience ID"
//	@Param			payload			body		experiencePayload	true	"Experience"
//	@Success		200				{object}	experiences.Experience
//	@Failure		400				{object}	error
//	@Failure		404				{object}	error
//	@Router			/experiences/{experienceID} [put]
func (app *application) updateExperienceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "experienceID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload experiencePayload
	if err := decodeAndValidate(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	exp, err := payload.toExperience()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	exp.ID = id

	if err := app.store.Experiences.Update(r.Context(), exp); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, exp)
}

// deleteExperienceHandler godoc
//
//	@Summary	Delete an experience
//	@Tags		experiences
//	@Param		experienceID	path	int	true	"Experience ID"
//	@Success	204
//	@Failure	404	{object}	error
//	@Router		/experiences/{experienceID} [delete]
func (app *application) deleteExperienceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "experienceID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Experiences.Delete(r.Context(), id); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// verifyExperienceHandler godoc
//
//	@Summary	Set the verified flag of an experience
//	@Tags		experiences
//	@Accept		json
//	@Produce	json
//	@Param		experienceID	path		int						true	"Experience ID"
//	@Param		payload			body		verifyExperiencePayload	true	"Verified flag"
//	@Success	200				{object}	experiences.Experience
//	@Failure	401				{object}	error
//	@Failure	404				{object}	error
//	@Security	BasicAuth
//	@Router		/experiences/{experienceID}/verify [patch]
func (app *application) verifyExperienceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "experienceID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload verifyExperiencePayload
	if err := decodeAndValidate(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	exp, err := app.store.Experiences.SetVerified(r.Context(), id, *payload.Verified)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.logger.Infow("experience verification changed", "experience_id", id, "verified", exp.Verified)
	app.jsonResponse(w, http.StatusOK, exp)
}
