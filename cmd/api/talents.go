package main

import (
	"errors"
	"fmt"
	"net/http"

	"masterneo/internal/domain/talents"
	"masterneo/internal/params"
)

type createTalentPayload struct {
	Username       string   `json:"username" validate:"required,max=200"`
	GlobalName     string   `json:"global_name" validate:"max=200"`
	Avatar         *string  `json:"avatar" validate:"omitempty,url,max=500"`
	Timezone       string   `json:"timezone" validate:"omitempty,timezone"`
	Language       string   `json:"language" validate:"max=200"`
	AboutMe        string   `json:"about_me" validate:"max=5000"`
	Summary        string   `json:"summary" validate:"max=1000"`
	Skills         []string `json:"skills" validate:"max=50,dive,max=50"`
	Email          *string  `json:"email" validate:"omitempty,email,max=200"`
	DiscordProfile *string  `json:"discord_profile" validate:"omitempty,max=200"`
	TwitterProfile *string  `json:"twitter_profile" validate:"omitempty,max=200"`
	PhoneNumber    *string  `json:"phone_number" validate:"omitempty,max=32"`
}

type updateTalentPayload struct {
	Username       *string   `json:"username" validate:"omitempty,min=1,max=200"`
	GlobalName     *string   `json:"global_name" validate:"omitempty,max=200"`
	Avatar         *string   `json:"avatar" validate:"omitempty,url,max=500"`
	Timezone       *string   `json:"timezone" validate:"omitempty,timezone"`
	Language       *string   `json:"language" validate:"omitempty,max=200"`
	AboutMe        *string   `json:"about_me" validate:"omitempty,max=5000"`
	Summary        *string   `json:"summary" validate:"omitempty,max=1000"`
	Skills         *[]string `json:"skills" validate:"omitempty,max=50,dive,max=50"`
	Email          *string   `json:"email" validate:"omitempty,email,max=200"`
	DiscordProfile *string   `json:"discord_profile" validate:"omitempty,max=200"`
	TwitterProfile *string   `json:"twitter_profile" validate:"omitempty,max=200"`
	PhoneNumber    *string   `json:"phone_number" validate:"omitempty,max=32"`
}

func (p updateTalentPayload) apply(t *talents.Talent) error {
	if p.Username != nil {
		t.Username = *p.Username
	}
	if p.GlobalName != nil {
		t.GlobalName = *p.GlobalName
	}
	if p.Avatar != nil {
		t.Avatar = p.Avatar
	}
	if p.Timezone != nil {
		t.Timezone = *p.Timezone
	}
	if p.Language != nil {
		t.Language = *p.Language
	}
	if p.AboutMe != nil {
		t.AboutMe = *p.AboutMe
	}
	if p.Summary != nil {
		t.Summary = *p.Summary
	}
	if p.Skills != nil {
		skills, err := talents.NormalizeSkills(*p.Skills)
		if err != nil {
			return err
		}
		t.Skills = skills
	}
	if p.Email != nil {
		t.Email = p.Email
	}
	if p.DiscordProfile != nil {
		t.DiscordProfile = p.DiscordProfile
	}
	if p.TwitterProfile != nil {
		t.TwitterProfile = p.TwitterProfile
	}
	if p.PhoneNumber != nil {
		t.PhoneNumber = p.PhoneNumber
	}
	return nil
}

type talentListResponse struct {
	Talents    []talents.Talent  `json:"talents"`
	Pagination params.Pagination `json:"pagination"`
}

// skillsPayload is capped at talents.MaxSkills after NormalizeSkills, so
// repeated or blank entries do not count against the limit.
type skillsPayload struct {
	Skills []string `json:"skills" validate:"max=50,dive,max=50"`
}

type aboutMePayload struct {
	AboutMe string `json:"about_me" validate:"max=5000"`
}

type summaryPayload struct {
	Summary string `json:"summary" validate:"max=1000"`
}

type usernamePayload struct {
	Username string `json:"username" validate:"required,max=200"`
}

// listTalentsHandler godoc
//
//	@Summary		List talents
//	@Description	Paginated talent profiles. Skills match when any listed skill contains the given text (case-insensitive).
//	@Tags			talents
//	@Produce		json
//	@Param			skills		query		[]string	false	"Skill names, any may match"	collectionFormat(multi)
//	@Param			timezone	query		string		false	"IANA timezone, exact match"
//	@Param			language	query		string		false	"Language, case-insensitive"
//	@Param			search		query		string		false	"Search in username, global name and summary"
//	@Param			sort_by		query		string		false	"date_joined, rating, reviews_count, profile_visits, username, most_experienced or least_experienced"
//	@Param			order		query		string		false	"asc or desc"	default(desc)
//	@Param			page		query		int			false	"Page number"	default(1)
//	@Param			page_size	query		int			false	"Items per page (max 1000)"	default(300)
//	@Success		200			{object}	talentListResponse
//	@Failure		500			{object}	error
//	@Router			/talents [get]
func (app *application) listTalentsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pagination := params.ParsePagination(q)

	filter := talents.ParseFilter(q)
	filter.Limit = pagination.PageSize
	filter.Offset = pagination.Offset

	items, total, err := app.store.Talents.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, fmt.Errorf("failed to fetch talents: %w", err))
		return
	}

	pagination.ComputeMeta(total)

	app.jsonResponse(w, http.StatusOK, talentListResponse{Talents: items, Pagination: pagination})
}

// createTalentHandler godoc
//
//	@Summary	Create a talent profile
//	@Tags		talents
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		createTalentPayload	true	"Talent"
//	@Success	201		{object}	talents.Talent
//	@Failure	400		{object}	error
//	@Failure	409		{object}	error	"Username taken"
//	@Router		/talents [post]
func (app *application) createTalentHandler(w http.ResponseWriter, r *http.Request) {
	var payload createTalentPayload
	if err := decodeAndValidate(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	skills, err := talents.NormalizeSkills(payload.Skills)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	t := &talents.Talent{
		Username:       payload.Username,
		GlobalName:     payload.GlobalName,
		Avatar:         payload.Avatar,
		Timezone:       payload.Timezone,
		Language:       payload.Language,
		AboutMe:        payload.AboutMe,
		Summary:        payload.Summary,
		Skills:         skills,
		Email:          payload.Email,
		DiscordProfile: payload.DiscordProfile,
		TwitterProfile: payload.TwitterProfile,
		PhoneNumber:    payload.PhoneNumber,
	}

	if err := app.store.Talents.Create(r.Context(), t); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v1/talents/%d", t.ID))
	app.jsonResponse(w, http.StatusCreated, t)
}

// getTalentHandler godoc
//
//	@Summary		Get a talent profile
//	@Description	Counts one profile visit per visitor (X-Visitor-ID header, else client IP).
//	@Tags			talents
//	@Produce		json
//	@Param			talentID		path		int		true	"Talent ID"
//	@Param			X-Visitor-ID	header		string	false	"Stable visitor identifier"
//	@Success		200				{object}	talents.Talent
//	@Failure		404				{object}	error
//	@Router			/talents/{talentID} [get]
func (app *application) getTalentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "talentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if _, err := app.store.Talents.RecordVisit(r.Context(), id, visitorKey(r)); err != nil {
		if errors.Is(err, talents.ErrTalentNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		// a missed visit must not hide the profile
		app.logger.Warnw("record profile visit failed", "talent_id", id, "error", err.Error())
	}

	t, err := app.store.Talents.GetByID(r.Context(), id)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, t)
}

// updateTalentHandler godoc
//
//	@Summary		Update a talent profile
//	@Description	Partial update; omitted fields keep their value. A null value is treated as omitted, so avatar, email and the social handles cannot be cleared here. Derived fields cannot be written.
//	@Tags			talents
//	@Accept			json
//	@Produce		json
//	@Param			talentID	path		int					true	"Talent ID"
//	@Param			payload		body		updateTalentPayload	true	"Fields to change"
//	@Success		200			{object}	talents.Talent
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Failure		409			{object}	error
//	@Router			/talents/{talentID} [patch]
func (app *application) updateTalentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "talentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload updateTalentPayload
	if err := decodeAndValidate(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	t, err := app.store.Talents.GetByID(r.Context(), id)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	if err := payload.apply(t); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Talents.Update(r.Context(), t); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, t)
}

// deleteTalentHandler godoc
//
//	@Summary		Delete a talent
//	@Description	Also removes the talent's reviews and experiences.
//	@Tags			talents
//	@Param			talentID	path	int	true	"Talent ID"
//	@Success		204
//	@Failure		404	{object}	error
//	@Router			/talents/{talentID} [delete]
func (app *application) deleteTalentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "talentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Talents.Delete(r.Context(), id); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getTalentSkillsHandler godoc
//
//	@Summary	Get a talent's skills
//	@Tags		talents
//	@Produce	json
//	@Param		talentID	path		int	true	"Talent ID"
//	@Success	200			{object}	skillsPayload
//	@Failure	404			{object}	error
//	@Router		/talents/{talentID}/skills [get]
func (app *application) getTalentSkillsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "talentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	t, err := app.store.Talents.GetByID(r.Context(), id)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, skillsPayload{Skills: t.Skills})
}

// updateTalentSkillsHandler godoc
//
//	@Summary		Replace a talent's skills
//	@Description	At most 5 skills; duplicates (case-insensitive) are dropped.
//	@Tags			talents
//	@Accept			json
//	@Produce		json
//	@Param			talentID	path		int				true	"Talent ID"
//	@Param			payload		body		skillsPayload	true	"Skills"
//	@Success		200			{object}	skillsPayload
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Router			/talents/{talentID}/skills [put]
func (app *application) updateTalentSkillsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "talentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload skillsPayload
	if err := decodeAndValidate(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	skills, err := talents.NormalizeSkills(payload.Skills)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Talents.SetSkills(r.Context(), id, skills); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, skillsPayload{Skills: skills})
}

// updateTalentAboutMeHandler godoc
//
//	@Summary	Replace a talent's biography
//	@Tags		talents
//	@Accept		json
//	@Produce	json
//	@Param		talentID	path		int				true	"Talent ID"
//	@Param		payload		body		aboutMePayload	true	"Biography"
//	@Success	200			{object}	aboutMePayload
//	@Failure	404			{object}	error
//	@Router		/talents/{talentID}/about-me [put]
func (app *application) updateTalentAboutMeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "talentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload aboutMePayload
	if err := decodeAndValidate(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Talents.SetAboutMe(r.Context(), id, payload.AboutMe); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, payload)
}

// updateTalentSummaryHandler godoc
//
//	@Summary	Replace a talent's summary
//	@Tags		talents
//	@Accept		json
//	@Produce	json
//	@Param		talentID	path		int				true	"Talent ID"
//	@Param		payload		body		summaryPayload	true	"Summary"
//	@Success	200			{object}	summaryPayload
//	@Failure	404			{object}	error
//	@Router		/talents/{talentID}/summary [put]
func (app *application) updateTalentSummaryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "talentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload summaryPayload
	if err := decodeAndValidate(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Talents.SetSummary(r.Context(), id, payload.Summary); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, payload)
}

// updateTalentUsernameHandler godoc
//
//	@Summary	Change a talent's username
//	@Tags		talents
//	@Accept		json
//	@Produce	json
//	@Param		talentID	path		int				true	"Talent ID"
//	@Param		payload		body		usernamePayload	true	"Username"
//	@Success	200			{object}	usernamePayload
//	@Failure	404			{object}	error
//	@Failure	409			{object}	error	"Username taken"
//	@Router		/talents/{talentID}/username [put]
func (app *application) updateTalentUsernameHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "talentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload usernamePayload
	if err := decodeAndValidate(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.Talents.SetUsername(r.Context(), id, payload.Username); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, payload)
}

// getTalentAverageRatingHandler godoc
//
//	@Summary		Get a talent's review aggregates
//	@Description	average_rating is null while the talent has no reviews.
//	@Tags			talents
//	@Produce		json
//	@Param			talentID	path		int	true	"Talent ID"
//	@Success		200			{object}	talents.Aggregates
//	@Failure		404			{object}	error
//	@Router			/talents/{talentID}/average-rating [get]
func (app *application) getTalentAverageRatingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "talentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	t, err := app.store.Talents.GetByID(r.Context(), id)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, talents.Aggregates{
		TalentID:      t.ID,
		ReviewsCount:  t.ReviewsCount,
		AverageRating: t.AverageRating,
	})
}

// listTalentReviewsHandler godoc
//
//	@Summary	List a talent's reviews
//	@Tags		talents
//	@Produce	json
//	@Param		talentID	path		int	true	"Talent ID"
//	@Param		page		query		int	false	"Page number"	default(1)
//	@Param		page_size	query		int	false	"Items per page"	default(300)
//	@Success	200			{object}	reviewListResponse
//	@Failure	404			{object}	error
//	@Router		/talents/{talentID}/reviews [get]
func (app *application) listTalentReviewsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "talentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if _, err := app.store.Talents.GetByID(r.Context(), id); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.writeReviewList(w, r, &id)
}

// listTalentExperiencesHandler godoc
//
//	@Summary	List a talent's experiences
//	@Tags		talents
//	@Produce	json
//	@Param		talentID	path		int	true	"Talent ID"
//	@Param		page		query		int	false	"Page number"	default(1)
//	@Param		page_size	query		int	false	"Items per page"	default(300)
//	@Success	200			{object}	experienceListResponse
//	@Failure	404			{object}	error
//	@Router		/talents/{talentID}/experiences [get]
func (app *application) listTalentExperiencesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "talentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if _, err := app.store.Talents.GetByID(r.Context(), id); err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.writeExperienceList(w, r, &id)
}
