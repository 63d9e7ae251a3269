package main

import (
	"fmt"
	"net/http"

	"masterneo/internal/domain/reviews"
	"masterneo/internal/domain/talents"
	"masterneo/internal/params"
)

type createReviewPayload struct {
	TalentID           int64  `json:"talent_id" validate:"required,min=1"`
	ReviewerName       string `json:"reviewer_name" validate:"required,max=200"`
	ReviewerOccupation string `json:"reviewer_occupation" validate:"max=200"`
	Review             string `json:"review" validate:"required,max=5000"`
	Rating             int    `json:"rating" validate:"required,min=1,max=5"`
}

type reviewListResponse struct {
	Reviews    []reviews.Review  `json:"reviews"`
	Pagination params.Pagination `json:"pagination"`
}

// reviewWriteResponse carries the talent's aggregates as they stand after
// the write.
type reviewWriteResponse struct {
	Review *reviews.Review    `json:"review,omitempty"`
	Talent talents.Aggregates `json:"talent"`
}

func (app *application) writeReviewList(w http.ResponseWriter, r *http.Request, talentID *int64) {
	pagination := params.ParsePagination(r.URL.Query())

	items, total, err := app.store.Reviews.List(r.Context(), reviews.Filter{
		TalentID: talentID,
		Limit:    pagination.PageSize,
		Offset:   pagination.Offset,
	})
	if err != nil {
		app.internalServerError(w, r, fmt.Errorf("failed to fetch reviews: %w", err))
		return
	}

	pagination.ComputeMeta(total)

	app.jsonResponse(w, http.StatusOK, reviewListResponse{Reviews: items, Pagination: pagination})
}

// listReviewsHandler godoc
//
//	@Summary	List reviews
//	@Tags		reviews
//	@Produce	json
//	@Param		talent_id	query		int	false	"Only reviews of this talent"
//	@Param		page		query		int	false	"Page number"	default(1)
//	@Param		page_size	query		int	false	"Items per page"	default(300)
//	@Success	200			{object}	reviewListResponse
//	@Failure	400			{object}	error
//	@Router		/reviews [get]
func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	talentID, err := optionalIDQuery(r, "talent_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.writeReviewList(w, r, talentID)
}

// createReviewHandler godoc
//
//	@Summary		Review a talent
//	@Description	Stores the review and recomputes the talent's reviews_count and average_rating in one transaction.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createReviewPayload	true	"Review"
//	@Success		201		{object}	reviewWriteResponse
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error	"Talent not found"
//	@Router			/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	var payload createReviewPayload
	if err := decodeAndValidate(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review := &reviews.Review{
		TalentID:           payload.TalentID,
		ReviewerName:       payload.ReviewerName,
		ReviewerOccupation: payload.ReviewerOccupation,
		Review:             payload.Review,
		Rating:             payload.Rating,
	}

	agg, err := app.store.Ledger.CreateReview(r.Context(), review)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v1/reviews/%d", review.ID))
	app.jsonResponse(w, http.StatusCreated, reviewWriteResponse{Review: review, Talent: agg})
}

// getReviewHandler godoc
//
//	@Summary	Get a review
//	@Tags		reviews
//	@Produce	json
//	@Param		reviewID	path		int	true	"Review ID"
//	@Success	200			{object}	reviews.Review
//	@Failure	404			{object}	error
//	@Router		/reviews/{reviewID} [get]
func (app *application) getReviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "reviewID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review, err := app.store.Reviews.GetByID(r.Context(), id)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, review)
}

// deleteReviewHandler godoc
//
//	@Summary		Delete a review
//	@Description	Recomputes the talent's aggregates in the same transaction.
//	@Tags			reviews
//	@Produce		json
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	reviewWriteResponse
//	@Failure		404			{object}	error
//	@Router			/reviews/{reviewID} [delete]
func (app *application) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "reviewID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	agg, err := app.store.Ledger.DeleteReview(r.Context(), id)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, reviewWriteResponse{Talent: agg})
}
