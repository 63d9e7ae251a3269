package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"masterneo/internal/images"
)

const maxUploadBytes = 5 * 1024 * 1024 // 5MB

type imageResponse struct {
	URL string `json:"url"`
}

// receiveImage reads the multipart field, checks its type and uploads it.
// ok is false when a response has already been written.
func (app *application) receiveImage(w http.ResponseWriter, r *http.Request, field, folder string) (string, bool) {
	if app.images == nil {
		app.serviceUnavailableResponse(w, r, "image uploads are not configured")
		return "", false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to parse form: %w", err))
		return "", false
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, _, err := r.FormFile(field)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to get %s from form: %w", field, err))
		return "", false
	}
	defer file.Close()

	if _, err := images.SniffType(file); err != nil {
		if errors.Is(err, images.ErrUnsupportedType) {
			app.badRequestResponse(w, r, err)
			return "", false
		}
		app.internalServerError(w, r, err)
		return "", false
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	url, err := app.images.Upload(ctx, file, folder)
	if err != nil {
		app.internalServerError(w, r, err)
		return "", false
	}
	return url, true
}

// discardImage removes an uploaded asset after the database write failed.
func (app *application) discardImage(url string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := app.images.Delete(ctx, url); err != nil {
			app.logger.Errorw("cloudinary cleanup failed", "url", url, "error", err.Error())
		}
	}()
}

// uploadJobLogoHandler godoc
//
//	@Summary	Upload a job logo
//	@Tags		jobs
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		jobID	path		int		true	"Job ID"
//	@Param		logo	formData	file	true	"JPEG, PNG, WebP or GIF image, up to 5MB"
//	@Success	200		{object}	imageResponse
//	@Failure	400		{object}	error
//	@Failure	404		{object}	error
//	@Failure	503		{object}	error	"Uploads not configured"
//	@Router		/jobs/{jobID}/logo [post]
func (app *application) uploadJobLogoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "jobID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	url, ok := app.receiveImage(w, r, "logo", images.FolderJobLogos)
	if !ok {
		return
	}

	if err := app.store.Jobs.SetLogo(r.Context(), id, url); err != nil {
		app.discardImage(url)
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, imageResponse{URL: url})
}

// uploadTalentAvatarHandler godoc
//
//	@Summary	Upload a talent avatar
//	@Tags		talents
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		talentID	path		int		true	"Talent ID"
//	@Param		avatar		formData	file	true	"JPEG, PNG, WebP or GIF image, up to 5MB"
//	@Success	200			{object}	imageResponse
//	@Failure	400			{object}	error
//	@Failure	404			{object}	error
//	@Failure	503			{object}	error	"Uploads not configured"
//	@Router		/talents/{talentID}/avatar [post]
func (app *application) uploadTalentAvatarHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "talentID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	url, ok := app.receiveImage(w, r, "avatar", images.FolderAvatars)
	if !ok {
		return
	}

	if err := app.store.Talents.SetAvatar(r.Context(), id, url); err != nil {
		app.discardImage(url)
		app.storeErrorResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, imageResponse{URL: url})
}
