package main

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func multipartRequest(t *testing.T, path, field string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "image.png")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func (s *testServer) upload(t *testing.T, path, field string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, multipartRequest(t, path, field, content))
	return rec
}

func TestUploadWithoutCloudinary(t *testing.T) {
	s := newTestServer(t)
	createTalent(t, s, "gopher")

	rec := s.upload(t, "/v1/talents/1/avatar", "avatar", pngHeader)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUploadTalentAvatar(t *testing.T) {
	uploader := &fakeUploader{}
	s := newTestServer(t, func(app *application) { app.images = uploader })
	createTalent(t, s, "gopher")

	rec := s.upload(t, "/v1/talents/1/avatar", "avatar", pngHeader)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp imageResponse
	decodeData(t, rec, &resp)
	assert.Contains(t, resp.URL, "/talents/")
	require.NotNil(t, s.fakes.talents.items[1].Avatar)
	assert.Equal(t, resp.URL, *s.fakes.talents.items[1].Avatar)
}

func TestUploadJobLogo(t *testing.T) {
	uploader := &fakeUploader{}
	s := newTestServer(t, func(app *application) { app.images = uploader })
	createJob(t, s, validJob("Go Engineer", "Engineering", true))

	rec := s.upload(t, "/v1/jobs/1/logo", "logo", pngHeader)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp imageResponse
	decodeData(t, rec, &resp)
	assert.Contains(t, resp.URL, "/jobs/")
	assert.Equal(t, resp.URL, *s.fakes.jobs.items[1].JobLogo)
}

func TestUploadRejectsNonImages(t *testing.T) {
	uploader := &fakeUploader{}
	s := newTestServer(t, func(app *application) { app.images = uploader })
	createTalent(t, s, "gopher")

	rec := s.upload(t, "/v1/talents/1/avatar", "avatar", []byte("#!/bin/sh\necho hi\n"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.upload(t, "/v1/talents/1/avatar", "picture", pngHeader)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, uploader.uploaded)
}

func TestUploadForMissingTalentDiscardsAsset(t *testing.T) {
	uploader := &fakeUploader{}
	s := newTestServer(t, func(app *application) { app.images = uploader })

	rec := s.upload(t, "/v1/talents/5/avatar", "avatar", pngHeader)
	require.Equal(t, http.StatusNotFound, rec.Code)

	assert.Eventually(t, func() bool {
		uploader.mu.Lock()
		defer uploader.mu.Unlock()
		return len(uploader.deleted) == 1
	}, time.Second, 10*time.Millisecond)
}
