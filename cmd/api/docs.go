package main

import (
	"net/http"
	"strings"
)

// apiRootHandler godoc
//
//	@Summary		API index
//	@Description	Links to every collection.
//	@Tags			meta
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/ [get]
func (app *application) apiRootHandler(w http.ResponseWriter, r *http.Request) {
	base := app.baseURL(r) + "/v1"

	app.jsonResponse(w, http.StatusOK, map[string]string{
		"jobs":        base + "/jobs",
		"talents":     base + "/talents",
		"reviews":     base + "/reviews",
		"experiences": base + "/experiences",
		"swagger":     base + "/swagger/index.html",
		"docs":        base + "/docs",
	})
}

// baseURL prefers the configured external URL, then the request's host.
func (app *application) baseURL(r *http.Request) string {
	host := app.config.apiURL
	if host == "" {
		host = r.Host
	}
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return strings.TrimSuffix(host, "/")
	}

	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + strings.TrimSuffix(host, "/")
}

const redocPage = `<!DOCTYPE html>
<html>
  <head>
    <title>MasterNeo API reference</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>body { margin: 0; padding: 0; }</style>
  </head>
  <body>
    <redoc spec-url="/v1/swagger/doc.json"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
  </body>
</html>
`

// redocHandler serves a static reference rendered from the swagger document.
func (app *application) redocHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(redocPage))
}
