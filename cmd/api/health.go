package main

import (
	"context"
	"net/http"
	"time"
)

// healthCheckHandler godoc
//
//	@Summary		Health check
//	@Description	Reports service status, environment, version and database reachability.
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		503	{object}	map[string]string
//	@Security		BasicAuth
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"status":  "ok",
		"env":     app.config.env,
		"version": version,
		"db":      "ok",
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	if err := app.store.Ping(ctx); err != nil {
		app.logger.Errorw("health check database ping failed", "error", err.Error())
		data["status"] = "degraded"
		data["db"] = "unreachable"
		status = http.StatusServiceUnavailable
	}

	if err := app.jsonResponse(w, status, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
