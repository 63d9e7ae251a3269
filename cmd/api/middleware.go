package main

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"masterneo/internal/metrics"
)

func (app *application) BasicAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// read the auth header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is missing"))
				return
			}

			// parse it -> get the base64
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Basic" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is malformed"))
				return
			}

			// decode it
			decoded, err := base64.StdEncoding.DecodeString(parts[1])
			if err != nil {
				app.unauthorizedBasicErrorResponse(w, r, err)
				return
			}

			// check the credentials; an empty configured password locks the route
			username := app.config.auth.basic.user
			pass := app.config.auth.basic.pass

			creds := strings.SplitN(string(decoded), ":", 2)
			if pass == "" || len(creds) != 2 ||
				subtle.ConstantTimeCompare([]byte(creds[0]), []byte(username)) != 1 ||
				subtle.ConstantTimeCompare([]byte(creds[1]), []byte(pass)) != 1 {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("invalid credentials"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimiterMiddleware rejects clients over their window. Limiter failures
// are logged and the request is let through.
func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !app.config.rateLimiter.Enabled || app.rateLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		allow, retryAfter, err := app.rateLimiter.Allow(r.Context(), clientIP(r))
		if err != nil {
			app.logger.Warnw("rate limiter unavailable", "error", err.Error())
			next.ServeHTTP(w, r)
			return
		}
		if !allow {
			metrics.RateLimited()
			secs := int(retryAfter.Seconds() + 0.999)
			if secs < 1 {
				secs = 1
			}
			app.rateLimitExceededResponse(w, r, strconv.Itoa(secs))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr, which chi's RealIP middleware
// has already replaced with the forwarded address when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

const (
	visitorHeader = "X-Visitor-ID"
	// maxVisitorKeyLen matches talent_profile_visits.visitor_key.
	maxVisitorKeyLen = 128
)

// visitorKey identifies a profile viewer for unique visit counting. The
// result, prefix included, never exceeds maxVisitorKeyLen bytes.
func visitorKey(r *http.Request) string {
	const prefix = "id:"
	v := strings.TrimSpace(strings.ToValidUTF8(r.Header.Get(visitorHeader), ""))
	if v != "" {
		return prefix + truncateUTF8(v, maxVisitorKeyLen-len(prefix))
	}
	return "ip:" + clientIP(r)
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
