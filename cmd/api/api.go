package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"masterneo/docs" //this is required to generate swagger docs
	"masterneo/internal/domain/storage"
	"masterneo/internal/images"
	"masterneo/internal/metrics"
	"masterneo/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	store       *storage.Container
	logger      *zap.SugaredLogger
	images      images.Uploader
	rateLimiter ratelimiter.Limiter
}

type config struct {
	addr          string
	db            dbConfig
	env           string
	apiURL        string
	auth          authConfig
	rateLimiter   ratelimiter.Config
	redis         redisConfig
	cors          corsConfig
	cloudinaryURL string
}

type authConfig struct {
	basic basicConfig
}

type basicConfig struct {
	user string
	pass string
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleTime  string
	migrate      bool
}

type redisConfig struct {
	addr string
	pw   string
	db   int
}

type corsConfig struct {
	allowedOrigins []string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.cors.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Visitor-ID"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	r.Use(metrics.Middleware)
	r.Use(app.RateLimiterMiddleware)

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/", app.apiRootHandler)

		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)
		r.With(app.BasicAuthMiddleware()).Handle("/metrics", metrics.Handler())

		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/v1/swagger/doc.json")))
		r.Get("/docs", app.redocHandler)

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", app.listJobsHandler)
			r.Post("/", app.createJobHandler)

			r.Route("/{jobID}", func(r chi.Router) {
				r.Get("/", app.getJobHandler)
				r.Post("/logo", app.uploadJobLogoHandler)

				r.Group(func(r chi.Router) {
					r.Use(app.BasicAuthMiddleware())
					r.Patch("/", app.updateJobHandler)
					r.Delete("/", app.deleteJobHandler)
				})
			})
		})

		r.Route("/talents", func(r chi.Router) {
			r.Get("/", app.listTalentsHandler)
			r.Post("/", app.createTalentHandler)

			r.Route("/{talentID}", func(r chi.Router) {
				r.Get("/", app.getTalentHandler)
				r.Patch("/", app.updateTalentHandler)
				r.Delete("/", app.deleteTalentHandler)

				r.Get("/skills", app.getTalentSkillsHandler)
				r.Put("/skills", app.updateTalentSkillsHandler)
				r.Put("/about-me", app.updateTalentAboutMeHandler)
				r.Put("/summary", app.updateTalentSummaryHandler)
				r.Put("/username", app.updateTalentUsernameHandler)
				r.Get("/average-rating", app.getTalentAverageRatingHandler)
				r.Get("/reviews", app.listTalentReviewsHandler)
				r.Get("/experiences", app.listTalentExperiencesHandler)
				r.Post("/avatar", app.uploadTalentAvatarHandler)
			})
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", app.listReviewsHandler)
			r.Post("/", app.createReviewHandler)
			r.Get("/{reviewID}", app.getReviewHandler)
			r.Delete("/{reviewID}", app.deleteReviewHandler)
		})

		r.Route("/experiences", func(r chi.Router) {
			r.Get("/", app.listExperiencesHandler)
			r.Post("/", app.createExperienceHandler)

			r.Route("/{experienceID}", func(r chi.Router) {
				r.Get("/", app.getExperienceHandler)
				r.Put("/", app.updateExperienceHandler)
				r.Delete("/", app.deleteExperienceHandler)
				r.With(app.BasicAuthMiddleware()).Patch("/verify", app.verifyExperienceHandler)
			})
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
