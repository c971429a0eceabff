package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"charity/internal/document"
	"charity/internal/platform/config"
	"charity/internal/platform/middleware"
	"charity/pkg/platform/httputil"
)

func (a *app) router(cfg config.Config, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(middleware.Latency(a.metrics))

	r.Get("/healthz", a.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	if a.documentDir != "" {
		r.Handle("/"+document.PublicPrefix+"/*", document.Serve(a.documentDir))
	}

	requireAuth := middleware.RequireAuth(a.tokens.Validator(), log)

	r.Route("/user-api", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		a.authHandler.Register(r, requireAuth)
	})

	r.Route("/beneficiary-platform", func(r chi.Router) {
		r.Use(requireAuth)
		a.documents.RegisterBeneficiary(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.ContentTypeJSON)
			a.locationHandler.Register(r)
			a.lookupHandler.Register(r)
			a.beneficiaryHandler.Register(r)
			a.requestHandler.Register(r)
			a.announcements.RegisterBeneficiary(r)
		})
	})

	r.Route("/charity-platform", func(r chi.Router) {
		r.Use(requireAuth)
		r.Use(middleware.RequireStaffOrCharity(log))
		a.documents.RegisterCharity(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.ContentTypeJSON)
			a.charityHandler.Register(r)
			a.beneficiaryAdmin.Register(r)
			a.requestAdmin.Register(r)
			a.announcements.RegisterCharity(r)
		})
	})
	return r
}

type healthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// handleHealth pings each configured backing service.
func (a *app) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok", Services: map[string]string{}}
	check := func(name string, fn func(context.Context) error) {
		if err := fn(ctx); err != nil {
			resp.Status = "degraded"
			resp.Services[name] = err.Error()
			return
		}
		resp.Services[name] = "ok"
	}
	if a.db != nil {
		check("postgres", a.db.PingContext)
	}
	if a.redis != nil {
		check("redis", a.redis.Health)
	}
	if a.producer != nil {
		check("kafka", a.producer.Health)
	}
	if a.search != nil {
		check("search", a.search.Health)
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	httputil.WriteJSON(w, status, resp)
}
