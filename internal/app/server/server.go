package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dkrasnov/shrtnr/internal/app/handler"
	"github.com/dkrasnov/shrtnr/internal/app/service"
	"github.com/dkrasnov/shrtnr/internal/middleware"
)

// Init wires the routes: slug allocation behind admission control, redirect
// resolution, the catalog listing and the store health check. The admission
// controller is owned by the caller, which stops it on shutdown.
func Init(baseURL string, logger *zap.Logger, shortener service.ShortenerIface, admission *middleware.AdmissionController) *chi.Mux {
	postHandler := handler.NewPost(baseURL, shortener, logger)
	getHandler := handler.NewGet(shortener, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithRequestLogging(logger))

	r.With(admission.Handler).Post("/url", postHandler.HandleShorten)

	r.With(middleware.WithGzip).Get("/api/urls", getHandler.List)

	r.Get("/ping", getHandler.PingDB)
	r.Get("/{slug}", getHandler.BySlug)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Short URL is required", http.StatusBadRequest)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
