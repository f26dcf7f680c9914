package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dkrasnov/shrtnr/internal/app/service"
	"github.com/dkrasnov/shrtnr/internal/storage"
)

type GetHandler struct {
	shortener service.ShortenerIface
	logger    *zap.Logger
}

func NewGet(s service.ShortenerIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		shortener: s,
		logger:    l,
	}
}

// BySlug handles GET requests that resolve a slug to its target. Slugs are
// stored lowercase, so the path segment is case-folded before the lookup.
func (h *GetHandler) BySlug(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	slug := strings.ToLower(chi.URLParam(req, "slug"))

	target, err := h.shortener.Resolve(ctx, slug)
	if err != nil {
		http.Error(res, "URL not found", http.StatusNotFound)
		return
	}

	http.Redirect(res, req, target, http.StatusFound)
}

// List handles GET requests for one page of the catalog.
func (h *GetHandler) List(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	query := req.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	order := storage.SortOrder(query.Get("sort"))

	result := h.shortener.List(ctx, page, limit, order)

	writeJSON(res, http.StatusOK, result)
}

func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()
	if err := h.shortener.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}
