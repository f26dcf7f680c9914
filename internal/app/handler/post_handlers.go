package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dkrasnov/shrtnr/internal/app/service"
	"github.com/dkrasnov/shrtnr/internal/models"
)

type PostHandler struct {
	baseURL   string
	shortener service.ShortenerIface
	logger    *zap.Logger
}

func NewPost(baseURL string, s service.ShortenerIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		baseURL:   baseURL,
		shortener: s,
		logger:    l,
	}
}

// HandleShorten handles POST requests that create a slug -> target mapping.
// Console clients get the bare short URL; everyone else gets the record JSON.
func (h *PostHandler) HandleShorten(res http.ResponseWriter, req *http.Request) {
	var request models.ShortenRequest

	err := decodeJSONBody(res, req, &request)
	if err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			writeError(res, mr.status, mr.msg)
		} else {
			log.Print(err.Error())
			writeError(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	client := models.DetectClient(req.Header.Get("User-Agent"))
	host := hostContext(h.baseURL, req)

	record, err := h.shortener.Allocate(req.Context(), request.Slug, request.URL, host)
	if err != nil {
		h.writeAllocationError(res, err)
		return
	}

	shortURL := host.ShortURL(record.Slug)

	if client == models.ClientConsole {
		res.Header().Set("Content-Type", "text/plain; charset=utf-8")
		res.WriteHeader(http.StatusCreated)

		_, resErr := res.Write([]byte(shortURL + "\n"))
		if resErr != nil {
			res.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	writeJSON(res, http.StatusCreated, models.ShortenResponse{
		ID:        record.ID,
		Slug:      record.Slug,
		URL:       record.Target,
		ShortURL:  shortURL,
		Clicks:    record.Clicks,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
	})
}

func (h *PostHandler) writeAllocationError(res http.ResponseWriter, err error) {
	var inUse *service.SlugInUseError
	if errors.As(err, &inUse) {
		h.logger.Info("slug already in use", zap.String("short_url", inUse.ShortURL))
		writeError(res, http.StatusConflict, inUse.Error())
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidTarget),
		errors.Is(err, service.ErrInvalidSlug),
		errors.Is(err, service.ErrSelfReferential):
		writeError(res, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrGenerationExhausted):
		h.logger.Error("slug generation exhausted")
		writeError(res, http.StatusInternalServerError, err.Error())

	default:
		h.logger.Error("allocation failed", zap.Error(err))
		writeError(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
