package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/dkrasnov/shrtnr/internal/app/service"
	"github.com/dkrasnov/shrtnr/internal/mocks"
	"github.com/dkrasnov/shrtnr/internal/models"
	"github.com/dkrasnov/shrtnr/internal/storage"
)

func newPostRequest(body string, userAgent string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/url", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	return req
}

func TestHandleShorten_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockShortenerIface(ctrl)
	handler := NewPost("", mockService, zap.NewNop())

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mockService.EXPECT().
		Allocate(gomock.Any(), "", "https://example.org/page", service.HostContext{Scheme: "http", Host: "example.com"}).
		Return(&storage.URLMapping{ID: 1, Slug: "abc12", Target: "https://example.org/page", CreatedAt: created}, nil)

	req := newPostRequest(`{"url":"https://example.org/page"}`, "Mozilla/5.0")
	w := httptest.NewRecorder()

	handler.HandleShorten(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body models.ShortenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "abc12", body.Slug)
	assert.Equal(t, "http://example.com/abc12", body.ShortURL)
	assert.Equal(t, "https://example.org/page", body.URL)
}

func TestHandleShorten_ConsoleClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockShortenerIface(ctrl)
	handler := NewPost("", mockService, zap.NewNop())

	mockService.EXPECT().
		Allocate(gomock.Any(), "", "https://example.org", gomock.Any()).
		Return(&storage.URLMapping{ID: 1, Slug: "abc12", Target: "https://example.org"}, nil)

	req := newPostRequest(`{"url":"https://example.org"}`, "curl/8.4.0")
	w := httptest.NewRecorder()

	handler.HandleShorten(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "http://example.com/abc12\n", w.Body.String())
}

func TestHandleShorten_BaseURLOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockShortenerIface(ctrl)
	handler := NewPost("https://sho.rt", mockService, zap.NewNop())

	mockService.EXPECT().
		Allocate(gomock.Any(), "", "https://example.org", service.HostContext{Scheme: "https", Host: "sho.rt"}).
		Return(&storage.URLMapping{ID: 1, Slug: "abc12", Target: "https://example.org"}, nil)

	req := newPostRequest(`{"url":"https://example.org"}`, "curl/8.4.0")
	w := httptest.NewRecorder()

	handler.HandleShorten(w, req)

	assert.Equal(t, "https://sho.rt/abc12\n", w.Body.String())
}

func TestHandleShorten_Errors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{
			name:         "invalid target",
			err:          service.ErrInvalidTarget,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid slug",
			err:          service.ErrInvalidSlug,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "self referential",
			err:          service.ErrSelfReferential,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "slug in use",
			err:          &service.SlugInUseError{ShortURL: "http://example.com/docs"},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "generation exhausted",
			err:          service.ErrGenerationExhausted,
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockShortenerIface(ctrl)
			handler := NewPost("", mockService, zap.NewNop())

			mockService.EXPECT().
				Allocate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			req := newPostRequest(`{"url":"https://example.org","slug":"docs"}`, "Mozilla/5.0")
			w := httptest.NewRecorder()

			handler.HandleShorten(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)

			var body models.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestHandleShorten_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockShortenerIface(ctrl)
	handler := NewPost("", mockService, zap.NewNop())

	tests := []struct {
		name         string
		body         string
		expectedCode int
	}{
		{
			name:         "empty body",
			body:         "",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "broken json",
			body:         `{"url":`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown field",
			body:         `{"address":"https://example.org"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newPostRequest(tt.body, "Mozilla/5.0")
			w := httptest.NewRecorder()

			handler.HandleShorten(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
		})
	}
}
