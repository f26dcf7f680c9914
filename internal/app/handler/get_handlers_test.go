package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/dkrasnov/shrtnr/internal/app/service"
	"github.com/dkrasnov/shrtnr/internal/mocks"
	"github.com/dkrasnov/shrtnr/internal/models"
	"github.com/dkrasnov/shrtnr/internal/storage"
)

func newSlugRequest(slug string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/"+slug, nil)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{"slug"},
			Values: []string{slug},
		},
	}))
}

func TestBySlug(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockShortenerIface(ctrl)
	handler := NewGet(mockService, zap.NewNop())

	tests := []struct {
		name         string
		slug         string
		resolveSlug  string
		mockTarget   string
		mockErr      error
		expectedCode int
	}{
		{
			name:         "valid slug",
			slug:         "abc12",
			resolveSlug:  "abc12",
			mockTarget:   "https://example.com",
			expectedCode: http.StatusFound,
		},
		{
			name:         "mixed case slug is folded",
			slug:         "GitHub",
			resolveSlug:  "github",
			mockTarget:   "https://github.com",
			expectedCode: http.StatusFound,
		},
		{
			name:         "unknown slug",
			slug:         "nope1",
			resolveSlug:  "nope1",
			mockErr:      service.ErrNotFound,
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.EXPECT().Resolve(gomock.Any(), tt.resolveSlug).Return(tt.mockTarget, tt.mockErr)

			w := httptest.NewRecorder()
			handler.BySlug(w, newSlugRequest(tt.slug))

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			if tt.mockErr == nil {
				assert.Equal(t, tt.mockTarget, resp.Header.Get("Location"))
			}
		})
	}
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockShortenerIface(ctrl)
	handler := NewGet(mockService, zap.NewNop())

	expected := &models.ListResult{
		Items:      []storage.URLMapping{{ID: 2, Slug: "s2"}, {ID: 1, Slug: "s1"}},
		Page:       2,
		Limit:      10,
		TotalItems: 22,
		TotalPages: 3,
		HasNext:    true,
		HasPrev:    true,
	}

	mockService.EXPECT().
		List(gomock.Any(), 2, 10, storage.SortOrder("oldest")).
		Return(expected)

	req := httptest.NewRequest(http.MethodGet, "/api/urls?page=2&limit=10&sort=oldest", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.ListResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, expected.TotalItems, body.TotalItems)
	assert.Len(t, body.Items, 2)
}

func TestList_NoParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockShortenerIface(ctrl)
	handler := NewGet(mockService, zap.NewNop())

	// Missing params parse as zero values; defaults live in the service.
	mockService.EXPECT().
		List(gomock.Any(), 0, 0, storage.SortOrder("")).
		Return(&models.ListResult{Items: []storage.URLMapping{}, Page: 1, Limit: 50})

	req := httptest.NewRequest(http.MethodGet, "/api/urls", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPingDB(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockShortenerIface(ctrl)
	handler := NewGet(mockService, zap.NewNop())

	t.Run("healthy", func(t *testing.T) {
		mockService.EXPECT().PingContext(gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		handler.PingDB(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unhealthy", func(t *testing.T) {
		mockService.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused"))

		w := httptest.NewRecorder()
		handler.PingDB(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
