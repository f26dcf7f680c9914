// Package models defines the request and response data structures used
// for communication between clients and the shortener service.
package models

import "github.com/dkrasnov/shrtnr/internal/storage"

// DefaultPageLimit is applied when a listing request carries no limit.
const DefaultPageLimit = 50

// ShortenRequest represents a request to create a slug -> target mapping.
type ShortenRequest struct {
	// URL is the redirect destination. Required, must be absolute.
	URL string `json:"url"`

	// Slug is an optional custom slug; empty means auto-generate.
	Slug string `json:"slug,omitempty"`
}

// ShortenResponse represents the created mapping returned to the caller.
type ShortenResponse struct {
	ID        int64  `json:"id"`
	Slug      string `json:"slug"`
	URL       string `json:"url"`
	ShortURL  string `json:"short_url"`
	Clicks    int64  `json:"clicks"`
	CreatedAt string `json:"created_at"`
}

// ListResult is one page of the catalog together with page metadata. It is
// always structurally valid, even when the backing store failed.
type ListResult struct {
	Items      []storage.URLMapping `json:"items"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalItems int64                `json:"total_items"`
	TotalPages int                  `json:"total_pages"`
	HasNext    bool                 `json:"has_next"`
	HasPrev    bool                 `json:"has_prev"`
}

// ErrorResponse carries a human-readable failure message.
type ErrorResponse struct {
	Message string `json:"message"`
}
