package models

import (
	"net/http"
	"time"
)

// CachedResponse is one stored response inside a versioned asset bucket.
type CachedResponse struct {
	FetchedAt  time.Time   `json:"fetched_at"`
	Header     http.Header `json:"header"`
	URL        string      `json:"url"`
	Body       []byte      `json:"body"`
	StatusCode int         `json:"status_code"`
}
