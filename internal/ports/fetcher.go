package ports

import (
	"context"
	"time"
)

// Fetcher retrieves the full body of a URL, following redirects.
type Fetcher interface {
	FetchBytes(ctx context.Context, url string, timeout time.Duration) (body []byte, contentType string, err error)
}
