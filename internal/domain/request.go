package domain

import "time"

// HTTPMethod represents an HTTP method (e.g., GET, POST).
type HTTPMethod string

const (
	MethodGet    HTTPMethod = "GET"
	MethodPost   HTTPMethod = "POST"
	MethodPut    HTTPMethod = "PUT"
	MethodDelete HTTPMethod = "DELETE"
)

// Headers is a map representation of HTTP headers (last write wins per name).
type Headers map[string]string

// Credentials are opaque hints forwarded as request metadata.
// The downloader itself never authenticates; the transport consumes these.
type Credentials struct {
	Protected bool
	Username  string
	Password  string
}

// Outcome is the terminal result of one top-level download/upload call,
// reported exactly once regardless of how many redirects were followed.
type Outcome struct {
	Error       NetworkError
	Body        []byte
	ContentType string
}

// OK reports whether the outcome is a success.
func (o Outcome) OK() bool {
	return o.Error == NetworkNoError
}

// FetchArtifact is a persisted record of one completed top-level call.
type FetchArtifact struct {
	Method      HTTPMethod
	URL         string
	Error       NetworkError
	Bytes       int64
	ContentType string

	StartedAt  time.Time
	FinishedAt time.Time
}
