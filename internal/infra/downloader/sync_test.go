package downloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ApplicationsForge/textokit/internal/domain"
)

func TestSyncFetcherReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	f := NewSyncFetcher()
	body, ct, err := f.FetchBytes(context.Background(), srv.URL, time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Fatalf("unexpected body %q", body)
	}
	if ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestSyncFetcherSurfacesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	addr := srv.URL
	srv.Close()

	f := NewSyncFetcher()
	_, _, err := f.FetchBytes(context.Background(), addr, time.Second)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !domain.IsKind(err, domain.KindNetwork) {
		t.Fatalf("expected a network kind, got: %v", err)
	}
}

func TestSyncFetcherHonorsContextCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	f := NewSyncFetcher()
	start := time.Now()
	_, _, err := f.FetchBytes(ctx, srv.URL, 0)
	if err == nil {
		t.Fatalf("expected an error after cancel")
	}
	if time.Since(start) > 2*time.Second {
		t.Fatalf("cancel took too long")
	}
}
