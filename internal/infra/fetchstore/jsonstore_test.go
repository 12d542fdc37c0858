package fetchstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ApplicationsForge/textokit/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestSaveFetchWritesArtifact(t *testing.T) {
	root := t.TempDir()
	s := NewJSONStore(root, domain.DefaultConfig(), WithNow(fixedNow))

	id, err := s.SaveFetch(domain.FetchArtifact{
		Method:      domain.MethodGet,
		URL:         "https://example.com/releases.json",
		Error:       domain.NetworkNoError,
		Bytes:       1234,
		ContentType: "application/json",
	})
	if err != nil {
		t.Fatalf("SaveFetch error: %v", err)
	}

	if !strings.Contains(id, "example-com") {
		t.Fatalf("expected host slug in id, got %q", id)
	}

	path := filepath.Join(root, "history", id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected artifact file at %s: %v", path, err)
	}

	var got domain.FetchArtifact
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if got.URL != "https://example.com/releases.json" || got.Bytes != 1234 {
		t.Fatalf("artifact mismatch: %+v", got)
	}
	if got.StartedAt.IsZero() {
		t.Fatalf("expected StartedAt to be stamped")
	}
}

func TestSaveFetchAppendsIndex(t *testing.T) {
	root := t.TempDir()
	s := NewJSONStore(root, domain.DefaultConfig(), WithNow(fixedNow), WithIndex(true))

	if _, err := s.SaveFetch(domain.FetchArtifact{
		Method: domain.MethodPost,
		URL:    "https://api.example.com/upload",
		Error:  domain.NetworkTimeout,
	}); err != nil {
		t.Fatalf("SaveFetch error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(root, "history", "index.jsonl"))
	if err != nil {
		t.Fatalf("expected index file: %v", err)
	}
	line := strings.TrimSpace(string(b))
	if !strings.Contains(line, `"method":"POST"`) || !strings.Contains(line, `"error":"timeout"`) {
		t.Fatalf("unexpected index line: %s", line)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"example.com":     "example-com",
		"API.Example.com": "api-example-com",
		"":                "",
		"něco":            "nco",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
