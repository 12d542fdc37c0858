package feed

import (
	"testing"

	"github.com/ApplicationsForge/textokit/internal/domain"
)

const sampleFeed = `[
  {
    "tag_name": "v1.4.0",
    "assets": [
      {"name": "textokit-1.4.0-windows-amd64.zip", "browser_download_url": "https://dl.example.com/win.zip"},
      {"name": "textokit-1.4.0-linux-amd64.tar.gz", "browser_download_url": "https://dl.example.com/linux.tar.gz"}
    ]
  },
  {
    "tag_name": "v1.3.0",
    "assets": []
  }
]`

func TestLatestPicksFirstEntry(t *testing.T) {
	rel, err := Latest([]byte(sampleFeed), "linux")
	if err != nil {
		t.Fatalf("Latest error: %v", err)
	}
	if rel.Version != "v1.4.0" {
		t.Fatalf("unexpected version %q", rel.Version)
	}
	if rel.AssetURL != "https://dl.example.com/linux.tar.gz" {
		t.Fatalf("unexpected asset %q", rel.AssetURL)
	}
}

func TestLatestNoMatchingAsset(t *testing.T) {
	rel, err := Latest([]byte(sampleFeed), "plan9")
	if err != nil {
		t.Fatalf("Latest error: %v", err)
	}
	if rel.Version != "v1.4.0" {
		t.Fatalf("release should still be reported, got %q", rel.Version)
	}
	if rel.AssetURL != "" {
		t.Fatalf("expected no asset, got %q", rel.AssetURL)
	}
}

func TestLatestEmptyPlatformTakesFirstAsset(t *testing.T) {
	rel, err := Latest([]byte(sampleFeed), "")
	if err != nil {
		t.Fatalf("Latest error: %v", err)
	}
	if rel.AssetURL != "https://dl.example.com/win.zip" {
		t.Fatalf("unexpected asset %q", rel.AssetURL)
	}
}

func TestLatestRejectsNonJSON(t *testing.T) {
	_, err := Latest([]byte("<html>not a feed</html>"), "linux")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got: %v", err)
	}
}

func TestLatestRejectsFeedWithoutTag(t *testing.T) {
	_, err := Latest([]byte(`[{"assets": []}]`), "linux")
	if err == nil {
		t.Fatalf("expected an error for a feed without tag_name")
	}
}
