package usecase

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/coreos/go-semver/semver"

	"github.com/ApplicationsForge/textokit/internal/domain"
	"github.com/ApplicationsForge/textokit/internal/ports"
	"github.com/ApplicationsForge/textokit/internal/usecase/feed"
)

const defaultFeedTimeout = 15 * time.Second

// CheckUpdate downloads the release feed and compares it to the running build.
type CheckUpdate struct {
	fetcher  ports.Fetcher
	timeout  time.Duration
	platform string
}

type CheckUpdateOption func(*CheckUpdate)

func WithFeedTimeout(d time.Duration) CheckUpdateOption {
	return func(uc *CheckUpdate) { uc.timeout = d }
}

// WithPlatform overrides the asset platform filter (defaults to runtime.GOOS).
func WithPlatform(p string) CheckUpdateOption {
	return func(uc *CheckUpdate) { uc.platform = p }
}

func NewCheckUpdate(fetcher ports.Fetcher, opts ...CheckUpdateOption) *CheckUpdate {
	uc := &CheckUpdate{
		fetcher:  fetcher,
		timeout:  defaultFeedTimeout,
		platform: runtime.GOOS,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *CheckUpdate) Execute(ctx context.Context, feedURL, currentVersion string) (domain.UpdateCheck, error) {
	body, _, err := uc.fetcher.FetchBytes(ctx, feedURL, uc.timeout)
	if err != nil {
		return domain.UpdateCheck{}, err
	}

	latest, err := feed.Latest(body, uc.platform)
	if err != nil {
		return domain.UpdateCheck{}, err
	}

	return domain.UpdateCheck{
		CurrentVersion: currentVersion,
		Latest:         latest,
		Newer:          isNewer(currentVersion, latest.Version),
	}, nil
}

// isNewer reports whether latest is a strictly newer semantic version than
// current. Unparsable versions (dev builds, odd tags) are never "newer".
func isNewer(current, latest string) bool {
	cv, err := semver.NewVersion(normalizeVersion(current))
	if err != nil {
		return false
	}
	lv, err := semver.NewVersion(normalizeVersion(latest))
	if err != nil {
		return false
	}
	return cv.LessThan(*lv)
}

func normalizeVersion(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}
