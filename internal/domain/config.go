package domain

import "time"

// Config represents the textokit configuration loaded from textokit.yaml.
type Config struct {
	Network   NetworkConfig
	Update    UpdateConfig
	Paths     PathsConfig
	Headers   Headers
	Tools     []ExternalTool
	Shortcuts map[string]string
}

type NetworkConfig struct {
	// Timeout is the per-attempt inactivity timeout; 0 disables it.
	Timeout time.Duration

	UserAgent string

	// ThrottleBytesPerSec caps download speed; 0 means unthrottled.
	ThrottleBytesPerSec int

	// MaxRedirects bounds a redirect chain; 0 means unlimited.
	MaxRedirects int
}

type UpdateConfig struct {
	FeedURL string
}

type PathsConfig struct {
	HistoryDir string
}

// DefaultConfig provides sane defaults if textokit.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Network: NetworkConfig{
			Timeout:      15 * time.Second,
			UserAgent:    "textokit",
			MaxRedirects: 20,
		},
		Update: UpdateConfig{
			FeedURL: "https://api.github.com/repos/ApplicationsForge/textokit/releases",
		},
		Paths: PathsConfig{
			HistoryDir: "history",
		},
		Headers:   Headers{},
		Shortcuts: map[string]string{},
	}
}

// ToolByName finds a declared external tool.
func (c Config) ToolByName(name string) (ExternalTool, bool) {
	for _, t := range c.Tools {
		if t.Name == name {
			return t, true
		}
	}
	return ExternalTool{}, false
}
