package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ApplicationsForge/textokit/internal/domain"
)

// MapConfig overlays the parsed YAML onto the defaults and validates it.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if yc.Network.TimeoutMS != nil {
		if *yc.Network.TimeoutMS < 0 {
			return domain.Config{}, invalidField(path, "network.timeout_ms", "must be >= 0")
		}
		cfg.Network.Timeout = time.Duration(*yc.Network.TimeoutMS) * time.Millisecond
	}
	if strings.TrimSpace(yc.Network.UserAgent) != "" {
		cfg.Network.UserAgent = yc.Network.UserAgent
	}
	if yc.Network.ThrottleBPS < 0 {
		return domain.Config{}, invalidField(path, "network.throttle_bps", "must be >= 0")
	}
	cfg.Network.ThrottleBytesPerSec = yc.Network.ThrottleBPS
	if yc.Network.MaxRedirects != nil {
		if *yc.Network.MaxRedirects < 0 {
			return domain.Config{}, invalidField(path, "network.max_redirects", "must be >= 0 (0 = unlimited)")
		}
		cfg.Network.MaxRedirects = *yc.Network.MaxRedirects
	}

	if strings.TrimSpace(yc.Update.FeedURL) != "" {
		cfg.Update.FeedURL = yc.Update.FeedURL
	}
	if strings.TrimSpace(yc.Paths.HistoryDir) != "" {
		cfg.Paths.HistoryDir = yc.Paths.HistoryDir
	}

	if yc.Headers != nil {
		cfg.Headers = domain.Headers(yc.Headers)
	}
	if yc.Shortcuts != nil {
		cfg.Shortcuts = yc.Shortcuts
	}

	cfg.Tools = make([]domain.ExternalTool, 0, len(yc.Tools))
	seen := map[string]bool{}
	for i, yt := range yc.Tools {
		fieldPrefix := fmt.Sprintf("tools[%d]", i)
		if strings.TrimSpace(yt.Name) == "" {
			return domain.Config{}, invalidField(path, fieldPrefix+".name", "tool name is required")
		}
		if seen[yt.Name] {
			return domain.Config{}, invalidField(path, fieldPrefix+".name", "duplicate tool name")
		}
		seen[yt.Name] = true

		hasCommand := strings.TrimSpace(yt.Command) != ""
		hasScript := strings.TrimSpace(yt.Interpreter) != "" && strings.TrimSpace(yt.Script) != ""
		if hasCommand == hasScript {
			return domain.Config{}, invalidField(path, fieldPrefix, "exactly one of command or interpreter+script is required")
		}

		input, err := parseToolInput(yt.Input)
		if err != nil {
			return domain.Config{}, invalidField(path, fieldPrefix+".input", err.Error())
		}
		if yt.TimeoutMS < 0 {
			return domain.Config{}, invalidField(path, fieldPrefix+".timeout_ms", "must be >= 0")
		}

		cfg.Tools = append(cfg.Tools, domain.ExternalTool{
			Name:        yt.Name,
			Command:     yt.Command,
			Args:        yt.Args,
			Interpreter: yt.Interpreter,
			Script:      yt.Script,
			WorkDir:     yt.WorkDir,
			Input:       input,
			Timeout:     time.Duration(yt.TimeoutMS) * time.Millisecond,
		})
	}

	return cfg, nil
}

// UnmapConfig converts a domain config back to its YAML form for saving.
func UnmapConfig(cfg domain.Config) YAMLConfig {
	timeoutMS := int(cfg.Network.Timeout / time.Millisecond)
	maxRedirects := cfg.Network.MaxRedirects

	yc := YAMLConfig{
		Network: YAMLNetwork{
			TimeoutMS:    &timeoutMS,
			UserAgent:    cfg.Network.UserAgent,
			ThrottleBPS:  cfg.Network.ThrottleBytesPerSec,
			MaxRedirects: &maxRedirects,
		},
		Update:    YAMLUpdate{FeedURL: cfg.Update.FeedURL},
		Paths:     YAMLPaths{HistoryDir: cfg.Paths.HistoryDir},
		Headers:   cfg.Headers,
		Shortcuts: cfg.Shortcuts,
	}

	yc.Tools = make([]YAMLTool, 0, len(cfg.Tools))
	for _, t := range cfg.Tools {
		yc.Tools = append(yc.Tools, YAMLTool{
			Name:        t.Name,
			Command:     t.Command,
			Args:        t.Args,
			Interpreter: t.Interpreter,
			Script:      t.Script,
			WorkDir:     t.WorkDir,
			Input:       string(t.Input),
			TimeoutMS:   int(t.Timeout / time.Millisecond),
		})
	}

	return yc
}

func parseToolInput(in string) (domain.ToolInput, error) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "", string(domain.ToolInputNone):
		return domain.ToolInputNone, nil
	case string(domain.ToolInputStdin):
		return domain.ToolInputStdin, nil
	default:
		return "", fmt.Errorf("unsupported input mode %q", in)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
