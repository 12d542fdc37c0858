package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ApplicationsForge/textokit/internal/domain"
	"github.com/ApplicationsForge/textokit/internal/ports"
)

const configFileName = "textokit.yaml"

// DefaultPath returns the per-user config file path.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.default_path",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	return filepath.Join(base, "textokit", configFileName), nil
}

// Store loads and saves the configuration file at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

var _ ports.SettingsStore = (*Store)(nil)

func (s *Store) Path() string { return s.path }

// Load reads the configuration. A missing file yields the defaults.
func (s *Store) Load() (domain.Config, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: s.path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: s.path,
			Err:  err,
		}
	}

	return MapConfig(s.path, dto)
}

// Save writes the configuration atomically (tmp then rename).
func (s *Store) Save(cfg domain.Config) error {
	b, err := yaml.Marshal(UnmapConfig(cfg))
	if err != nil {
		return &domain.OpError{
			Op:   "config.save",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &domain.OpError{
			Op:   "config.save",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "config.save",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "config.save",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}
	return nil
}
