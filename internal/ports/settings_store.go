package ports

import "github.com/ApplicationsForge/textokit/internal/domain"

// SettingsStore loads and saves the application configuration.
type SettingsStore interface {
	Load() (domain.Config, error)
	Save(cfg domain.Config) error
}
