package ports

import "github.com/ApplicationsForge/textokit/internal/domain"

// HistoryStore persists download artifacts for later inspection.
type HistoryStore interface {
	SaveFetch(artifact domain.FetchArtifact) (id string, err error)
}
