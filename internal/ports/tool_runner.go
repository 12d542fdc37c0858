package ports

import (
	"context"

	"github.com/ApplicationsForge/textokit/internal/domain"
)

// ToolRunner executes a single external tool with the given input payload.
type ToolRunner interface {
	Run(ctx context.Context, tool domain.ExternalTool, input []byte) (domain.ToolResult, error)
}
