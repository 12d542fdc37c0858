package usecase

import (
	"context"
	"fmt"

	"github.com/ApplicationsForge/textokit/internal/app/template"
	"github.com/ApplicationsForge/textokit/internal/domain"
	"github.com/ApplicationsForge/textokit/internal/ports"
)

// RunTool resolves a declared external tool by name and executes it.
type RunTool struct {
	runner ports.ToolRunner
}

func NewRunTool(runner ports.ToolRunner) *RunTool {
	return &RunTool{runner: runner}
}

// Execute renders {{VAR}} placeholders in the tool's args, script, and
// workdir from vars, then runs it with input on stdin when configured so.
func (uc *RunTool) Execute(ctx context.Context, cfg domain.Config, name string, input []byte, vars map[string]string) (domain.ToolResult, error) {
	tool, ok := cfg.ToolByName(name)
	if !ok {
		return domain.ToolResult{}, &domain.OpError{
			Op:   "usecase.run_tool",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("tool %q: %w", name, domain.ErrNotFound),
		}
	}

	rendered, err := template.RenderTool(tool, vars)
	if err != nil {
		return domain.ToolResult{}, err
	}

	return uc.runner.Run(ctx, rendered, input)
}
