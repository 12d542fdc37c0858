// Package template renders {{VAR}} placeholders in external tool arguments.
package template

import (
	"fmt"
	"strings"

	"github.com/ApplicationsForge/textokit/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("unclosed template expression: %w", domain.ErrInvalidConfig),
			}
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("empty template expression: %w", domain.ErrInvalidConfig),
			}
		}

		value, ok := vars[key]
		if !ok {
			return "", &domain.OpError{
				Op:   "template.render",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("missing variable %q: %w", key, domain.ErrInvalidConfig),
			}
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// RenderTool expands placeholders in a tool's args, script, and workdir.
func RenderTool(tool domain.ExternalTool, vars map[string]string) (domain.ExternalTool, error) {
	out := tool

	out.Args = make([]string, len(tool.Args))
	for i, a := range tool.Args {
		rendered, err := RenderString(a, vars)
		if err != nil {
			return domain.ExternalTool{}, err
		}
		out.Args[i] = rendered
	}

	script, err := RenderString(tool.Script, vars)
	if err != nil {
		return domain.ExternalTool{}, err
	}
	out.Script = script

	workdir, err := RenderString(tool.WorkDir, vars)
	if err != nil {
		return domain.ExternalTool{}, err
	}
	out.WorkDir = workdir

	return out, nil
}
