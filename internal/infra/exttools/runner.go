// Package exttools executes user-defined external tools with timeouts and
// bounded output capture.
package exttools

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/ApplicationsForge/textokit/internal/domain"
	"github.com/ApplicationsForge/textokit/internal/ports"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultMaxOutput = 1 << 20 // 1MB per stream
)

type Runner struct {
	maxOutput int
	logger    *slog.Logger
}

type Option func(*Runner)

// WithMaxOutput bounds the captured size of each output stream.
func WithMaxOutput(n int) Option {
	return func(r *Runner) { r.maxOutput = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

func New(opts ...Option) *Runner {
	r := &Runner{
		maxOutput: defaultMaxOutput,
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.ToolRunner = (*Runner)(nil)

// Run executes the tool, feeding input on stdin when the tool asks for it.
// A non-zero exit is reported through ToolResult, not as an error; only
// failures to execute at all (missing binary, bad config) return an error.
func (r *Runner) Run(ctx context.Context, tool domain.ExternalTool, input []byte) (domain.ToolResult, error) {
	argv := tool.Argv()
	if len(argv) == 0 || argv[0] == "" {
		return domain.ToolResult{}, &domain.OpError{
			Op:   "exttools.run",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("tool has no command or interpreter"),
		}
	}

	timeout := tool.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	runID := uuid.New().String()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = tool.WorkDir
	if tool.Input == domain.ToolInputStdin {
		cmd.Stdin = bytes.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &limitWriter{buf: &stdout, limit: r.maxOutput}
	cmd.Stderr = &limitWriter{buf: &stderr, limit: r.maxOutput}

	r.logger.Debug("exttools.run", "tool", tool.Name, "run_id", runID, "argv0", argv[0])

	start := time.Now()
	runErr := cmd.Run()
	duration := time.Since(start)

	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			// Binary not found or other exec error.
			return domain.ToolResult{}, &domain.OpError{
				Op:   "exttools.run",
				Kind: domain.KindExecution,
				Err:  runErr,
			}
		}
	}

	return domain.ToolResult{
		RunID:     runID,
		Tool:      tool.Name,
		ExitCode:  exitCode,
		Stdout:    stdout.Bytes(),
		Stderr:    stderr.Bytes(),
		Truncated: stdout.Len() >= r.maxOutput || stderr.Len() >= r.maxOutput,
		Duration:  duration,
	}, nil
}

// limitWriter writes up to limit bytes to buf, then silently discards the rest.
type limitWriter struct {
	buf   *bytes.Buffer
	limit int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	remaining := w.limit - w.buf.Len()
	if remaining <= 0 {
		return len(p), nil // discard
	}
	if len(p) > remaining {
		// Write only what fits, but report all bytes as consumed
		// to avoid short write errors from io.Copy.
		w.buf.Write(p[:remaining])
		return len(p), nil
	}
	return w.buf.Write(p)
}
