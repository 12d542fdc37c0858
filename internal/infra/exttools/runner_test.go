package exttools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ApplicationsForge/textokit/internal/domain"
)

func TestRunCapturesStdout(t *testing.T) {
	r := New()

	res, err := r.Run(context.Background(), domain.ExternalTool{
		Name:    "upper",
		Command: "tr",
		Args:    []string{"a-z", "A-Z"},
		Input:   domain.ToolInputStdin,
	}, []byte("hello tools"))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if res.ExitCode != 0 {
		t.Fatalf("expected exit 0, got %d (stderr=%s)", res.ExitCode, res.Stderr)
	}
	if got := string(res.Stdout); got != "HELLO TOOLS" {
		t.Fatalf("unexpected stdout %q", got)
	}
	if res.RunID == "" {
		t.Fatalf("expected a run id")
	}
}

func TestRunInterpreterScript(t *testing.T) {
	r := New()

	res, err := r.Run(context.Background(), domain.ExternalTool{
		Name:        "greeter",
		Interpreter: "sh",
		Script:      `printf "hi from %s" "$0"`,
	}, nil)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Fatalf("expected exit 0, got %d (stderr=%s)", res.ExitCode, res.Stderr)
	}
	if !strings.HasPrefix(string(res.Stdout), "hi from") {
		t.Fatalf("unexpected stdout %q", res.Stdout)
	}
}

func TestRunReportsScriptExitCode(t *testing.T) {
	r := New()

	res, err := r.Run(context.Background(), domain.ExternalTool{
		Name:        "fail",
		Interpreter: "sh",
		Script:      "exit 3",
	}, nil)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Fatalf("expected exit 3, got %d", res.ExitCode)
	}
}

func TestRunFalseExitCode(t *testing.T) {
	r := New()

	res, err := r.Run(context.Background(), domain.ExternalTool{
		Name:    "false",
		Command: "false",
	}, nil)
	if err != nil {
		t.Fatalf("non-zero exit should not be a Go error: %v", err)
	}
	if res.ExitCode == 0 {
		t.Fatalf("expected a non-zero exit code")
	}
}

func TestRunMissingBinary(t *testing.T) {
	r := New()

	_, err := r.Run(context.Background(), domain.ExternalTool{
		Name:    "ghost",
		Command: "definitely-not-a-real-binary-xyz",
	}, nil)
	if err == nil {
		t.Fatalf("expected an error for a missing binary")
	}
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution kind, got: %v", err)
	}
}

func TestRunEmptyToolRejected(t *testing.T) {
	r := New()

	_, err := r.Run(context.Background(), domain.ExternalTool{Name: "empty"}, nil)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got: %v", err)
	}
}

func TestRunTruncatesOutput(t *testing.T) {
	r := New(WithMaxOutput(64))

	res, err := r.Run(context.Background(), domain.ExternalTool{
		Name:    "yes",
		Command: "head",
		Args:    []string{"-c", "4096", "/dev/zero"},
	}, nil)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !res.Truncated {
		t.Fatalf("expected truncated output")
	}
	if len(res.Stdout) != 64 {
		t.Fatalf("expected 64 captured bytes, got %d", len(res.Stdout))
	}
}

func TestRunTimeout(t *testing.T) {
	r := New()

	start := time.Now()
	res, err := r.Run(context.Background(), domain.ExternalTool{
		Name:    "sleepy",
		Command: "sleep",
		Args:    []string{"5"},
		Timeout: 150 * time.Millisecond,
	}, nil)
	if time.Since(start) > 2*time.Second {
		t.Fatalf("timeout not enforced")
	}
	if err == nil && res.ExitCode == 0 {
		t.Fatalf("expected the killed process to surface a failure")
	}
}
