package domain

import "time"

// ToolInput describes where an external tool reads its payload from.
type ToolInput string

const (
	ToolInputNone  ToolInput = "none"
	ToolInputStdin ToolInput = "stdin"
)

// ExternalTool describes one user-defined external tool.
// Either Command (a binary plus Args) or Interpreter plus Script is set;
// an inline script is handed to the interpreter via its -c flag.
type ExternalTool struct {
	Name        string
	Command     string
	Args        []string
	Interpreter string
	Script      string
	WorkDir     string
	Input       ToolInput
	Timeout     time.Duration
}

// Argv returns the argv to execute for the tool.
func (t ExternalTool) Argv() []string {
	if t.Interpreter != "" {
		return []string{t.Interpreter, "-c", t.Script}
	}
	return append([]string{t.Command}, t.Args...)
}

// ToolResult is the captured output of one tool run.
type ToolResult struct {
	RunID     string
	Tool      string
	ExitCode  int
	Stdout    []byte
	Stderr    []byte
	Truncated bool
	Duration  time.Duration
}
