package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"gassist/config"
)

// ShellToolName is the action name advertised to the model.
const ShellToolName = "execute_shell_command"

// DefaultShellTimeout bounds one command's wall-clock run time.
const DefaultShellTimeout = 30 * time.Second

// ShellTool executes a command line through the host shell, one child
// process per invocation, fully waited on before returning.
type ShellTool struct {
	timeout time.Duration
}

// NewShellTool creates a shell tool with the given timeout. A zero or
// negative timeout selects DefaultShellTimeout.
func NewShellTool(timeout time.Duration) *ShellTool {
	if timeout <= 0 {
		timeout = DefaultShellTimeout
	}
	return &ShellTool{timeout: timeout}
}

func (s *ShellTool) Name() string {
	return ShellToolName
}

func (s *ShellTool) Descriptor() mcptypes.Tool {
	return mcptypes.Tool{
		Name:        ShellToolName,
		Description: "Executes a command in the system's shell and returns the output.",
		InputSchema: mcptypes.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"command": map[string]any{
					"type":        "string",
					"description": "The command to execute.",
				},
			},
			Required: []string{"command"},
		},
	}
}

// Invoke runs the command and reports the outcome as text:
//   - exit 0: trimmed stdout
//   - nonzero exit: "Error: " + trimmed stdout and stderr combined
//   - timeout: "Error: Command timed out after N seconds." with the child
//     process killed
func (s *ShellTool) Invoke(ctx context.Context, args map[string]any) string {
	command, _ := args["command"].(string)
	if strings.TrimSpace(command) == "" {
		return "Error: No command provided."
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[ShellTool] executing: %s", command)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Force Run to return shortly after the kill even if a grandchild
	// process keeps the output pipes open.
	cmd.WaitDelay = 5 * time.Second

	err := cmd.Run()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Sprintf("Error: Command timed out after %d seconds.", int(s.timeout.Seconds()))
	}

	output := strings.TrimSpace(stdout.String())
	errOutput := strings.TrimSpace(stderr.String())

	if err == nil {
		return output
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		// The command never ran (spawn failure, cancelled context).
		return fmt.Sprintf("Error: %v", err)
	}

	combined := strings.TrimSpace(output + "\n" + errOutput)
	if combined == "" {
		return "Error: Command failed with no output."
	}
	return "Error: " + combined
}
