package ui

import (
	"errors"
	"fmt"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"

	"gassist/agent"
	"gassist/tools"
)

// renderWidth is the wrap column for terminal Markdown output.
const renderWidth = 100

// NoTextWarning is shown when the model finishes without any text content.
const NoTextWarning = "The model finished its work but did not provide a final text response."

// RenderMarkdown renders model output as ANSI-styled terminal text.
func RenderMarkdown(text string) string {
	rendered := markdown.Render(text, renderWidth, 0)
	return strings.TrimRight(string(rendered), "\n")
}

// RenderCommsError renders a provider/network failure for the user with
// the underlying detail attached.
func RenderCommsError(err error) string {
	return RenderMarkdown(fmt.Sprintf(
		"**Error:** An error occurred while communicating with G-Assist.\n\n*Details: %v*", err))
}

// RenderTurnFailure renders a failed agent round. Loop-fatal conditions
// (an unknown tool, the iteration cap) are local, so they are reported as
// abandoned requests rather than communication failures.
func RenderTurnFailure(err error) string {
	if errors.Is(err, tools.ErrToolNotFound) || errors.Is(err, agent.ErrMaxTurns) {
		return errorStyle.Render(fmt.Sprintf("Error: %v. This request was abandoned.", err))
	}
	return RenderCommsError(err)
}
