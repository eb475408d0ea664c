// Package ui is the terminal front end: a line-oriented chat shell plus
// Markdown rendering of model answers.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"gassist/agent"
	"gassist/config"
)

// Banner is printed when the interactive shell starts.
const Banner = "Welcome to G-Assist! Type 'exit' or 'quit' to end the chat."

// Farewell is printed exactly once when the user ends the chat.
const Farewell = "Thanks for coming around. Bye!"

// Repl is the interactive read-eval-print shell around a chat session.
type Repl struct {
	session *agent.Session
	in      io.Reader
	out     io.Writer
}

// NewRepl creates a shell bound to the given session and streams.
func NewRepl(session *agent.Session, in io.Reader, out io.Writer) *Repl {
	return &Repl{session: session, in: in, out: out}
}

// IsExitCommand reports whether a line of input, trimmed and lowercased,
// is an exact exit command.
func IsExitCommand(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	return false
}

// Run reads prompts until EOF or an exit command. Per-turn failures are
// reported and the shell continues; only the exit command (or EOF) ends
// the loop. The returned error is always nil today but kept for the
// caller's contract.
func (r *Repl) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, speakerStyle.Render(Banner))

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, promptStyle.Render("You: "))
		if !scanner.Scan() {
			// EOF or read failure: leave quietly, same as an exit command.
			fmt.Fprintln(r.out)
			r.sayFarewell()
			return nil
		}

		line := scanner.Text()
		if IsExitCommand(line) {
			r.sayFarewell()
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		r.respond(ctx, line)
	}
}

// respond runs one agent round and prints the outcome.
func (r *Repl) respond(ctx context.Context, prompt string) {
	text, err := r.session.Send(ctx, prompt)

	fmt.Fprint(r.out, speakerStyle.Render("G-Assist: "))

	switch {
	case err != nil:
		fmt.Fprintln(r.out, RenderTurnFailure(err))
	case text == "":
		fmt.Fprintln(r.out, warnStyle.Render(NoTextWarning))
	default:
		fmt.Fprintln(r.out, RenderMarkdown(text))
	}

	if err != nil && config.DebugLog != nil {
		config.DebugLog.Printf("[REPL] turn failed: %v", err)
	}
}

func (r *Repl) sayFarewell() {
	fmt.Fprint(r.out, speakerStyle.Render("G-Assist: "))
	fmt.Fprintln(r.out, farewellStyle.Render(Farewell))
}
