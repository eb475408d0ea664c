package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gassist/agent"
	"gassist/config"
	"gassist/model"
	"gassist/provider"
	"gassist/tools"
	"gassist/ui"
)

const (
	Version = "v0.01.00"
	License = "Apache-2.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	config.InitDebugLog(cfg.DataDir())

	// Credential check happens before any provider traffic.
	apiKey := config.APIKeyFor(cfg.Provider, cfg.DataDir())
	if config.RequiresAPIKey(cfg.Provider) && apiKey == "" {
		fmt.Fprintf(os.Stderr,
			"Error: no API key found for provider %q.\nSet %s (or GASSIST_API_KEY), or add it to %s/credentials.toml.\n",
			cfg.Provider, config.APIKeyEnvVar(cfg.Provider), cfg.DataDir())
		os.Exit(1)
	}

	p, err := provider.NewProvider(provider.Config{
		Type:    provider.MapProviderIDToType(cfg.Provider),
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		APIKey:  apiKey,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize provider: %v\n", err)
		os.Exit(1)
	}

	registry := tools.NewRegistry(
		tools.NewShellTool(cfg.ShellTimeout()),
	)

	systemPrompt := cfg.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = config.DefaultSystemPrompt
	}

	loop := agent.NewLoop(p, registry,
		agent.WithSystemPrompt(systemPrompt),
		agent.WithMaxTurns(cfg.MaxTurns),
		agent.WithRequestTimeout(cfg.RequestTimeout()),
	)

	ctx := context.Background()

	checkConnectivity(ctx, p)

	// One positional argument: a single stateless round, then exit.
	if prompt := strings.TrimSpace(strings.Join(os.Args[1:], " ")); prompt != "" {
		runOnce(ctx, loop, prompt)
		return
	}

	session := agent.NewSession(loop)
	if config.DebugLog != nil {
		config.DebugLog.Printf("[Main] starting chat session %s (provider=%s model=%s)",
			session.ID(), cfg.Provider, p.GetModel())
	}

	repl := ui.NewRepl(session, os.Stdin, os.Stdout)
	if err := repl.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// checkConnectivity pings the provider at startup when debug logging is
// on. The result is advisory: a failed ping is logged and warned about,
// never fatal, since the provider may still serve the actual request.
func checkConnectivity(ctx context.Context, p model.Provider) {
	if !config.Debug {
		return
	}

	if err := p.Ping(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: provider connectivity check failed: %v\n", err)
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Main] ping failed (model=%s): %v", p.GetModel(), err)
		}
		return
	}
	if config.DebugLog != nil {
		config.DebugLog.Printf("[Main] ping ok (model=%s)", p.GetModel())
	}
}

// runOnce performs the single-shot flavor: one prompt, one answer, exit.
// Remote and tool-resolution failures abort with a nonzero status.
func runOnce(ctx context.Context, loop *agent.Loop, prompt string) {
	text, err := loop.Run(ctx, prompt)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderTurnFailure(err))
		os.Exit(1)
	}

	if text == "" {
		fmt.Println("The model did not provide a final text response.")
		return
	}
	fmt.Println(ui.RenderMarkdown(text))
}
