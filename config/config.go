package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// SystemConfig is the machine-level configuration stored in
// ~/.config/gassist/settings.toml.
type SystemConfig struct {
	DataDirectory string `toml:"data_directory"`
}

// ProviderConfig selects the LLM backend for a session.
type ProviderConfig struct {
	ID      string `toml:"id"`
	Model   string `toml:"model,omitempty"`
	BaseURL string `toml:"base_url,omitempty"`
}

// ChatConfig tunes the agent loop.
type ChatConfig struct {
	SystemPrompt          string `toml:"system_prompt,omitempty"`
	MaxTurns              int    `toml:"max_turns"`
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
}

// ToolsConfig tunes local tool execution.
type ToolsConfig struct {
	ShellTimeoutSeconds int `toml:"shell_timeout_seconds"`
}

// UserConfig is the per-user configuration stored in <data_dir>/config.toml.
type UserConfig struct {
	Provider ProviderConfig `toml:"provider"`
	Chat     ChatConfig     `toml:"chat"`
	Tools    ToolsConfig    `toml:"tools"`
}

// Config is the merged runtime configuration.
type Config struct {
	DataDirectory         string
	Provider              string
	Model                 string
	BaseURL               string
	SystemPrompt          string
	MaxTurns              int
	RequestTimeoutSeconds int
	ShellTimeoutSeconds   int
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

func (c *Config) ShellTimeout() time.Duration {
	return time.Duration(c.ShellTimeoutSeconds) * time.Second
}

func (c *Config) applyEnvOverrides() {
	if id := os.Getenv("GASSIST_PROVIDER"); id != "" {
		c.Provider = id
	}
	if model := os.Getenv("GASSIST_MODEL"); model != "" {
		c.Model = model
	}
	if baseURL := os.Getenv("GASSIST_BASE_URL"); baseURL != "" {
		c.BaseURL = baseURL
	}
}

func CheckDebug() bool {
	debug := os.Getenv("GASSIST_DEBUG")
	return debug == "true" || debug == "1"
}

// InitDebugLog enables file-backed debug logging when GASSIST_DEBUG is set.
func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	// 0600 - the log may contain prompts and command output
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (GASSIST_DEBUG=%s) ===", os.Getenv("GASSIST_DEBUG"))
}

// Load reads the system and user configuration, creating default files on
// first run, and applies GASSIST_* environment overrides.
func Load() (*Config, error) {
	sysCfg, err := LoadSystemConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataDirectory: sysCfg.DataDirectory,
	}
	applyUserDefaults(cfg, DefaultUserConfig())

	// The data-dir override must land before the user config is resolved,
	// or config.toml would be read from the un-overridden directory.
	if dataDir := os.Getenv("GASSIST_DATA_DIR"); dataDir != "" {
		cfg.DataDirectory = dataDir
	}

	dataDir := cfg.DataDir()
	if err := EnsureDir(dataDir); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	userCfg, err := LoadUserConfig(dataDir)
	if err != nil {
		return nil, err
	}
	applyUserDefaults(cfg, userCfg)

	cfg.applyEnvOverrides()

	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = DefaultUserConfig().Chat.MaxTurns
	}
	if cfg.ShellTimeoutSeconds <= 0 {
		cfg.ShellTimeoutSeconds = DefaultUserConfig().Tools.ShellTimeoutSeconds
	}

	return cfg, nil
}

// applyUserDefaults copies the non-empty fields of a UserConfig onto cfg.
func applyUserDefaults(cfg *Config, user *UserConfig) {
	if user == nil {
		return
	}
	if user.Provider.ID != "" {
		cfg.Provider = user.Provider.ID
	}
	if user.Provider.Model != "" {
		cfg.Model = user.Provider.Model
	}
	if user.Provider.BaseURL != "" {
		cfg.BaseURL = user.Provider.BaseURL
	}
	if user.Chat.SystemPrompt != "" {
		cfg.SystemPrompt = user.Chat.SystemPrompt
	}
	if user.Chat.MaxTurns > 0 {
		cfg.MaxTurns = user.Chat.MaxTurns
	}
	if user.Chat.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeoutSeconds = user.Chat.RequestTimeoutSeconds
	}
	if user.Tools.ShellTimeoutSeconds > 0 {
		cfg.ShellTimeoutSeconds = user.Tools.ShellTimeoutSeconds
	}
}
