package config

// DefaultSystemPrompt is the assistant persona sent as the system turn of
// every new conversation unless the user overrides it in config.toml.
const DefaultSystemPrompt = "You are G-Assist, a highly capable agent, code assistant, and command-line tool designed to support software developers. " +
	"Your core responsibilities include: explaining and breaking down complex codebases, resolving terminal errors and command-line issues, " +
	"performing developer-oriented tasks via available tools, and assisting interactively as a programming agent. " +
	"You operate primarily in a technical capacity, helping users understand code behavior, debug problems, and automate workflows. " +
	"You have access to tools and must decide whether to invoke a tool, and which command to execute when appropriate. " +
	"After receiving tool output, you MUST always interpret and use it to produce a clear, human-readable response that directly addresses the user's question or problem. " +
	"NEVER stop at tool output alone - ALWAYS follow up with a final textual explanation or summary. " +
	"Once you've completed a task or answered a question, offer to provide further clarification or a deeper explanation."

func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		DataDirectory: "~/.local/share/gassist",
	}
}

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		Provider: ProviderConfig{
			ID: "anthropic",
		},
		Chat: ChatConfig{
			SystemPrompt:          DefaultSystemPrompt,
			MaxTurns:              25,
			RequestTimeoutSeconds: 120,
		},
		Tools: ToolsConfig{
			ShellTimeoutSeconds: 30,
		},
	}
}

func GenerateSystemConfigTemplate() string {
	return `# G-Assist System Configuration
# Location: ~/.config/gassist/settings.toml
# This file uses TOML format: https://toml.io

# Directory where user config and credentials are stored
data_directory = "~/.local/share/gassist"
`
}

func GenerateUserConfigTemplate() string {
	return `# G-Assist User Configuration
# Location: <data_directory>/config.toml
# This file uses TOML format: https://toml.io

[provider]
# Provider backend: "anthropic", "openai", "openrouter" or "ollama"
id = "anthropic"

# Model override (optional, each provider has a sensible default)
model = ""

# API base URL override (optional)
base_url = ""

[chat]
# System prompt override (optional, leave empty for the built-in persona)
system_prompt = ""

# Safety cap on model/tool round-trips per user prompt
max_turns = 25

# Timeout for a single model request, in seconds
request_timeout_seconds = 120

[tools]
# Hard wall-clock limit for one shell command, in seconds
shell_timeout_seconds = 30
`
}
