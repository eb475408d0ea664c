package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Credential resolution order: GASSIST_API_KEY, the provider's own
// environment variable, then the plain-text credentials file in the data
// directory. Local providers (ollama) never need a key.

// providerEnvVars maps provider IDs to their conventional API key variable.
var providerEnvVars = map[string]string{
	"anthropic":  "ANTHROPIC_API_KEY",
	"openai":     "OPENAI_API_KEY",
	"openrouter": "OPENROUTER_API_KEY",
}

// RequiresAPIKey reports whether a provider cannot be used without a key.
func RequiresAPIKey(providerID string) bool {
	_, ok := providerEnvVars[providerID]
	return ok
}

// APIKeyEnvVar returns the provider-specific environment variable name, or
// "" for providers that take no key.
func APIKeyEnvVar(providerID string) string {
	return providerEnvVars[providerID]
}

// APIKeyFor resolves the API key for a provider.
func APIKeyFor(providerID, dataDir string) string {
	if key := os.Getenv("GASSIST_API_KEY"); key != "" {
		return key
	}
	if envVar := providerEnvVars[providerID]; envVar != "" {
		if key := os.Getenv(envVar); key != "" {
			return key
		}
	}

	creds, err := LoadCredentials(dataDir)
	if err != nil {
		if DebugLog != nil {
			DebugLog.Printf("[Config] failed to load credentials file: %v", err)
		}
		return ""
	}
	return creds[providerID]
}

func credentialsPath(dataDir string) string {
	return filepath.Join(dataDir, "credentials.toml")
}

// LoadCredentials reads the plain-text credentials file. A missing file is
// not an error; it yields an empty map.
func LoadCredentials(dataDir string) (map[string]string, error) {
	path := credentialsPath(dataDir)

	if !FileExists(path) {
		return make(map[string]string), nil
	}

	type credentialsFile struct {
		Credentials map[string]string `toml:"credentials"`
	}

	var cf credentialsFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}

	if cf.Credentials == nil {
		cf.Credentials = make(map[string]string)
	}
	return cf.Credentials, nil
}

// SaveCredentials writes the credentials file with 0600 permissions.
func SaveCredentials(dataDir string, creds map[string]string) error {
	path := credentialsPath(dataDir)

	type credentialsFile struct {
		Credentials map[string]string `toml:"credentials"`
	}

	cf := credentialsFile{Credentials: creds}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create credentials file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cf); err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	return nil
}
