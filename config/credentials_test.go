package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRequiresAPIKey(t *testing.T) {
	tests := []struct {
		provider string
		want     bool
	}{
		{provider: "anthropic", want: true},
		{provider: "openai", want: true},
		{provider: "openrouter", want: true},
		{provider: "ollama", want: false},
		{provider: "unknown", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			if got := RequiresAPIKey(tt.provider); got != tt.want {
				t.Errorf("RequiresAPIKey(%q) = %v, want %v", tt.provider, got, tt.want)
			}
		})
	}
}

func TestAPIKeyResolutionOrder(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("GASSIST_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	if err := SaveCredentials(dataDir, map[string]string{"anthropic": "from-file"}); err != nil {
		t.Fatalf("save credentials: %v", err)
	}

	if got := APIKeyFor("anthropic", dataDir); got != "from-file" {
		t.Errorf("file fallback = %q, want from-file", got)
	}

	t.Setenv("ANTHROPIC_API_KEY", "from-provider-env")
	if got := APIKeyFor("anthropic", dataDir); got != "from-provider-env" {
		t.Errorf("provider env = %q, want from-provider-env", got)
	}

	t.Setenv("GASSIST_API_KEY", "from-override")
	if got := APIKeyFor("anthropic", dataDir); got != "from-override" {
		t.Errorf("override env = %q, want from-override", got)
	}
}

func TestAPIKeyForMissing(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("GASSIST_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	if got := APIKeyFor("openai", dataDir); got != "" {
		t.Errorf("expected empty key, got %q", got)
	}
}

func TestLoadCredentialsMissingFile(t *testing.T) {
	creds, err := LoadCredentials(t.TempDir())
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(creds) != 0 {
		t.Errorf("expected empty credentials, got %v", creds)
	}
}

func TestSaveAndLoadCredentials(t *testing.T) {
	dataDir := t.TempDir()

	want := map[string]string{
		"anthropic": "sk-ant-test",
		"openai":    "sk-test",
	}
	if err := SaveCredentials(dataDir, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(filepath.Join(dataDir, "credentials.toml"))
	if err != nil {
		t.Fatalf("credentials file not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("credentials mode = %o, want 0600", info.Mode().Perm())
	}

	got, err := LoadCredentials(dataDir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for provider, key := range want {
		if got[provider] != key {
			t.Errorf("credentials[%q] = %q, want %q", provider, got[provider], key)
		}
	}
}

func TestLoadCredentialsMalformed(t *testing.T) {
	dataDir := t.TempDir()
	path := filepath.Join(dataDir, "credentials.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCredentials(dataDir); err == nil {
		t.Error("expected parse error for malformed file")
	}
}
