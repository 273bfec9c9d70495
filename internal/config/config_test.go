package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
					ModelsDir:  "models",
					Model:      "base",
				},
				LLM: LLMConfig{
					Provider: "ollama",
					Model:    "llama2",
				},
			},
			wantErr: false,
		},
		{
			name: "missing binary path",
			config: Config{
				Whisper: WhisperConfig{
					ModelsDir: "models",
				},
			},
			wantErr: true,
		},
		{
			name: "missing models dir",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
				},
			},
			wantErr: true,
		},
		{
			name: "unknown llm provider",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
					ModelsDir:  "models",
				},
				LLM: LLMConfig{
					Provider: "openai",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			BinaryPath: "./whisper-cli",
			ModelsDir:  "models",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.Model != "base" {
		t.Errorf("Whisper.Model = %v, want base", cfg.Whisper.Model)
	}
	if cfg.LLM.Provider != "ollama" {
		t.Errorf("LLM.Provider = %v, want ollama", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "llama2" {
		t.Errorf("LLM.Model = %v, want llama2", cfg.LLM.Model)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  binary_path: "./whisper-cli"
  models_dir: "models"
  model: "small"
  language: "en"

llm:
  provider: "ollama"
  model: "mistral"
  host: "http://localhost:11434"

teams:
  webhook_url: "https://example.webhook.office.com/hook"

paths:
  inbox: "data/inbox"
  output: "data/output"

logging:
  level: "debug"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.Model != "small" {
		t.Errorf("Whisper.Model = %v, want small", cfg.Whisper.Model)
	}
	if cfg.LLM.Model != "mistral" {
		t.Errorf("LLM.Model = %v, want mistral", cfg.LLM.Model)
	}
	if cfg.Teams.WebhookURL != "https://example.webhook.office.com/hook" {
		t.Errorf("Teams.WebhookURL = %v", cfg.Teams.WebhookURL)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  binary_path: "./whisper-cli"
  models_dir: "models"

llm:
  model: "llama2"
`
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("OLLAMA_HOST", "http://ollama.local:11434")
	t.Setenv("MS_TEAMS_WEBHOOK_URL", "https://hooks.example.com/abc")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LLM.Model != "mistral" {
		t.Errorf("LLM.Model = %v, want env override mistral", cfg.LLM.Model)
	}
	if cfg.LLM.Host != "http://ollama.local:11434" {
		t.Errorf("LLM.Host = %v", cfg.LLM.Host)
	}
	if cfg.Teams.WebhookURL != "https://hooks.example.com/abc" {
		t.Errorf("Teams.WebhookURL = %v", cfg.Teams.WebhookURL)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
