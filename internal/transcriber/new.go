package transcriber

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tranminhhai/audio-notes/internal/config"
	"github.com/tranminhhai/audio-notes/internal/logger"
	"github.com/tranminhhai/audio-notes/pkg/executor"
)

// modelTiers are the whisper.cpp model sizes we know how to resolve,
// smallest to largest.
var modelTiers = []string{"tiny", "base", "small", "medium", "large"}

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger

	modelPath string
	loadErr   error
}

// New creates a Transcriber bound to the configured whisper binary and model
// tier. Resolution failures are recorded rather than returned so the caller
// can keep running and surface the diagnostic when transcription is actually
// attempted.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	t := &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}

	t.modelPath, t.loadErr = t.resolveModel()
	return t
}

func (t *implTranscriber) resolveModel() (string, error) {
	if !isKnownTier(t.cfg.Model) {
		return "", fmt.Errorf("%w: unknown model size %q (expected one of %v)",
			ErrModelUnavailable, t.cfg.Model, modelTiers)
	}

	modelPath := filepath.Join(t.cfg.ModelsDir, "ggml-"+t.cfg.Model+".bin")
	if _, err := os.Stat(modelPath); err != nil {
		return "", fmt.Errorf("%w: model file %s: %v", ErrModelUnavailable, modelPath, err)
	}

	if err := t.executor.Available(t.cfg.BinaryPath); err != nil {
		return "", fmt.Errorf("%w: %v (install whisper.cpp and make sure the binary path is correct)",
			ErrModelUnavailable, err)
	}

	return modelPath, nil
}

func (t *implTranscriber) Ready() error {
	return t.loadErr
}

func isKnownTier(name string) bool {
	for _, tier := range modelTiers {
		if name == tier {
			return true
		}
	}
	return false
}
