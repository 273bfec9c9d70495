package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tranminhhai/audio-notes/internal/audio"
)

var (
	// ErrModelUnavailable means the whisper binary or model file could not
	// be resolved at construction time.
	ErrModelUnavailable = errors.New("whisper model unavailable")

	// ErrFileNotFound means the audio file does not exist on disk.
	ErrFileNotFound = errors.New("audio file not found")

	// ErrTranscription covers decode and runtime failures during the
	// whisper run itself.
	ErrTranscription = errors.New("transcription failed")
)

// Transcribe runs the whisper.cpp CLI over the audio file and returns the
// recognized text. The file must exist on disk; the model is the one
// resolved at construction time.
func (t *implTranscriber) Transcribe(ctx context.Context, h *audio.Handle) (string, error) {
	if t.loadErr != nil {
		return "", t.loadErr
	}

	if _, err := os.Stat(h.Path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, h.Path)
	}

	// whisper-cli appends .txt to the output prefix
	outputPrefix := strings.TrimSuffix(h.Path, filepath.Ext(h.Path))
	txtPath := outputPrefix + ".txt"

	t.logger.Info(ctx, "Transcribing %s with whisper model '%s' (%d threads)",
		h.Path, t.cfg.Model, t.cfg.Threads)

	args := []string{
		"-m", t.modelPath,
		"-f", h.Path,
		"-otxt",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %v (install whisper.cpp and ffmpeg, and check your PATH)",
				ErrTranscription, err)
		}
		return "", fmt.Errorf("%w: %v", ErrTranscription, err)
	}

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("%w: read transcript output: %v", ErrTranscription, err)
	}
	t.cleanupTempFile(ctx, txtPath)

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("%w: no speech recognized in %s", ErrTranscription, h.Path)
	}

	t.logger.Info(ctx, "Transcription completed: %d characters", len(text))
	return text, nil
}

// cleanupTempFile removes the whisper output file, logs warning if fails
func (t *implTranscriber) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		t.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
