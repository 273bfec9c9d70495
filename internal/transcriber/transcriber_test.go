package transcriber

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tranminhhai/audio-notes/internal/audio"
	"github.com/tranminhhai/audio-notes/internal/config"
	"github.com/tranminhhai/audio-notes/internal/logger"
)

// fakeExecutor simulates the whisper CLI by writing a transcript file the
// way whisper-cli does with -otxt.
type fakeExecutor struct {
	transcript string
	execErr    error
	availErr   error
	calls      int
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls++
	if f.execErr != nil {
		return "", f.execErr
	}

	var outputPrefix string
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "--output-file" {
			outputPrefix = args[i+1]
		}
	}
	if outputPrefix == "" {
		return "", errors.New("missing --output-file argument")
	}
	if err := os.WriteFile(outputPrefix+".txt", []byte(f.transcript), 0644); err != nil {
		return "", err
	}
	return "", nil
}

func (f *fakeExecutor) Available(name string) error {
	return f.availErr
}

func testLogger() logger.Logger {
	return logger.NewWithOutput("error", "text", io.Discard)
}

// newTestSetup creates a models dir with a dummy model file and an audio
// file, returning a ready config.
func newTestSetup(t *testing.T) (config.WhisperConfig, string) {
	t.Helper()
	dir := t.TempDir()

	modelsDir := filepath.Join(dir, "models")
	if err := os.MkdirAll(modelsDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(modelsDir, "ggml-base.bin"), []byte("weights"), 0644); err != nil {
		t.Fatal(err)
	}

	audioPath := filepath.Join(dir, "meeting.wav")
	if err := os.WriteFile(audioPath, []byte("fake wav data"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.WhisperConfig{
		BinaryPath: "whisper-cli",
		ModelsDir:  modelsDir,
		Model:      "base",
		Language:   "en",
		Threads:    4,
	}
	return cfg, audioPath
}

func TestTranscribe(t *testing.T) {
	cfg, audioPath := newTestSetup(t)
	fake := &fakeExecutor{transcript: "  Mike will fix the login bug by Friday.  \n"}

	tr := New(cfg, fake, testLogger())
	if err := tr.Ready(); err != nil {
		t.Fatalf("Ready() error = %v", err)
	}

	text, err := tr.Transcribe(context.Background(), &audio.Handle{Path: audioPath})
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "Mike will fix the login bug by Friday." {
		t.Errorf("Transcribe() = %q, want trimmed transcript", text)
	}
}

func TestTranscribeUnknownModelTier(t *testing.T) {
	cfg, audioPath := newTestSetup(t)
	cfg.Model = "gigantic"

	tr := New(cfg, &fakeExecutor{}, testLogger())
	if err := tr.Ready(); !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("Ready() error = %v, want ErrModelUnavailable", err)
	}

	_, err := tr.Transcribe(context.Background(), &audio.Handle{Path: audioPath})
	if !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("Transcribe() error = %v, want ErrModelUnavailable", err)
	}
}

func TestTranscribeMissingModelFile(t *testing.T) {
	cfg, _ := newTestSetup(t)
	cfg.Model = "large" // no ggml-large.bin in the test models dir

	tr := New(cfg, &fakeExecutor{}, testLogger())
	if err := tr.Ready(); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("Ready() error = %v, want ErrModelUnavailable", err)
	}
}

func TestTranscribeMissingBinary(t *testing.T) {
	cfg, _ := newTestSetup(t)
	fake := &fakeExecutor{availErr: errors.New("binary 'whisper-cli' not found")}

	tr := New(cfg, fake, testLogger())
	err := tr.Ready()
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("Ready() error = %v, want ErrModelUnavailable", err)
	}
	if !strings.Contains(err.Error(), "install whisper.cpp") {
		t.Errorf("Ready() error should carry install hint, got: %v", err)
	}
}

func TestTranscribeFileNotFound(t *testing.T) {
	cfg, _ := newTestSetup(t)
	fake := &fakeExecutor{transcript: "whatever"}
	tr := New(cfg, fake, testLogger())

	missing := filepath.Join(t.TempDir(), "missing.wav")
	_, err := tr.Transcribe(context.Background(), &audio.Handle{Path: missing})
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("Transcribe() error = %v, want ErrFileNotFound", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error should contain the audio path, got: %v", err)
	}
	if fake.calls != 0 {
		t.Errorf("executor should not run for a missing file, got %d calls", fake.calls)
	}
}

func TestTranscribeToolchainMissing(t *testing.T) {
	cfg, audioPath := newTestSetup(t)
	fake := &fakeExecutor{
		execErr: fmt.Errorf("command 'whisper-cli' failed: %w", exec.ErrNotFound),
	}
	tr := New(cfg, fake, testLogger())

	_, err := tr.Transcribe(context.Background(), &audio.Handle{Path: audioPath})
	if !errors.Is(err, ErrTranscription) {
		t.Fatalf("Transcribe() error = %v, want ErrTranscription", err)
	}
	if !strings.Contains(err.Error(), "install whisper.cpp and ffmpeg") {
		t.Errorf("error should carry a remediation hint, got: %v", err)
	}
}

func TestTranscribeEmptyOutput(t *testing.T) {
	cfg, audioPath := newTestSetup(t)
	fake := &fakeExecutor{transcript: "   \n  "}
	tr := New(cfg, fake, testLogger())

	_, err := tr.Transcribe(context.Background(), &audio.Handle{Path: audioPath})
	if !errors.Is(err, ErrTranscription) {
		t.Errorf("Transcribe() error = %v, want ErrTranscription for empty output", err)
	}
}
