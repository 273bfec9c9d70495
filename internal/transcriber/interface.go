package transcriber

import (
	"context"

	"github.com/tranminhhai/audio-notes/internal/audio"
)

// Transcriber converts an audio file into plain text.
type Transcriber interface {
	// Transcribe runs speech recognition over the referenced audio file and
	// returns the flattened transcript text.
	Transcribe(ctx context.Context, h *audio.Handle) (string, error)

	// Ready reports whether the whisper binary and model were resolved at
	// construction time. A non-nil result means Transcribe will fail with
	// ErrModelUnavailable.
	Ready() error
}
