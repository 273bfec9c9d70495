package pipeline

import (
	"github.com/tranminhhai/audio-notes/internal/audio"
)

// State tracks how far a pipeline run has progressed.
type State string

const (
	StateIdle        State = "idle"
	StateHasAudio    State = "has_audio"
	StateTranscribed State = "transcribed"
	StateProcessed   State = "processed"
	StatePosted      State = "posted"
	StateFailed      State = "failed"
)

// Stage names the pipeline step a failure belongs to.
type Stage string

const (
	StageAudio         Stage = "audio"
	StageTranscription Stage = "transcription"
	StageProcessing    Stage = "processing"
	StagePosting       Stage = "posting"
)

// Result is the caller-owned session record for one pipeline run. A fresh
// Result is allocated per run; nothing carries over between invocations.
//
// Summary and ActionItems each pair a value with their own error because a
// failure in one does not block the other.
type Result struct {
	State       State
	FailedStage Stage
	Err         error

	AudioPath string
	Audio     *audio.Handle

	Transcript string

	Summary    string
	SummaryErr error

	ActionItems    string
	ActionItemsErr error

	Posted bool
}

// Failed reports whether the run stopped at a stage-fatal error.
func (r *Result) Failed() bool {
	return r.State == StateFailed
}

func (r *Result) fail(stage Stage, err error) {
	r.State = StateFailed
	r.FailedStage = stage
	r.Err = err
}
