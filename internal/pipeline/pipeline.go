package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tranminhhai/audio-notes/internal/audio"
	"github.com/tranminhhai/audio-notes/internal/textproc"
)

// Run drives one audio file through the pipeline. Every stage failure is
// converted into the Result; Run never panics outward and never aborts the
// hosting process.
func (p *implPipeline) Run(ctx context.Context, audioPath string) (res *Result) {
	startTime := time.Now()
	res = &Result{State: StateIdle, AudioPath: audioPath}

	defer func() {
		if r := recover(); r != nil {
			res.fail(res.currentStage(), fmt.Errorf("unexpected fault: %v", r))
			p.logger.Error(ctx, "Pipeline fault on %s: %v", audioPath, r)
		}
	}()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting audio processing: %s", audioPath)
	p.logger.Info(ctx, "========================================")

	// Stage 1: validate the audio handle
	h, err := audio.Open(audioPath)
	if err != nil {
		res.fail(StageAudio, err)
		p.logger.Error(ctx, "Audio stage failed: %v", err)
		return res
	}
	res.Audio = h
	res.State = StateHasAudio
	if h.SampleRate > 0 {
		p.logger.Debug(ctx, "Audio: %d Hz, %d channel(s)", h.SampleRate, h.Channels)
	}

	// Stage 2: transcribe; empty text halts the run
	if err := p.transcriber.Ready(); err != nil {
		res.fail(StageTranscription, err)
		p.logger.Error(ctx, "Transcriber not ready: %v", err)
		return res
	}

	transcript, err := p.transcriber.Transcribe(ctx, h)
	if err != nil {
		res.fail(StageTranscription, err)
		p.logger.Error(ctx, "Transcription failed: %v", err)
		return res
	}
	res.Transcript = strings.TrimSpace(transcript)
	if res.Transcript == "" {
		res.fail(StageTranscription, fmt.Errorf("transcript is empty for %s", audioPath))
		return res
	}
	res.State = StateTranscribed

	// Stage 3: summary and action items are independent; an error in one
	// does not block the other.
	res.Summary, res.SummaryErr = p.processor.Summarize(ctx, res.Transcript)
	if res.SummaryErr != nil {
		p.logger.Warn(ctx, "Summarization issue: %v", res.SummaryErr)
	}

	res.ActionItems, res.ActionItemsErr = p.processor.ExtractActionItems(ctx, res.Transcript)
	if res.ActionItemsErr != nil {
		p.logger.Warn(ctx, "Action item extraction issue: %v", res.ActionItemsErr)
	}

	if res.SummaryErr != nil && res.ActionItemsErr != nil {
		res.fail(StageProcessing, fmt.Errorf("text processing produced no output: %v", res.ActionItemsErr))
		return res
	}
	res.State = StateProcessed

	p.logger.Info(ctx, "Processing completed in %s", time.Since(startTime).Round(time.Millisecond))
	return res
}

// ShouldPost gates the posting step: action items must be present, not an
// error and not the "no items" sentinel, and a webhook must be configured.
func (p *implPipeline) ShouldPost(res *Result) bool {
	if res == nil || res.ActionItemsErr != nil {
		return false
	}
	if strings.TrimSpace(res.ActionItems) == "" {
		return false
	}
	if textproc.IsNoActionItems(res.ActionItems) {
		return false
	}
	return p.poster != nil
}

// PostActionItems delivers the action items to the webhook. Callers trigger
// it explicitly; Run never posts on its own.
func (p *implPipeline) PostActionItems(ctx context.Context, res *Result) (bool, error) {
	if p.poster == nil {
		p.logger.Info(ctx, "No webhook URL configured, skipping Teams post")
		return false, nil
	}
	if !p.ShouldPost(res) {
		if res != nil && textproc.IsNoActionItems(res.ActionItems) {
			p.logger.Info(ctx, "No specific action items were generated, nothing to post")
		} else {
			p.logger.Info(ctx, "No postable action items, skipping Teams post")
		}
		return false, nil
	}

	title := "Action Items from: " + filepath.Base(res.AudioPath)
	ok, err := p.poster.Post(ctx, title, res.ActionItems)
	if err != nil {
		res.fail(StagePosting, err)
		p.logger.Error(ctx, "Teams post failed: %v", err)
		return false, err
	}

	res.Posted = ok
	if ok {
		res.State = StatePosted
	}
	return ok, nil
}

// currentStage maps the run state to the stage that was in flight, for
// panic conversion.
func (r *Result) currentStage() Stage {
	switch r.State {
	case StateIdle:
		return StageAudio
	case StateHasAudio:
		return StageTranscription
	case StateTranscribed:
		return StageProcessing
	default:
		return StagePosting
	}
}
