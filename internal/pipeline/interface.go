package pipeline

import "context"

// Pipeline drives one audio file through transcription, text processing and
// the optional notification post.
type Pipeline interface {
	// Run processes the audio file and returns a fresh Result. Posting is
	// not part of Run; it must be triggered explicitly through
	// PostActionItems.
	Run(ctx context.Context, audioPath string) *Result

	// ShouldPost reports whether the run produced postable action items and
	// a webhook is configured.
	ShouldPost(res *Result) bool

	// PostActionItems delivers the run's action items to the configured
	// webhook. It is a no-op returning (false, nil) when ShouldPost is
	// false.
	PostActionItems(ctx context.Context, res *Result) (bool, error)
}
