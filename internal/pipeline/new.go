package pipeline

import (
	"github.com/tranminhhai/audio-notes/internal/logger"
	"github.com/tranminhhai/audio-notes/internal/notify"
	"github.com/tranminhhai/audio-notes/internal/textproc"
	"github.com/tranminhhai/audio-notes/internal/transcriber"
)

type implPipeline struct {
	transcriber transcriber.Transcriber
	processor   textproc.TextProcessor
	poster      notify.Poster // nil when no webhook is configured
	logger      logger.Logger
}

// New creates a Pipeline. poster may be nil, in which case the posting step
// is skipped with an informational message instead of failing.
func New(tr transcriber.Transcriber, tp textproc.TextProcessor, poster notify.Poster, log logger.Logger) Pipeline {
	return &implPipeline{
		transcriber: tr,
		processor:   tp,
		poster:      poster,
		logger:      log,
	}
}
