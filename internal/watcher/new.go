package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/tranminhhai/audio-notes/internal/logger"
)

// New creates a Watcher for the inbox directory. Files are handled one at a
// time; the pipeline is strictly sequential per run.
func New(inboxDir string, handler EventHandler, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inboxDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inboxDir: inboxDir,
		handler:  handler,
		logger:   log,
		watcher:  fsw,
		slot:     make(chan struct{}, 1),
	}, nil
}
