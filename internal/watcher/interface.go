package watcher

import "context"

// EventHandler processes a newly arrived audio file.
type EventHandler func(ctx context.Context, audioPath string) error

// Watcher monitors the inbox directory for new audio files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}
