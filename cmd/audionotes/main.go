package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/tranminhhai/audio-notes/internal/config"
	"github.com/tranminhhai/audio-notes/internal/logger"
	"github.com/tranminhhai/audio-notes/internal/notify"
	"github.com/tranminhhai/audio-notes/internal/pipeline"
	"github.com/tranminhhai/audio-notes/internal/report"
	"github.com/tranminhhai/audio-notes/internal/textproc"
	"github.com/tranminhhai/audio-notes/internal/transcriber"
	"github.com/tranminhhai/audio-notes/internal/watcher"
	"github.com/tranminhhai/audio-notes/pkg/executor"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to the YAML config file")
		audioFile  = flag.String("file", "", "process a single audio file and exit")
		watchMode  = flag.Bool("watch", false, "watch the inbox directory for new audio files")
		autoPost   = flag.Bool("post", false, "post action items to the configured Teams webhook")
	)
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Audio Notes Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Whisper model: %s", cfg.Whisper.Model)
	log.Info(ctx, "LLM: %s (%s)", cfg.LLM.Model, cfg.LLM.Provider)

	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		log.Error(ctx, "Failed to create output directory: %v", err)
		os.Exit(1)
	}

	// Build the pipeline components
	exec := executor.New()
	tr := transcriber.New(cfg.Whisper, exec, log)
	if err := tr.Ready(); err != nil {
		log.Warn(ctx, "Transcriber not ready: %v", err)
	}

	tp, err := textproc.New(ctx, cfg.LLM, log)
	if err != nil {
		log.Error(ctx, "Failed to create text processor: %v", err)
		os.Exit(1)
	}

	var poster notify.Poster
	if cfg.Teams.WebhookURL != "" {
		poster, err = notify.New(cfg.Teams.WebhookURL, log)
		if err != nil {
			log.Error(ctx, "Failed to create Teams poster: %v", err)
			os.Exit(1)
		}
	} else {
		log.Info(ctx, "MS_TEAMS_WEBHOOK_URL not set, Teams posting disabled")
	}

	p := pipeline.New(tr, tp, poster, log)

	switch {
	case *audioFile != "":
		if ok := processOne(ctx, p, cfg, log, *audioFile, *autoPost); !ok {
			os.Exit(1)
		}
	case *watchMode:
		runWatch(ctx, p, cfg, log, *autoPost)
	default:
		fmt.Fprintln(os.Stderr, "Nothing to do: pass -file <audio.wav> or -watch")
		flag.Usage()
		os.Exit(2)
	}
}

// processOne runs the pipeline for a single file, prints the artifacts,
// writes the notes document and optionally posts the action items.
func processOne(ctx context.Context, p pipeline.Pipeline, cfg *config.Config, log logger.Logger, audioPath string, post bool) bool {
	res := p.Run(ctx, audioPath)
	if res.Failed() {
		log.Error(ctx, "Pipeline failed at %s stage: %v", res.FailedStage, res.Err)
		return false
	}

	printSection("Transcript", res.Transcript)
	if res.SummaryErr != nil {
		printSection("Summary", "unavailable: "+res.SummaryErr.Error())
	} else {
		printSection("Summary", res.Summary)
	}
	if res.ActionItemsErr != nil {
		printSection("Action Items", "unavailable: "+res.ActionItemsErr.Error())
	} else {
		printSection("Action Items", res.ActionItems)
	}

	writeNotes(ctx, cfg, log, res)

	if post {
		if ok, err := p.PostActionItems(ctx, res); err != nil {
			log.Error(ctx, "Teams post failed: %v", err)
		} else if ok {
			log.Info(ctx, "Action items posted to MS Teams")
		}
	} else if p.ShouldPost(res) {
		log.Info(ctx, "Action items found; re-run with -post to send them to MS Teams")
	}

	return true
}

// runWatch processes every audio file dropped into the inbox until
// interrupted.
func runWatch(ctx context.Context, p pipeline.Pipeline, cfg *config.Config, log logger.Logger, post bool) {
	if err := os.MkdirAll(cfg.Paths.Inbox, 0755); err != nil {
		log.Error(ctx, "Failed to create inbox directory: %v", err)
		os.Exit(1)
	}

	handler := func(ctx context.Context, audioPath string) error {
		res := p.Run(ctx, audioPath)
		if res.Failed() {
			return fmt.Errorf("pipeline failed at %s stage: %w", res.FailedStage, res.Err)
		}
		writeNotes(ctx, cfg, log, res)
		if post {
			if _, err := p.PostActionItems(ctx, res); err != nil {
				log.Error(ctx, "Teams post failed: %v", err)
			}
		}
		return nil
	}

	w, err := watcher.New(cfg.Paths.Inbox, handler, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s. Drop .wav files here. Press Ctrl+C to stop", cfg.Paths.Inbox)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
	log.Info(ctx, "Audio notes pipeline stopped")
}

// writeNotes saves the run's artifacts as a docx document in the output
// directory. A write failure is a warning; the pipeline output already
// exists in memory and on screen.
func writeNotes(ctx context.Context, cfg *config.Config, log logger.Logger, res *pipeline.Result) {
	base := strings.TrimSuffix(filepath.Base(res.AudioPath), filepath.Ext(res.AudioPath))
	outPath := filepath.Join(cfg.Paths.Output, base+".docx")

	notes := report.Notes{
		Title:      "Notes from: " + filepath.Base(res.AudioPath),
		Transcript: res.Transcript,
		Summary:    res.Summary,
	}
	if res.ActionItemsErr == nil && !textproc.IsNoActionItems(res.ActionItems) {
		notes.ActionItems = res.ActionItems
	}

	if err := report.Write(notes, outPath); err != nil {
		log.Warn(ctx, "Failed to write notes document: %v", err)
		return
	}
	log.Info(ctx, "Notes written to %s", outPath)
}

func printSection(title, content string) {
	fmt.Printf("\n--- %s ---\n%s\n", title, content)
}
