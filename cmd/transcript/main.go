package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/config"
	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/logger"
	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/pipeline"
	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/summarizer"
	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/watcher"
	"github.com/MarkShawn2020/tencent-meeting-transcriber/pkg/sink"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config file (optional)")
	watch := flag.Bool("watch", false, "watch the input directory and rebuild on change")
	flag.Usage = usage
	flag.Parse()

	ctx := context.Background()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	paths := flag.Args()
	if len(paths) == 0 && !*watch {
		usage()
		os.Exit(1)
	}

	out := sink.New(cfg.Output.Dir)

	var summ summarizer.Summarizer
	if len(cfg.Gemini.APIKeys) > 0 {
		summ = summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	}

	pipe := pipeline.New(cfg, out, summ, log)

	if *watch {
		if err := runWatch(ctx, cfg, pipe, log); err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, "Watch mode failed: %v", err)
			os.Exit(1)
		}
		return
	}

	result, err := pipe.Run(ctx, paths)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoDocuments) {
			log.Error(ctx, "No transcript files could be parsed")
		} else {
			log.Error(ctx, "Pipeline failed: %v", err)
		}
		os.Exit(1)
	}

	echo(result.Markdown)
}

// runWatch rebuilds the merged transcript whenever JSON files change
// in the configured input directory, until interrupted.
func runWatch(ctx context.Context, cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger) error {
	rebuild := func(ctx context.Context, paths []string) error {
		result, err := pipe.Run(ctx, paths)
		if err != nil {
			return err
		}
		echo(result.Markdown)
		return nil
	}

	w, err := watcher.New(cfg.Watch.Dir, rebuild, log, time.Duration(cfg.Watch.SettleMs)*time.Millisecond)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		return nil
	case err := <-errChan:
		return err
	}
}

// loadConfig reads the config file when present; the tool runs on
// defaults without one.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// echo prints the rendered transcript to stdout, mirroring what was
// written to disk.
func echo(markdown string) {
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Transcript (Markdown)")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println(markdown)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  transcript [flags] <file1.json> [file2.json ...]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  transcript data-1.json")
	fmt.Fprintln(os.Stderr, "  transcript data-1.json data-2.json")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}
