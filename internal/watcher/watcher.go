package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/logger"
)

type implWatcher struct {
	inputDir string
	handler  RebuildHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	settle   time.Duration
}

// Start blocks, rebuilding the merged transcript whenever a JSON file
// is created or written in the watched directory. Rebuilds run
// serially: the output is a single merged file, so overlapping runs
// would only race on it.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for transcript files (*.json)", w.inputDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if !isTranscriptFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-transcript file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "Change detected: %s", event.Name)

			// Let the writer finish before reading the directory.
			time.Sleep(w.settle)

			paths, err := w.listTranscripts()
			if err != nil {
				w.logger.Error(ctx, "Failed to list %s: %v", w.inputDir, err)
				continue
			}
			if len(paths) == 0 {
				continue
			}

			if err := w.handler(ctx, paths); err != nil {
				w.logger.Error(ctx, "Rebuild failed: %v", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// listTranscripts returns every JSON file in the watched directory in
// lexicographic order, keeping equal-timestamp tie-breaks stable
// between rebuilds.
func (w *implWatcher) listTranscripts() ([]string, error) {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if isTranscriptFile(e.Name()) {
			paths = append(paths, filepath.Join(w.inputDir, e.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

func isTranscriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".json"
}
