package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/logger"
)

// New creates a Watcher over inputDir. settle is the delay between a
// file event and the rebuild, giving writers time to finish the file.
func New(inputDir string, handler RebuildHandler, log logger.Logger, settle time.Duration) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inputDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if settle <= 0 {
		settle = 500 * time.Millisecond
	}

	return &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		logger:   log,
		watcher:  fsw,
		settle:   settle,
	}, nil
}
