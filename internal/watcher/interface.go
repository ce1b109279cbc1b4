package watcher

import "context"

// Watcher defines the interface for watch mode: rebuild the merged
// transcript whenever the input directory changes.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// RebuildHandler receives the current set of transcript files, in
// lexicographic order, after a change in the watched directory.
type RebuildHandler func(ctx context.Context, paths []string) error
