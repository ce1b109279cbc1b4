package pipeline

import (
	"context"
	"errors"
)

// Pipeline defines the interface for the transcript processing run
type Pipeline interface {
	Run(ctx context.Context, paths []string) (Result, error)
}

// Result summarizes one pipeline run.
type Result struct {
	Markdown string // rendered transcript, for echoing to the console
	Records  int    // utterances in the merged transcript
	Parsed   int    // input files parsed successfully
	Failed   int    // input files skipped (missing or unparseable)
}

// ErrNoDocuments is returned when every supplied path failed to load
// or parse, so there is nothing to merge.
var ErrNoDocuments = errors.New("no transcript files could be parsed")
