package summarizer

import "context"

// Summarizer produces an LLM-generated Markdown summary of a rendered
// transcript.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
