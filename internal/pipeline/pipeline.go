package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/document"
	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/transcript"
)

// Run loads each transcript file, extracts its utterances, merges them
// into one time-ordered sequence and writes the Markdown rendering
// through the sink. Missing or unparseable files are reported and
// skipped; only when every path fails does the run abort with
// ErrNoDocuments. The order of paths is significant: it decides the
// tie-break between records sharing a start time.
func (p *implPipeline) Run(ctx context.Context, paths []string) (Result, error) {
	startTime := time.Now()
	result := Result{}

	var transcripts [][]transcript.Utterance

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			p.logger.Warn(ctx, "File %s does not exist, skipping", path)
			result.Failed++
			continue
		}

		p.logger.Info(ctx, "Parsing: %s", path)

		doc, err := document.Load(path)
		if err != nil {
			p.logger.Error(ctx, "Failed to parse %s: %v", path, err)
			result.Failed++
			continue
		}

		records := transcript.Extract(doc)
		p.logger.Info(ctx, "  Extracted %d utterances", len(records))

		transcripts = append(transcripts, records)
		result.Parsed++
	}

	if result.Parsed == 0 {
		return result, ErrNoDocuments
	}

	// Merging only matters across files; a single transcript is
	// already in source order.
	var merged []transcript.Utterance
	if len(transcripts) > 1 {
		p.logger.Info(ctx, "Merging utterances from %d files...", len(transcripts))
		merged = transcript.Merge(transcripts)
	} else {
		merged = transcripts[0]
	}

	result.Records = len(merged)
	result.Markdown = transcript.FormatMarkdown(merged)
	p.logger.Info(ctx, "Total %d utterances", result.Records)

	if err := p.sink.WriteFile(p.cfg.Output.Transcript, []byte(result.Markdown)); err != nil {
		return result, err
	}
	p.logger.Info(ctx, "Transcript saved to: %s", p.sink.Path(p.cfg.Output.Transcript))

	// Optional outputs never fail the run.
	if p.cfg.Output.Docx {
		if err := p.writeDocx(ctx, merged); err != nil {
			p.logger.Warn(ctx, "Failed to write DOCX: %v", err)
		}
	}
	if p.summarizer != nil {
		if err := p.writeSummary(ctx, result.Markdown); err != nil {
			p.logger.Warn(ctx, "Failed to write summary: %v", err)
		}
	}

	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	return result, nil
}
