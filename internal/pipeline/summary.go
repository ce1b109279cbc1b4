package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// writeSummary asks the summarizer for an LLM summary of the rendered
// transcript and persists it as summary.md.
func (p *implPipeline) writeSummary(ctx context.Context, markdown string) error {
	p.logger.Info(ctx, "Generating summary with %s...", p.cfg.Gemini.Model)

	summary, err := p.summarizer.Summarize(ctx, markdown)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	md := fmt.Sprintf("# 会议纪要\n\n_%s_\n\n%s\n",
		time.Now().Format("2006-01-02 15:04"),
		strings.TrimSpace(summary),
	)

	if err := p.sink.WriteFile("summary.md", []byte(md)); err != nil {
		return err
	}

	p.logger.Info(ctx, "Summary saved to: %s", p.sink.Path("summary.md"))
	return nil
}
