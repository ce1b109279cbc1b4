package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/gomutex/godocx"

	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/transcript"
)

const (
	docxFontName = "Times New Roman"
	docxFontSize = 13
)

// writeDocx renders the merged transcript as a Word document next to
// the Markdown output: one paragraph per utterance, speaker in bold,
// content as plain text.
func (p *implPipeline) writeDocx(ctx context.Context, records []transcript.Utterance) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	title := strings.TrimSuffix(p.cfg.Output.Transcript, ".md")
	doc.AddParagraph("").AddText(title).Font(docxFontName).Size(16).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, r := range records {
		para := doc.AddParagraph("")
		para.AddText("["+r.SpeakerName+"] ").Font(docxFontName).Size(docxFontSize).Color("000000").Bold(true)
		para.AddText(r.Content).Font(docxFontName).Size(docxFontSize).Color("000000")
	}

	outputPath := p.sink.Path(title + ".docx")
	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	p.logger.Info(ctx, "DOCX saved to: %s", outputPath)
	return nil
}
