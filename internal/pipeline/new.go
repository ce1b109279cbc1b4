package pipeline

import (
	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/config"
	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/logger"
	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/summarizer"
	"github.com/MarkShawn2020/tencent-meeting-transcriber/pkg/sink"
)

type implPipeline struct {
	cfg        *config.Config
	sink       sink.Sink
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a new Pipeline instance. summ may be nil when no Gemini
// API keys are configured; the summary step is skipped in that case.
func New(cfg *config.Config, out sink.Sink, summ summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:        cfg,
		sink:       out,
		summarizer: summ,
		logger:     log,
	}
}
