package pipeline

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/config"
	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/logger"
	"github.com/MarkShawn2020/tencent-meeting-transcriber/pkg/sink"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestPipeline(t *testing.T) (Pipeline, string) {
	t.Helper()
	outDir := t.TempDir()

	cfg := config.Default()
	cfg.Output.Dir = outDir

	log := logger.NewWithWriter("error", io.Discard)
	return New(cfg, sink.New(outDir), nil, log), outDir
}

const docEarly = `{
	"minutes": {
		"paragraphs": [
			{
				"speaker": {"user_name": "李四"},
				"start_time": 2,
				"sentences": [{"words": [{"text": "早上"}, {"text": "好"}]}]
			}
		]
	}
}`

const docLate = `{
	"minutes": {
		"paragraphs": [
			{
				"speaker": {"user_name": "张三"},
				"start_time": 5,
				"sentences": [{"words": [{"text": "Hi"}, {"text": ""}, {"text": " there"}]}]
			}
		]
	}
}`

func TestRunMergesAcrossFiles(t *testing.T) {
	pipe, outDir := newTestPipeline(t)
	inDir := t.TempDir()

	// The later utterance is supplied first; merge must reorder.
	late := writeDoc(t, inDir, "late.json", docLate)
	early := writeDoc(t, inDir, "early.json", docEarly)

	result, err := pipe.Run(context.Background(), []string{late, early})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Parsed != 2 || result.Failed != 0 || result.Records != 2 {
		t.Errorf("Result = %+v, want 2 parsed, 0 failed, 2 records", result)
	}

	want := "**[李四]**: 早上好\n\n**[张三]**: Hi there\n\n"
	if result.Markdown != want {
		t.Errorf("Markdown = %q, want %q", result.Markdown, want)
	}

	// The same bytes must land in the output file.
	data, err := os.ReadFile(filepath.Join(outDir, "transcript.md"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != want {
		t.Errorf("transcript.md = %q, want %q", string(data), want)
	}
}

func TestRunSingleFile(t *testing.T) {
	pipe, _ := newTestPipeline(t)
	inDir := t.TempDir()
	path := writeDoc(t, inDir, "only.json", docLate)

	result, err := pipe.Run(context.Background(), []string{path})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Records != 1 {
		t.Errorf("Records = %d, want 1", result.Records)
	}
	if result.Markdown != "**[张三]**: Hi there\n\n" {
		t.Errorf("Markdown = %q", result.Markdown)
	}
}

func TestRunSkipsBrokenFiles(t *testing.T) {
	pipe, _ := newTestPipeline(t)
	inDir := t.TempDir()

	good := writeDoc(t, inDir, "good.json", docEarly)
	broken := writeDoc(t, inDir, "broken.json", `{"minutes":`)
	missing := filepath.Join(inDir, "missing.json")

	result, err := pipe.Run(context.Background(), []string{broken, missing, good})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Parsed != 1 || result.Failed != 2 {
		t.Errorf("Result = %+v, want 1 parsed, 2 failed", result)
	}
	if result.Records != 1 {
		t.Errorf("Records = %d, want 1", result.Records)
	}
}

func TestRunAllFilesFailed(t *testing.T) {
	pipe, outDir := newTestPipeline(t)
	inDir := t.TempDir()

	broken := writeDoc(t, inDir, "broken.json", `not json at all`)
	missing := filepath.Join(inDir, "missing.json")

	_, err := pipe.Run(context.Background(), []string{broken, missing})
	if !errors.Is(err, ErrNoDocuments) {
		t.Errorf("Run() error = %v, want ErrNoDocuments", err)
	}

	// Nothing should be written when the run aborts.
	if _, err := os.Stat(filepath.Join(outDir, "transcript.md")); !os.IsNotExist(err) {
		t.Error("transcript.md written despite all files failing")
	}
}

func TestRunEmptyTranscript(t *testing.T) {
	pipe, outDir := newTestPipeline(t)
	inDir := t.TempDir()

	// Parseable document with no extractable utterances: the run
	// succeeds and writes an empty rendering.
	path := writeDoc(t, inDir, "empty.json", `{"minutes": {"paragraphs": []}}`)

	result, err := pipe.Run(context.Background(), []string{path})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Records != 0 || result.Markdown != "" {
		t.Errorf("Result = %+v, want empty transcript", result)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "transcript.md"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("transcript.md = %q, want empty", string(data))
	}
}
