package transcript

import (
	"fmt"
	"strings"
)

// FormatMarkdown renders the records in order as Markdown. Each record
// becomes a "**[speaker]**: content" line followed by a blank line, so
// consecutive entries are separated by exactly one blank line. An
// empty input renders as the empty string. Speaker names and content
// pass through verbatim, Markdown characters included.
func FormatMarkdown(records []Utterance) string {
	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "**[%s]**: %s\n\n", r.SpeakerName, r.Content)
	}
	return b.String()
}
