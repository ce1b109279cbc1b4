package transcript

import (
	"strings"

	"github.com/MarkShawn2020/tencent-meeting-transcriber/internal/document"
)

// Extract walks minutes.paragraphs in a parsed transcript document and
// returns one Utterance per paragraph that yields any text. Paragraphs
// whose sentences contain no non-empty word fragments are dropped; a
// document without the minutes.paragraphs path yields an empty result,
// not an error.
func Extract(doc document.Node) []Utterance {
	var records []Utterance

	for _, paragraph := range doc.Get("minutes").Get("paragraphs").Items() {
		speaker := paragraph.Get("speaker").Get("user_name").StringOr(UnknownSpeaker)

		// Word fragments are concatenated directly; the source
		// already carries its own spacing inside the fragments.
		var content strings.Builder
		for _, sentence := range paragraph.Get("sentences").Items() {
			for _, word := range sentence.Get("words").Items() {
				content.WriteString(word.Get("text").StringOr(""))
			}
		}

		if content.Len() == 0 {
			continue
		}

		records = append(records, Utterance{
			SpeakerName: speaker,
			Content:     content.String(),
			StartTime:   paragraph.Get("start_time").FloatOr(0),
		})
	}

	return records
}
