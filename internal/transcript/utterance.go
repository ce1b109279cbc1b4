package transcript

// UnknownSpeaker is the placeholder used when a paragraph carries no
// speaker information.
const UnknownSpeaker = "未知发言人"

// Utterance is one continuous speaking turn reconstructed from a
// transcript document. Records are immutable once created: Merge only
// reorders them and FormatMarkdown only reads them.
type Utterance struct {
	SpeakerName string
	Content     string
	StartTime   float64
}
