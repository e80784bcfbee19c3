package types

type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// ChatMessage is one entry in a session's append-only conversation log.
// Messages are never reordered or mutated after insertion.
type ChatMessage struct {
	Speaker   Speaker `json:"speaker"`
	Text      string  `json:"text"`
	Timestamp string  `json:"timestamp"` // RFC3339
}
