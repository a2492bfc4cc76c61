package core

// DirectMessage is the domain model for a point-to-point message.
//
// Text, OriginalText and the language codes are opaque payload; they pass
// through routing unexamined. ID and Timestamp are empty on the way in and
// are assigned by the hub when the message is routed.
type DirectMessage struct {
	ID               string
	SenderID         string
	ReceiverID       string
	Text             string
	OriginalText     string
	TargetLanguage   string
	OriginalLanguage string
	Timestamp        string // RFC 3339, set at routing time
}
