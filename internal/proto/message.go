package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeAuthenticate   = "authenticate"
	InboundTypePrivateMessage = "private-message"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventNameLanguages      = "languages"
	EventNamePrivateMessage = "private-message"
	EventNameMessageSent    = "message-sent"
)

// AuthenticateData identifies the connecting user. Email is used for
// logging only.
type AuthenticateData struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
}

// PrivateMessageData is a point-to-point message from the client. Everything
// beyond the two identifiers is opaque payload.
type PrivateMessageData struct {
	SenderID         string `json:"senderId"`
	ReceiverID       string `json:"receiverId"`
	Text             string `json:"text"`
	OriginalText     string `json:"originalText,omitempty"`
	TargetLanguage   string `json:"targetLanguage,omitempty"`
	OriginalLanguage string `json:"originalLanguage,omitempty"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// EventMessage is the resolved message record delivered to the receiver and
// echoed to the sender.
type EventMessage struct {
	ID               string `json:"id"`
	SenderID         string `json:"senderId"`
	ReceiverID       string `json:"receiverId"`
	Text             string `json:"text"`
	OriginalText     string `json:"originalText,omitempty"`
	TargetLanguage   string `json:"targetLanguage,omitempty"`
	OriginalLanguage string `json:"originalLanguage,omitempty"`
	Timestamp        string `json:"timestamp"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"message"`
}
