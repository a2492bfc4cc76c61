package core

import "github.com/mkravets/lingochat-server/internal/language"

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventLanguages delivers the supported language set on connect.
	EventLanguages EventKind = iota
	// EventDirectMessage delivers a routed message to its receiver.
	EventDirectMessage
	// EventMessageSent acknowledges a routed message to its sender. It fires
	// whether or not the receiver was reachable.
	EventMessageSent
	// EventError notifies the sender about a domain error.
	EventError
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind      EventKind
	Message   DirectMessage
	Languages []language.Language
	Error     *CoreError
}
