package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandAuthenticate records the caller-asserted identity and registers
	// the connection as that user's presence.
	CommandAuthenticate CommandKind = iota
	// CommandSendDirect routes a point-to-point message to its receiver.
	CommandSendDirect
)

// Command represents an action requested by a client.
type Command struct {
	Kind    CommandKind
	UserID  string
	Email   string // logged only, never stored
	Message DirectMessage
}
