package core

// Client is a live connection as seen by the core layer.
//
// UserID is empty until the client authenticates and is written only from the
// hub's processing goroutine. It always holds the identifier the connection
// most recently registered.
type Client struct {
	ID       string
	UserID   string
	Commands chan *Command
	Events   chan *Event
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 8),
	}
}

// send queues an event for the client, dropping it if the consumer is slow.
func (c *Client) send(event *Event) {
	select {
	case c.Events <- event:
	default:
	}
}
