package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mkravets/lingochat-server/internal/language"
)

// Hub routes commands from connected clients and owns the presence registry.
// All command processing happens on the single Run goroutine, so events from
// one connection are handled in order; no ordering is guaranteed across
// connections.
type Hub struct {
	registry *Registry
	register chan *Client
	detach   chan *Client
	commands chan clientCommand
	log      *zerolog.Logger
}

type clientCommand struct {
	client *Client
	cmd    *Command
}

// NewHub creates a hub with an empty presence registry.
func NewHub(logger *zerolog.Logger) *Hub {
	return &Hub{
		registry: NewRegistry(),
		register: make(chan *Client),
		detach:   make(chan *Client),
		commands: make(chan clientCommand, 64),
		log:      logger,
	}
}

// Registry exposes the presence registry for read-side consumers and tests.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// RegisterClient attaches a connection to the hub. The client immediately
// receives the supported language set.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient detaches a connection, deregistering whichever identifier
// it last authenticated as. Must be called exactly once per connection.
func (h *Hub) UnregisterClient(c *Client) {
	h.detach <- c
}

// Run processes hub traffic until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.attachClient(ctx, c)
		case c := <-h.detach:
			h.detachClient(c)
		case cc := <-h.commands:
			h.handleCommand(cc.client, cc.cmd)
		}
	}
}

func (h *Hub) attachClient(ctx context.Context, c *Client) {
	h.log.Info().Str("client_id", c.ID).Msg("client connected")

	c.send(&Event{Kind: EventLanguages, Languages: language.All()})

	// Funnel this client's commands into the single processing loop.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case cmd, ok := <-c.Commands:
				if !ok {
					return
				}
				select {
				case h.commands <- clientCommand{client: c, cmd: cmd}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}

func (h *Hub) detachClient(c *Client) {
	if c.UserID != "" {
		h.registry.Deregister(c.UserID)
		h.log.Info().Str("user_id", c.UserID).Msg("user disconnected")
		return
	}
	h.log.Info().Str("client_id", c.ID).Msg("client disconnected")
}

func (h *Hub) handleCommand(c *Client, cmd *Command) {
	switch cmd.Kind {
	case CommandAuthenticate:
		h.authenticate(c, cmd)
	case CommandSendDirect:
		h.routeDirect(c, cmd.Message)
	}
}

// authenticate records the caller-asserted identity. Re-authentication
// overwrites the registry mapping without touching the entry the connection
// may have held under a previous identifier.
func (h *Hub) authenticate(c *Client, cmd *Command) {
	c.UserID = cmd.UserID
	h.registry.Register(cmd.UserID, c)
	h.log.Info().
		Str("user_id", cmd.UserID).
		Str("email", cmd.Email).
		Msg("user authenticated")
}

// routeDirect validates, stamps and delivers a point-to-point message. The
// sender always gets a message-sent acknowledgment on valid input, whether or
// not the receiver was reachable; a presence miss is not an error.
func (h *Hub) routeDirect(c *Client, msg DirectMessage) {
	if msg.SenderID == "" || msg.ReceiverID == "" {
		c.send(&Event{
			Kind:  EventError,
			Error: coreError(ErrCodeBadRequest, "Sender and receiver IDs are required"),
		})
		return
	}

	resolved := msg
	resolved.ID = uuid.New().String()
	resolved.Timestamp = time.Now().UTC().Format(time.RFC3339)

	if receiver, ok := h.registry.Lookup(msg.ReceiverID); ok {
		receiver.send(&Event{Kind: EventDirectMessage, Message: resolved})
	} else {
		h.log.Debug().
			Str("receiver_id", msg.ReceiverID).
			Msg("receiver offline, message dropped")
	}

	c.send(&Event{Kind: EventMessageSent, Message: resolved})
}
