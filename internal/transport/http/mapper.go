package http

import (
	"encoding/json"

	"github.com/mkravets/lingochat-server/internal/core"
	"github.com/mkravets/lingochat-server/internal/proto"
)

func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeAuthenticate:
		var auth proto.AuthenticateData
		if err := json.Unmarshal(inbound.Data, &auth); err != nil {
			return nil, nil, err
		}
		if auth.UserID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "userId is required"}, nil
		}
		return &core.Command{
			Kind:   core.CommandAuthenticate,
			UserID: auth.UserID,
			Email:  auth.Email,
		}, nil, nil
	case proto.InboundTypePrivateMessage:
		var msg proto.PrivateMessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, nil, err
		}
		// Identifier validation happens in the hub, which answers on the
		// error event channel rather than the protocol error path.
		return &core.Command{
			Kind: core.CommandSendDirect,
			Message: core.DirectMessage{
				SenderID:         msg.SenderID,
				ReceiverID:       msg.ReceiverID,
				Text:             msg.Text,
				OriginalText:     msg.OriginalText,
				TargetLanguage:   msg.TargetLanguage,
				OriginalLanguage: msg.OriginalLanguage,
			},
		}, nil, nil
	default:
		return nil, &proto.Error{Code: core.ErrCodeInvalidMessage, Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventLanguages:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameLanguages,
			Data:  event.Languages,
		}
	case core.EventDirectMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNamePrivateMessage,
			Data:  eventMessage(event.Message),
		}
	case core.EventMessageSent:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameMessageSent,
			Data:  eventMessage(event.Message),
		}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown error"}}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Error.Code, Msg: event.Error.Message},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}

func eventMessage(m core.DirectMessage) proto.EventMessage {
	return proto.EventMessage{
		ID:               m.ID,
		SenderID:         m.SenderID,
		ReceiverID:       m.ReceiverID,
		Text:             m.Text,
		OriginalText:     m.OriginalText,
		TargetLanguage:   m.TargetLanguage,
		OriginalLanguage: m.OriginalLanguage,
		Timestamp:        m.Timestamp,
	}
}
