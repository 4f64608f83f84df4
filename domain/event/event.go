// Package event defines what the message store announces to its sinks.
// Events carry the record pointer; sinks must not mutate it.
package event

import (
	"quickchat/domain"
	"time"

	"github.com/google/uuid"
)

type DomainEvent interface {
	MessageKey() uuid.UUID
}

// MessageClassified follows a successful one-time transition.
type MessageClassified struct {
	Message *domain.Message
	Status  domain.Status
	At      time.Time
}

func (m MessageClassified) MessageKey() uuid.UUID {
	return m.Message.Key()
}

// MessageAdded follows insertion into the session collection.
type MessageAdded struct {
	Message *domain.Message
	At      time.Time
}

func (m MessageAdded) MessageKey() uuid.UUID {
	return m.Message.Key()
}

// MessageDeleted follows removal from the session collection.
type MessageDeleted struct {
	Message *domain.Message
	At      time.Time
}

func (m MessageDeleted) MessageKey() uuid.UUID {
	return m.Message.Key()
}
