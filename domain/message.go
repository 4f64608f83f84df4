// Package domain contains core concepts of the messaging system.
// This file defines the Message record and its classification rules.
// Identity fields are immutable; content and recipient freeze once classified.
package domain

import (
	"fmt"
	"quickchat/errors"
	"strings"

	"github.com/google/uuid"
)

type Status string

const (
	StatusUnclassified Status = "Unclassified"
	StatusSent         Status = "Sent"
	StatusDisregarded  Status = "Disregarded"
	StatusStored       Status = "Stored"
)

// IsTerminal reports whether the status is the result of a classification.
func (s Status) IsTerminal() bool {
	return s == StatusSent || s == StatusDisregarded || s == StatusStored
}

// ParseStatus accepts the persisted spelling, case-insensitively.
// An empty value maps to StatusUnclassified.
func ParseStatus(value string) (Status, bool) {
	switch {
	case value == "":
		return StatusUnclassified, true
	case strings.EqualFold(value, string(StatusUnclassified)):
		return StatusUnclassified, true
	case strings.EqualFold(value, string(StatusSent)):
		return StatusSent, true
	case strings.EqualFold(value, string(StatusDisregarded)):
		return StatusDisregarded, true
	case strings.EqualFold(value, string(StatusStored)):
		return StatusStored, true
	}
	return "", false
}

// Message represents one composed message and its classification state.
type Message struct {
	key       uuid.UUID // unique identifier, id below may collide
	id        string
	sequence  int
	recipient string
	content   string
	hash      string
	status    Status
}

func newMessage(id string, sequence int) *Message {
	return &Message{
		key:      uuid.New(),
		id:       id,
		sequence: sequence,
		status:   StatusUnclassified,
	}
}

// RestoreMessage rebuilds a record from its persisted form.
// A nil key gets a fresh one so that older files without keys stay usable.
func RestoreMessage(key uuid.UUID, id string, sequence int, recipient, content, hash string, status Status) *Message {
	if key == uuid.Nil {
		key = uuid.New()
	}
	return &Message{
		key:       key,
		id:        id,
		sequence:  sequence,
		recipient: recipient,
		content:   content,
		hash:      hash,
		status:    status,
	}
}

func (m *Message) Key() uuid.UUID { return m.key }
func (m *Message) ID() string { return m.id }
func (m *Message) Sequence() int { return m.sequence }
func (m *Message) Recipient() string { return m.recipient }
func (m *Message) Content() string { return m.content }
func (m *Message) Hash() string { return m.hash }
func (m *Message) Status() Status { return m.status }

// CheckID reports whether the identifier is exactly 10 digits.
func (m *Message) CheckID() bool {
	return IsValidID(m.id)
}

func (m *Message) SetRecipient(recipient string) error {
	if m.status.IsTerminal() {
		return errors.ErrMessageFinalized
	}
	m.recipient = recipient
	return nil
}

func (m *Message) SetContent(content string) error {
	if m.status.IsTerminal() {
		return errors.ErrMessageFinalized
	}
	m.content = content
	return nil
}

// CreateHash builds the hash from the current content and keeps it on the record.
// It must run after the content is final and before classification.
func (m *Message) CreateHash() string {
	m.hash = BuildHash(m.id, m.sequence, m.content)
	return m.hash
}

// Classify performs the one-time transition to a terminal status.
func (m *Message) Classify(status Status) error {
	if !status.IsTerminal() {
		return errors.ErrInvalidChoice
	}
	if m.status.IsTerminal() {
		return errors.ErrAlreadyClassified
	}
	m.status = status
	return nil
}

// Details renders every field of the record for display.
func (m *Message) Details() string {
	return fmt.Sprintf("Message ID: %s\nMessage Hash: %s\nRecipient: %s\nMessage: %s\nStatus: %s",
		m.id, m.hash, m.recipient, m.content, m.status)
}
