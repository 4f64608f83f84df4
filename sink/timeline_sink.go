package sink

import (
	"context"
	"quickchat/domain"
	"quickchat/domain/event"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const DefaultTimelineLimit = 5

// Timeline holds the most recently sent messages, newest last.
type Timeline struct {
	Owner string

	mu       sync.Mutex
	limit    int
	messages []TimelineEntry
}

type TimelineEntry struct {
	Key       uuid.UUID
	Recipient string
	Content   string
	At        time.Time
}

func NewTimeline(owner string, limit int) *Timeline {
	if limit <= 0 {
		limit = DefaultTimelineLimit
	}
	return &Timeline{Owner: owner, limit: limit}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch evt := e.(type) {
	case event.MessageClassified:
		if evt.Status != domain.StatusSent {
			return nil
		}
		t.messages = append(t.messages, fromEvent(evt))
		if len(t.messages) > t.limit {
			t.messages = t.messages[len(t.messages)-t.limit:]
		}
	case event.MessageDeleted:
		t.messages = lo.Reject(t.messages, func(item TimelineEntry, _ int) bool {
			return item.Key == evt.MessageKey()
		})
	}
	return nil
}

// Recent returns a copy, newest first.
func (t *Timeline) Recent() []TimelineEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return lo.Reverse(append([]TimelineEntry(nil), t.messages...))
}

func fromEvent(evt event.MessageClassified) TimelineEntry {
	return TimelineEntry{
		Key:       evt.Message.Key(),
		Recipient: evt.Message.Recipient(),
		Content:   evt.Message.Content(),
		At:        evt.At,
	}
}
