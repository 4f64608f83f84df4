package sink

import (
	"context"
	"fmt"
	"log/slog"
	"quickchat/domain/event"
	"quickchat/repositories"
)

// IndexSink keeps the full-text index aligned with the session collection.
type IndexSink struct {
	index repositories.IMessageIndex
	log   *slog.Logger
}

func NewIndexSink(index repositories.IMessageIndex, log *slog.Logger) IndexSink {
	return IndexSink{index: index, log: log}
}

func (s IndexSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageAdded:
		return s.index.Index(evt.Message)
	case event.MessageDeleted:
		return s.index.Remove(evt.MessageKey())
	default:
		s.log.Debug(fmt.Sprintf("Not implemented event : %T", evt))
		return nil
	}
}
