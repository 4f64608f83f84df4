package sink

import (
	"context"
	"fmt"
	"log/slog"
	"quickchat/domain"
	"quickchat/domain/event"
	"quickchat/repositories"
)

// DiskSink writes stored messages to the durable sequence.
// Deletions only reach the durable sequence when pruneOnDelete is set.
type DiskSink struct {
	repository    repositories.IMessageRepository
	log           *slog.Logger
	pruneOnDelete bool
}

func NewDiskSink(repository repositories.IMessageRepository, log *slog.Logger, pruneOnDelete bool) DiskSink {
	return DiskSink{repository: repository, log: log, pruneOnDelete: pruneOnDelete}
}

func (d DiskSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageClassified:
		if evt.Status != domain.StatusStored {
			return nil
		}
		return d.repository.Append(repositories.FromMessage(evt.Message))
	case event.MessageDeleted:
		if !d.pruneOnDelete || evt.Message.Status() != domain.StatusStored {
			return nil
		}
		removed, err := d.repository.RemoveByHash(evt.Message.Hash())
		if err != nil {
			return err
		}
		d.log.Debug("Pruned stored message", "hash", evt.Message.Hash(), "removed", removed)
		return nil
	default:
		d.log.Debug(fmt.Sprintf("Not implemented event : %T", evt))
		return nil
	}
}
