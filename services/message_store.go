package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"quickchat/contract"
	"quickchat/domain"
	"quickchat/domain/event"
	"quickchat/domain/search"
	"quickchat/errors"
	"quickchat/projection"
	"quickchat/repositories"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	sentConfirmation      = "Message successfully sent."
	disregardConfirmation = "Press 0 to delete message."
	storeConfirmation     = "Message successfully stored."
	invalidChoice         = "Invalid option selected."

	NoMessagesAvailable = "No messages available."
)

// MessageStore owns every record of the session, in insertion order.
// Status views are filtered on demand from the single collection.
type MessageStore struct {
	log        *slog.Logger
	repository repositories.IMessageRepository
	index      repositories.IMessageIndex
	sinks      []contract.EventSink

	mu        sync.Mutex
	messages  []*domain.Message
	persisted []*domain.Message
}

// NewMessageStore reads persisted records through repository and searches through index.
// Sinks receive every event in registration order.
func NewMessageStore(log *slog.Logger, repository repositories.IMessageRepository,
	index repositories.IMessageIndex, sinks ...contract.EventSink) *MessageStore {
	return &MessageStore{log: log, repository: repository, index: index, sinks: sinks}
}

// Classify performs the one-time transition chosen by the user and returns the confirmation.
// An unknown or repeated classification leaves the record untouched.
// A failed write is reported in the confirmation, never as an error.
func (s *MessageStore) Classify(ctx context.Context, msg *domain.Message, choice domain.Choice) (string, error) {
	status, ok := choice.Status()
	if !ok {
		return invalidChoice, errors.ErrInvalidChoice
	}
	if err := msg.Classify(status); err != nil {
		return invalidChoice, err
	}

	err := s.publish(ctx, event.MessageClassified{Message: msg, Status: status, At: time.Now().UTC()})

	switch status {
	case domain.StatusSent:
		s.logSessionOnly(msg, err)
		return sentConfirmation, nil
	case domain.StatusDisregarded:
		s.logSessionOnly(msg, err)
		return disregardConfirmation, nil
	default:
		if err != nil {
			return fmt.Sprintf("Message stored for this session only, saving failed: %v", err), nil
		}
		return storeConfirmation, nil
	}
}

// Add appends a classified record. Adding the same record twice keeps two entries.
func (s *MessageStore) Add(ctx context.Context, msg *domain.Message) {
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	s.logSessionOnly(msg, s.publish(ctx, event.MessageAdded{Message: msg, At: time.Now().UTC()}))
}

// logSessionOnly reports a sink failure on paths whose outcome stays in the session.
func (s *MessageStore) logSessionOnly(msg *domain.Message, err error) {
	if err != nil {
		s.log.Warn("Message kept in session only", "id", msg.ID(), "status", msg.Status(), "error", err)
	}
}

// LoadPersisted replaces the persisted view with the durable sequence and returns its size.
// An absent or unreadable sequence counts as empty.
func (s *MessageStore) LoadPersisted() int {
	result := s.repository.Load()
	switch result.Status {
	case repositories.LoadEmpty:
		s.log.Info("No stored messages found")
	case repositories.LoadUnavailable:
		s.log.Warn("Stored messages unavailable, starting from empty",
			"error", fmt.Errorf("%w: %v", errors.ErrPersistenceUnavailable, result.Err))
	}
	persisted := repositories.ToMessages(result.Messages)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.persisted = persisted
	return len(persisted)
}

// PersistedMessages returns the records read by the last LoadPersisted.
func (s *MessageStore) PersistedMessages() []*domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.Message(nil), s.persisted...)
}

// SentMessagesView returns the content of every sent record.
func (s *MessageStore) SentMessagesView() []string {
	return contents(s.withStatus(domain.StatusSent))
}

func (s *MessageStore) DisregardedMessagesView() []string {
	return contents(s.withStatus(domain.StatusDisregarded))
}

// StoredMessagesView merges session stored contents with persisted ones, without duplicates.
func (s *MessageStore) StoredMessagesView() []string {
	stored := contents(s.withStatus(domain.StatusStored))
	s.mu.Lock()
	persisted := contents(s.persisted)
	s.mu.Unlock()
	return lo.Uniq(append(stored, persisted...))
}

// LongestMessage picks the longest sent or stored content, the first one on ties.
// The boolean is false, with a sentinel text, when no message qualifies.
func (s *MessageStore) LongestMessage() (string, bool) {
	candidates := s.withStatus(domain.StatusSent, domain.StatusStored)
	if len(candidates) == 0 {
		return NoMessagesAvailable, false
	}
	longest := candidates[0]
	for _, msg := range candidates[1:] {
		if utf8.RuneCountInString(msg.Content()) > utf8.RuneCountInString(longest.Content()) {
			longest = msg
		}
	}
	return longest.Content(), true
}

// FindByID returns the first record with exactly this identifier.
func (s *MessageStore) FindByID(id string) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := lo.Find(s.messages, func(item *domain.Message) bool {
		return item.ID() == id
	})
	if !ok {
		return nil, errors.ErrNotFound
	}
	return msg, nil
}

// FindByRecipient returns the contents of sent or stored records for recipient.
// No match is an empty slice.
func (s *MessageStore) FindByRecipient(recipient string) []string {
	matches := lo.Filter(s.withStatus(domain.StatusSent, domain.StatusStored), func(item *domain.Message, _ int) bool {
		return item.Recipient() == recipient
	})
	return contents(matches)
}

// DeleteByHash removes the first record with this hash from the session and returns its content.
// Whether the durable sequence follows depends on the sinks.
func (s *MessageStore) DeleteByHash(ctx context.Context, hash string) (string, error) {
	s.mu.Lock()
	msg, index, ok := lo.FindIndexOf(s.messages, func(item *domain.Message) bool {
		return item.Hash() == hash
	})
	if !ok {
		s.mu.Unlock()
		return "", errors.ErrNotFound
	}
	s.messages = append(s.messages[:index:index], s.messages[index+1:]...)
	s.mu.Unlock()

	if err := s.publish(ctx, event.MessageDeleted{Message: msg, At: time.Now().UTC()}); err != nil {
		s.log.Warn("Message deleted from session only", "hash", hash, "error", err)
	}
	return msg.Content(), nil
}

// Report renders every sent record followed by the total.
func (s *MessageStore) Report() string {
	return projection.Report(s.withStatus(domain.StatusSent))
}

func (s *MessageStore) SentMessagesInfo() string {
	return projection.SentInfo(s.withStatus(domain.StatusSent))
}

// Search runs a keyword query against the index and returns records in insertion order.
func (s *MessageStore) Search(ctx context.Context, query search.Query) ([]*domain.Message, error) {
	keys, err := s.index.Search(ctx, query.Terms, query.Recipient, query.Statuses(), query.Limit)
	if err != nil {
		return nil, err
	}
	wanted := lo.SliceToMap(keys, func(key uuid.UUID) (uuid.UUID, struct{}) {
		return key, struct{}{}
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Filter(s.messages, func(item *domain.Message, _ int) bool {
		_, ok := wanted[item.Key()]
		return ok && query.Accepts(item.Status())
	}), nil
}

func (s *MessageStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Messages returns a copy of the collection.
func (s *MessageStore) Messages() []*domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.Message(nil), s.messages...)
}

func (s *MessageStore) withStatus(statuses ...domain.Status) []*domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Filter(s.messages, func(item *domain.Message, _ int) bool {
		return lo.Contains(statuses, item.Status())
	})
}

// publish hands the event to every sink; one failing sink does not starve the others.
func (s *MessageStore) publish(ctx context.Context, e event.DomainEvent) error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Consume(ctx, e); err != nil {
			s.log.Error("Sink failed", "event", fmt.Sprintf("%T", e), "error", err)
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

func contents(messages []*domain.Message) []string {
	return lo.Map(messages, func(item *domain.Message, _ int) string {
		return item.Content()
	})
}
