//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"quickchat/domain"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// IMessageRepository is the durable sequence of persisted messages.
// Reads never fail: a missing or unreadable sequence is reported through LoadResult.
type IMessageRepository interface {
	Append(message DiskMessage) error
	Load() LoadResult
	RemoveByHash(hash string) (bool, error)
}

// DiskMessage is the persisted form of a record.
// JSON names follow the stored_messages.json layout.
type DiskMessage struct {
	Key       uuid.UUID `json:"key"`
	ID        string    `json:"messageID"`
	Sequence  int       `json:"numMessagesSent"`
	Recipient string    `json:"recipient"`
	Content   string    `json:"messageContent"`
	Hash      string    `json:"messageHash"`
	Status    string    `json:"sendStatus"`
}

type LoadStatus int

const (
	// LoadFound means the sequence was read, possibly with zero entries.
	LoadFound LoadStatus = iota
	// LoadEmpty means nothing has been persisted yet.
	LoadEmpty
	// LoadUnavailable means the sequence exists but could not be read or parsed.
	LoadUnavailable
)

func (s LoadStatus) String() string {
	switch s {
	case LoadFound:
		return "found"
	case LoadEmpty:
		return "empty"
	default:
		return "unavailable"
	}
}

// LoadResult makes "no prior data" an ordinary branch.
// Messages is always usable, Err only explains LoadUnavailable.
type LoadResult struct {
	Status   LoadStatus
	Messages []DiskMessage
	Err      error
}

func found(messages []DiskMessage) LoadResult {
	return LoadResult{Status: LoadFound, Messages: messages}
}

func empty() LoadResult {
	return LoadResult{Status: LoadEmpty}
}

func unavailable(err error) LoadResult {
	return LoadResult{Status: LoadUnavailable, Err: err}
}

func FromMessage(message *domain.Message) DiskMessage {
	return DiskMessage{
		Key:       message.Key(),
		ID:        message.ID(),
		Sequence:  message.Sequence(),
		Recipient: message.Recipient(),
		Content:   message.Content(),
		Hash:      message.Hash(),
		Status:    string(message.Status()),
	}
}

// ToMessage rebuilds a record. Unknown statuses are kept as Stored since only stored
// messages are written by the store.
func ToMessage(message DiskMessage) *domain.Message {
	status, ok := domain.ParseStatus(message.Status)
	if !ok {
		status = domain.StatusStored
	}
	return domain.RestoreMessage(message.Key, message.ID, message.Sequence,
		message.Recipient, message.Content, message.Hash, status)
}

func ToMessages(messages []DiskMessage) []*domain.Message {
	return lo.Map(messages, func(item DiskMessage, _ int) *domain.Message {
		return ToMessage(item)
	})
}

// removeFirst drops the first entry carrying hash.
func removeFirst(messages []DiskMessage, hash string) ([]DiskMessage, bool) {
	_, index, ok := lo.FindIndexOf(messages, func(item DiskMessage) bool {
		return item.Hash == hash
	})
	if !ok {
		return messages, false
	}
	return append(messages[:index:index], messages[index+1:]...), true
}
