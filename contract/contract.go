//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"quickchat/domain/event"
)

// EventSink consumes what the message store announces.
// A sink returning an error does not stop the other sinks.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}
