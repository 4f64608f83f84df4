package domain

import "sync"

// MessageFactory creates records and owns the sequence counter.
// One factory per process, passed to whoever composes messages.
type MessageFactory struct {
	mu      sync.Mutex
	ids     IDGenerator
	counter int
}

func NewMessageFactory(ids IDGenerator) *MessageFactory {
	return &MessageFactory{ids: ids}
}

// NewMessage returns an unclassified record with the next sequence number.
func (f *MessageFactory) NewMessage() *Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counter++
	return newMessage(f.ids.Generate(), f.counter)
}

// Total is the number of records created since the last reset.
func (f *MessageFactory) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counter
}

// ResetForTesting restarts the sequence at 1.
func (f *MessageFactory) ResetForTesting() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counter = 0
}
