package moderation

import (
	"maps"
	"sync"
)

// HitCounter counts censored words over the session.
type HitCounter struct {
	mu      sync.Mutex
	counter uint64
	hit     map[string]uint64
}

func NewHitCounter() *HitCounter {
	return &HitCounter{hit: make(map[string]uint64)}
}

func (h *HitCounter) Record(words []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, word := range words {
		h.counter++
		h.hit[word]++
	}
}

// Total is the number of censored occurrences.
func (h *HitCounter) Total() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.counter
}

// Hits returns a copy of the per word counts.
func (h *HitCounter) Hits() map[string]uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return maps.Clone(h.hit)
}
