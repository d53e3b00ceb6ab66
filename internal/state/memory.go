// ABOUTME: In-process state store: TTL + size-bounded dedup set plus
// ABOUTME: a conversation-ownership map. Insertion order drives eviction.

package state

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/2389/bizmsg-gateway/internal/bizmsg"
)

// seenEntry stores the timestamp and list element for a recorded id.
type seenEntry struct {
	timestamp time.Time
	element   *list.Element
}

// Memory is an in-process Store. Delivery ids expire after a TTL and the
// set is size-bounded with oldest-first eviction (O(1) via a linked list).
// Ownership entries never expire; there is one per active conversation.
type Memory struct {
	mu      sync.Mutex
	seen    map[string]*seenEntry
	order   *list.List // ids in insertion order, oldest at front
	owners  map[string]bizmsg.RepresentativeType
	ttl     time.Duration
	maxSize int
	done    chan struct{}
	closed  bool
}

// NewMemory creates a Memory store with the given dedup TTL and maximum
// dedup set size. A background goroutine periodically drops expired ids.
func NewMemory(ttl time.Duration, maxSize int) *Memory {
	m := &Memory{
		seen:    make(map[string]*seenEntry),
		order:   list.New(),
		owners:  make(map[string]bizmsg.RepresentativeType),
		ttl:     ttl,
		maxSize: maxSize,
		done:    make(chan struct{}),
	}
	go m.cleanup()
	return m
}

// CheckAndMark atomically checks whether an id was seen and records it if
// not. Returns true for a duplicate.
func (m *Memory) CheckAndMark(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.seen[id]
	if ok && time.Since(entry.timestamp) < m.ttl {
		return true, nil
	}

	m.mark(id)
	return false, nil
}

// OwnerType returns the recorded owner of the conversation, if any.
func (m *Memory) OwnerType(_ context.Context, conversationID string) (bizmsg.RepresentativeType, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.owners[conversationID]
	return t, ok, nil
}

// SetOwnerType records the owner of the conversation.
func (m *Memory) SetOwnerType(_ context.Context, conversationID string, t bizmsg.RepresentativeType) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.owners[conversationID] = t
	return nil
}

// mark records an id. Must be called with mu held.
func (m *Memory) mark(id string) {
	now := time.Now()

	// Refresh an existing (possibly expired) entry in place.
	if entry, exists := m.seen[id]; exists {
		entry.timestamp = now
		m.order.MoveToBack(entry.element)
		return
	}

	if len(m.seen) >= m.maxSize {
		m.evictOldest()
	}

	elem := m.order.PushBack(id)
	m.seen[id] = &seenEntry{timestamp: now, element: elem}
}

// evictOldest removes the oldest id. Must be called with mu held.
func (m *Memory) evictOldest() {
	front := m.order.Front()
	if front == nil {
		return
	}

	id, _ := front.Value.(string)
	m.order.Remove(front)
	delete(m.seen, id)
}

// cleanup periodically removes expired ids until Close.
func (m *Memory) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.dropExpired()
		case <-m.done:
			return
		}
	}
}

func (m *Memory) dropExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for id, entry := range m.seen {
		if now.Sub(entry.timestamp) > m.ttl {
			m.order.Remove(entry.element)
			delete(m.seen, id)
		}
	}
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		close(m.done)
		m.closed = true
	}
	return nil
}
