package notify

import (
	"sync"
	"time"

	"github.com/areawatch/areawatch-core/internal/warning"
)

// Severity values used by internally raised notifications. Rule-sourced
// messages carry whatever severity their author chose.
const (
	SeveritySystem  = "system"
	SeverityWarning = "warning"
)

// Entry is one queued notification with its arrival time.
type Entry struct {
	Message    warning.Message `json:"message"`
	ReceivedAt time.Time       `json:"received_at"`
}

// Queue is the process-wide deduplicated notification queue. Arrival order
// is preserved; a message whose field values exactly match an already queued
// entry is dropped, so repeated rule evaluation never accumulates
// duplicates.
//
// Thread Safety: all methods are safe for concurrent use.
type Queue struct {
	mu      sync.RWMutex
	entries []Entry
	onAdd   func(Entry)
}

// NewQueue creates an empty notification queue.
func NewQueue() *Queue {
	return &Queue{}
}

// SetOnAdd registers a callback invoked for every accepted (non-duplicate)
// message, after it is queued. Used to push notifications to WebSocket
// clients. The callback runs outside the queue lock.
func (q *Queue) SetOnAdd(fn func(Entry)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.onAdd = fn
}

// Add appends the message unless a field-identical entry is already queued.
// Returns true if the message was accepted.
func (q *Queue) Add(msg warning.Message) bool {
	q.mu.Lock()
	for _, existing := range q.entries {
		if existing.Message == msg {
			q.mu.Unlock()
			return false
		}
	}

	entry := Entry{Message: msg, ReceivedAt: time.Now().UTC()}
	q.entries = append(q.entries, entry)
	onAdd := q.onAdd
	q.mu.Unlock()

	if onAdd != nil {
		onAdd(entry)
	}
	return true
}

// Dismiss removes the entry at the given position. An out-of-range index is
// a no-op: the UI may dismiss an entry that a concurrent mutation already
// removed, and that race is harmless.
func (q *Queue) Dismiss(index int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if index < 0 || index >= len(q.entries) {
		return
	}
	q.entries = append(q.entries[:index], q.entries[index+1:]...)
}

// Entries returns a copy of the queue in arrival order.
func (q *Queue) Entries() []Entry {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return append([]Entry(nil), q.entries...)
}

// Len returns the number of queued entries.
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.entries)
}
