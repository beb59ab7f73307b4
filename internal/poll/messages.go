package poll

import (
	"context"
	"fmt"
	"sync"

	"github.com/areawatch/areawatch-core/internal/infrastructure/logging"
	"github.com/areawatch/areawatch-core/internal/upstream"
)

// MessageSource fetches operator messages.
type MessageSource interface {
	FetchMessages(ctx context.Context) ([]upstream.OperatorMessage, error)
}

// MessageStore holds the most recent operator message list for the API.
//
// Thread Safety: all methods are safe for concurrent use.
type MessageStore struct {
	mu       sync.RWMutex
	messages []upstream.OperatorMessage
}

// NewMessageStore creates an empty store.
func NewMessageStore() *MessageStore {
	return &MessageStore{}
}

// Set replaces the stored message list.
func (s *MessageStore) Set(messages []upstream.OperatorMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append([]upstream.OperatorMessage(nil), messages...)
}

// List returns a copy of the stored messages.
func (s *MessageStore) List() []upstream.OperatorMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]upstream.OperatorMessage(nil), s.messages...)
}

// MessagePipeline is the message poll's tick: fetch the operator message
// list and store it. A failed fetch keeps the previous list.
type MessagePipeline struct {
	source MessageSource
	store  *MessageStore
	logger *logging.Logger
}

// NewMessagePipeline wires a message pipeline.
func NewMessagePipeline(source MessageSource, store *MessageStore, logger *logging.Logger) *MessagePipeline {
	return &MessagePipeline{
		source: source,
		store:  store,
		logger: logger.With("component", "message-pipeline"),
	}
}

// Tick runs one message cycle.
func (p *MessagePipeline) Tick(ctx context.Context) error {
	messages, err := p.source.FetchMessages(ctx)
	if err != nil {
		return fmt.Errorf("fetching messages: %w", err)
	}
	p.store.Set(messages)
	return nil
}
