package repo

import (
	"context"
	"sync"

	"github.com/cloudwego/eino/schema"
	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
)

// MemoryConversationRepository keeps transcripts in process memory. It is the
// fallback when no Redis URL is configured and is also handy in tests.
// Transcripts do not survive a restart.
type MemoryConversationRepository struct {
	mu       sync.RWMutex
	messages map[string][]*schema.Message
}

func NewMemoryConversationRepository() *MemoryConversationRepository {
	return &MemoryConversationRepository{messages: make(map[string][]*schema.Message)}
}

func (r *MemoryConversationRepository) AddMessage(_ context.Context, conversationID string, message *schema.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[conversationID] = append(r.messages[conversationID], message)
	return nil
}

func (r *MemoryConversationRepository) LoadHistory(_ context.Context, conversationID string) (*model.ConversationHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	msgs := make([]*schema.Message, len(r.messages[conversationID]))
	copy(msgs, r.messages[conversationID])
	return &model.ConversationHistory{ConversationID: conversationID, Messages: msgs}, nil
}

func (r *MemoryConversationRepository) ClearHistory(_ context.Context, conversationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.messages, conversationID)
	return nil
}

func (r *MemoryConversationRepository) GetMessageCount(_ context.Context, conversationID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages[conversationID]), nil
}

var _ model.ConversationRepository = (*MemoryConversationRepository)(nil)
