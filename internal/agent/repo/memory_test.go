package repo

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryConversationRepository()

	require.NoError(t, r.AddMessage(ctx, "conv-1", schema.UserMessage("안녕하세요")))
	require.NoError(t, r.AddMessage(ctx, "conv-1", schema.AssistantMessage("반갑습니다", nil)))
	require.NoError(t, r.AddMessage(ctx, "conv-2", schema.UserMessage("다른 대화")))

	history, err := r.LoadHistory(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, "conv-1", history.ConversationID)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, "안녕하세요", history.Messages[0].Content)

	count, err := r.GetMessageCount(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, r.ClearHistory(ctx, "conv-1"))
	count, err = r.GetMessageCount(ctx, "conv-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// other conversations are untouched
	count, err = r.GetMessageCount(ctx, "conv-2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryRepositoryUnknownConversation(t *testing.T) {
	r := NewMemoryConversationRepository()

	history, err := r.LoadHistory(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, history.Messages)
}
