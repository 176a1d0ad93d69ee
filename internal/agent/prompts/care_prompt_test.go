package prompts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
)

func TestRenderCareSystem(t *testing.T) {
	rendered, err := RenderCareSystem(context.Background(), model.AssistantPromptConfig{
		AssistantName: "케어브릿지",
	})
	require.NoError(t, err)

	assert.Contains(t, rendered, "케어브릿지")
	assert.Contains(t, rendered, time.Now().Format("2006-01-02"))
	assert.Contains(t, rendered, "diagnose_care_level")
	// every placeholder resolved
	assert.NotContains(t, rendered, "{{")
}
