package prompts

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
)

//go:embed template/system_prompt.txt
var careSystemPrompt string

// RenderCareSystem renders the consultation system prompt and triggers prompt callbacks.
func RenderCareSystem(ctx context.Context, config model.AssistantPromptConfig) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(careSystemPrompt),
	)
	vars := map[string]any{
		"AssistantName": config.AssistantName,
		"CurrentDate":   time.Now().Format("2006-01-02"),
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("care prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("care prompt render: empty result")
	}
	return msgs[0].Content, nil
}
