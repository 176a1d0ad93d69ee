package agent

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
	logx "github.com/yonghwan1106/ai-carebridge/pkg/logger"
)

// ChatModel is the slice of the eino model interface the agent needs. The
// Gemini chat model satisfies it; tests substitute a scripted fake.
type ChatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error)
}

// ChatModelParams holds what is needed to build the consultation chat model.
type ChatModelParams struct {
	APIKey  string
	BaseURL string
	Config  model.ChatModelConfig
}

// NewChatModel creates the Gemini chat model with the tool catalog bound.
func NewChatModel(ctx context.Context, params ChatModelParams, toolInfos []*schema.ToolInfo) (*gemini.ChatModel, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  params.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if params.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = params.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	cm, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       params.Config.Model,
		Temperature: &params.Config.Temperature,
		MaxTokens:   &params.Config.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating chat model")
		return nil, fmt.Errorf("error creating chat model: %w", err)
	}

	if err := cm.BindTools(toolInfos); err != nil {
		logx.Error().Err(err).Msg("Failed to bind tools")
		return nil, fmt.Errorf("failed to bind tools: %w", err)
	}
	logx.Debug().Int("tool_count", len(toolInfos)).Msg("Successfully bound tools to chat model")

	return cm, nil
}
