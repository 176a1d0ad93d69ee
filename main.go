package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/yonghwan1106/ai-carebridge/internal/agent"
	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
	"github.com/yonghwan1106/ai-carebridge/internal/agent/repo"
	"github.com/yonghwan1106/ai-carebridge/internal/agent/tools"
	"github.com/yonghwan1106/ai-carebridge/internal/core"
	"github.com/yonghwan1106/ai-carebridge/internal/gateway/publicdata"
	"github.com/yonghwan1106/ai-carebridge/internal/gateway/welfare"
	"github.com/yonghwan1106/ai-carebridge/internal/server"
	logx "github.com/yonghwan1106/ai-carebridge/pkg/logger"
	pkgredis "github.com/yonghwan1106/ai-carebridge/pkg/redis"
)

// AppConfig defines all configurable parameters for the service,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	// Infrastructure
	Redis pkgredis.Config

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Agent configs
	ChatModel    model.ChatModelConfig
	Prompt       model.AssistantPromptConfig
	Conversation model.ConversationConfig

	// Government data gateways
	PublicData publicdata.Config
	Welfare    welfare.Config

	// HTTP server
	Server server.Config
}

func main() {
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(envCfg.Server.Environment)})

	// Conversation store: Redis when configured, in-memory otherwise.
	ttl, err := time.ParseDuration(envCfg.Conversation.TTL)
	if err != nil {
		logx.Fatal().Err(err).Str("ttl", envCfg.Conversation.TTL).Msg("invalid CONVERSATION_TTL")
	}

	var conversationRepo model.ConversationRepository
	if envCfg.Redis.Enabled() {
		rdb, err := envCfg.Redis.New()
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to initialise redis client")
		}
		defer rdb.Close()
		conversationRepo = repo.NewRedisConversationRepository(rdb, ttl)
		logx.Info().Msg("conversation history backed by redis")
	} else {
		conversationRepo = repo.NewMemoryConversationRepository()
		logx.Info().Msg("conversation history backed by in-process memory")
	}

	publicDataClient := publicdata.NewClient(envCfg.PublicData)
	welfareClient := welfare.NewClient(envCfg.Welfare)
	registry := tools.NewRegistry(publicDataClient, welfareClient)

	// The chat endpoint degrades to a configuration error when no model
	// key is present; facility search still works without one.
	var careAgent *agent.Agent
	if envCfg.APIKey != "" {
		cm, err := agent.NewChatModel(ctx, agent.ChatModelParams{
			APIKey:  envCfg.APIKey,
			BaseURL: envCfg.BaseURL,
			Config:  envCfg.ChatModel,
		}, registry.Specs())
		if err != nil {
			logx.Fatal().Err(err).Msg("failed to initialise chat model")
		}

		careAgent = agent.New(agent.Config{
			ChatModel:     cm,
			ModelName:     envCfg.ChatModel.Model,
			Tools:         registry,
			Repo:          conversationRepo,
			Prompt:        envCfg.Prompt,
			MaxToolRounds: envCfg.Conversation.Tools.MaxRounds,
		})
	} else {
		logx.Warn().Msg("GEMINI_API_KEY not set, chat endpoint disabled")
	}

	srv := server.New(envCfg.Server, careAgent, publicDataClient)

	addr := ":" + envCfg.Server.Port
	logx.Info().Str("addr", addr).Str("env", envCfg.Server.Environment).Msg("starting server")
	if err := srv.Run(addr); err != nil {
		logx.Fatal().Err(err).Msg("server stopped")
	}
}
