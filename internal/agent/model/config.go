package model

// ================ Config ================
type ConversationConfig struct {
	TTL   string `envconfig:"CONVERSATION_TTL" default:"15m"`
	Tools struct {
		MaxRounds int `envconfig:"CONVERSATION_TOOL_MAX_ROUNDS" default:"8"`
	}
}

type ChatModelConfig struct {
	Model       string  `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"GEMINI_MAX_TOKENS" default:"2048"`
	Temperature float32 `envconfig:"GEMINI_TEMPERATURE" default:"0.7"`
}

type AssistantPromptConfig struct {
	AssistantName string `envconfig:"PROMPT_ASSISTANT_NAME" default:"케어브릿지"`
}
