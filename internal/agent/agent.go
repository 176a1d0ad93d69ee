// Package agent runs the tool-calling consultation loop: it sends the
// conversation to the chat model, executes any tools it requests, merges the
// resulting state patches, and feeds the results back until the model answers
// in plain text or the round budget runs out.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
	"github.com/yonghwan1106/ai-carebridge/internal/agent/prompts"
	"github.com/yonghwan1106/ai-carebridge/internal/agent/tools"
	logx "github.com/yonghwan1106/ai-carebridge/pkg/logger"
)

const defaultMaxToolRounds = 8

// roundLimitNotice closes a turn when the model keeps requesting tools past
// the round budget without producing any answer text.
const roundLimitNotice = "요청하신 내용을 끝까지 처리하지 못해 지금까지 확인한 내용으로 안내를 마무리합니다. " +
	"이어서 궁금한 점을 말씀해 주시면 계속 도와드리겠습니다."

// Config wires the agent's collaborators.
type Config struct {
	ChatModel ChatModel
	ModelName string
	Tools     *tools.Registry
	// Repo persists transcripts when set; persistence failures never fail a turn.
	Repo          model.ConversationRepository
	Prompt        model.AssistantPromptConfig
	MaxToolRounds int
}

type Agent struct {
	cfg Config
}

func New(cfg Config) *Agent {
	if cfg.MaxToolRounds <= 0 {
		cfg.MaxToolRounds = defaultMaxToolRounds
	}
	return &Agent{cfg: cfg}
}

// TurnRequest is one user turn with the client-held conversation context.
type TurnRequest struct {
	ConversationID string
	Message        string
	History        []*schema.Message
	State          *model.CareState
}

// TurnResult is the assistant reply plus everything the client needs to
// update its view: per-tool results and the merged care state.
type TurnResult struct {
	Message      string
	ToolResults  []model.ToolResult
	State        *model.CareState
	TotalCostUSD float64
}

// RunTurn executes one full conversation turn.
func (a *Agent) RunTurn(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	state := req.State
	if state == nil {
		state = model.NewCareState()
	}

	systemPrompt, err := prompts.RenderCareSystem(ctx, a.cfg.Prompt)
	if err != nil {
		return nil, fmt.Errorf("render system prompt: %w", err)
	}

	messages := make([]*schema.Message, 0, len(req.History)+2)
	messages = append(messages, schema.SystemMessage(systemPrompt))
	messages = append(messages, req.History...)
	userMsg := schema.UserMessage(req.Message)
	messages = append(messages, userMsg)

	a.persist(ctx, req.ConversationID, userMsg)

	var toolResults []model.ToolResult
	var gathered []string
	toolCallIDSeq := 0
	totalCostUSD := 0.0

	for round := 1; ; round++ {
		wrapUp := round == a.cfg.MaxToolRounds
		if wrapUp {
			messages = append(messages, &schema.Message{
				Role: schema.System,
				Content: fmt.Sprintf(
					"SYSTEM NOTICE: You have reached the maximum tool call limit (%d). "+
						"Please synthesize a helpful response using the information you've already gathered. "+
						"Acknowledge any limitations in your response if you couldn't complete all necessary tool calls.",
					a.cfg.MaxToolRounds,
				),
			})
		}

		logx.Debug().Int("round", round).Str("conversation_id", req.ConversationID).Msg("AI thinking...")

		out, err := a.cfg.ChatModel.Generate(ctx, messages)
		if err != nil {
			return nil, fmt.Errorf("chat model generate: %w", err)
		}

		totalCostUSD += a.accountUsage(req.ConversationID, out, totalCostUSD)

		// Some providers omit tool_call IDs; synthesize so result pairing holds.
		for i := range out.ToolCalls {
			if strings.TrimSpace(out.ToolCalls[i].ID) == "" {
				toolCallIDSeq++
				out.ToolCalls[i].ID = fmt.Sprintf("call_%d", toolCallIDSeq)
			}
		}

		messages = append(messages, out)

		if len(out.ToolCalls) == 0 || wrapUp {
			text := out.Content
			if len(out.ToolCalls) > 0 {
				logx.Warn().
					Int("max_tool_rounds", a.cfg.MaxToolRounds).
					Str("conversation_id", req.ConversationID).
					Msg("Tool round limit reached, returning partial answer")
				// The budget ran out mid-consultation; never hand back an
				// empty reply.
				if strings.TrimSpace(text) == "" {
					text = strings.Join(append(gathered, roundLimitNotice), "\n\n")
				}
			} else {
				logx.Debug().Msg("AI response ready")
			}
			if strings.TrimSpace(text) != "" {
				a.persist(ctx, req.ConversationID, schema.AssistantMessage(text, nil))
			}
			return &TurnResult{
				Message:      text,
				ToolResults:  toolResults,
				State:        state,
				TotalCostUSD: totalCostUSD,
			}, nil
		}

		if strings.TrimSpace(out.Content) != "" {
			gathered = append(gathered, out.Content)
		}

		logx.Debug().Int("tool_count", len(out.ToolCalls)).Msg("Calling tools")

		for _, call := range out.ToolCalls {
			content, result := a.runTool(ctx, call, state)
			toolResults = append(toolResults, result)
			messages = append(messages, schema.ToolMessage(content, call.ID))
		}
	}
}

// runTool executes a single tool call. Handler failures and unknown tools are
// reported back to the model as error results, never as turn failures.
func (a *Agent) runTool(ctx context.Context, call schema.ToolCall, state *model.CareState) (string, model.ToolResult) {
	outcome, err := a.cfg.Tools.Dispatch(ctx, call.Function.Name, call.Function.Arguments, state)
	if err != nil {
		logx.Error().Err(err).Str("tool", call.Function.Name).Msg("tool execution failed")
		content := "Error: " + err.Error()
		return content, model.ToolResult{
			ToolCallID: call.ID,
			ToolName:   call.Function.Name,
			Result:     content,
			IsError:    true,
		}
	}

	// Patches apply immediately so later tools in the same batch observe them.
	state.Apply(outcome.StatePatch)

	content, err := json.Marshal(outcome.Result)
	if err != nil {
		logx.Error().Err(err).Str("tool", call.Function.Name).Msg("failed to marshal tool result")
		errContent := "Error: failed to serialize tool result"
		return errContent, model.ToolResult{
			ToolCallID: call.ID,
			ToolName:   call.Function.Name,
			Result:     errContent,
			IsError:    true,
		}
	}

	return string(content), model.ToolResult{
		ToolCallID:  call.ID,
		ToolName:    call.Function.Name,
		Result:      outcome.Result,
		DisplayData: outcome.DisplayData,
	}
}

// accountUsage logs per-invocation token cost and returns the increment.
func (a *Agent) accountUsage(conversationID string, out *schema.Message, runningTotal float64) float64 {
	if out == nil || out.ResponseMeta == nil || out.ResponseMeta.Usage == nil {
		return 0
	}

	pricing := model.ResolvePricing(a.cfg.ModelName)
	inC, outC, totalC := model.ComputeCost(out.ResponseMeta.Usage, pricing)
	if out.Extra == nil {
		out.Extra = map[string]any{}
	}
	out.Extra["usage_cost"] = map[string]any{
		"currency":          "USD",
		"model":             a.cfg.ModelName,
		"prompt_tokens":     out.ResponseMeta.Usage.PromptTokens,
		"completion_tokens": out.ResponseMeta.Usage.CompletionTokens,
		"total_tokens":      out.ResponseMeta.Usage.TotalTokens,
		"input_cost":        inC,
		"output_cost":       outC,
		"total_cost":        totalC,
	}
	out.Extra["usage_cost_total_usd"] = runningTotal + totalC

	logx.Debug().
		Str("conversation_id", conversationID).
		Str("model", a.cfg.ModelName).
		Int("prompt_tokens", out.ResponseMeta.Usage.PromptTokens).
		Int("completion_tokens", out.ResponseMeta.Usage.CompletionTokens).
		Int("total_tokens", out.ResponseMeta.Usage.TotalTokens).
		Float64("input_cost_usd", inC).
		Float64("output_cost_usd", outC).
		Float64("total_cost_usd", totalC).
		Msg("LLM usage")

	return totalC
}

func (a *Agent) persist(ctx context.Context, conversationID string, msg *schema.Message) {
	if a.cfg.Repo == nil || conversationID == "" {
		return
	}
	if err := a.cfg.Repo.AddMessage(ctx, conversationID, msg); err != nil {
		logx.Error().Err(err).Str("conversation_id", conversationID).Msg("failed to persist message")
	}
}
