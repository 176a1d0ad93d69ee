package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yonghwan1106/ai-carebridge/internal/agent"
	"github.com/yonghwan1106/ai-carebridge/internal/agent/model"
	"github.com/yonghwan1106/ai-carebridge/internal/core/errx"
	logx "github.com/yonghwan1106/ai-carebridge/pkg/logger"
)

// wireMessage is one prior turn as the client sends it. Content is either a
// plain string or a list of content blocks; only text blocks are kept.
type wireMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

type chatRequest struct {
	Message        string           `json:"message" binding:"required"`
	History        []wireMessage    `json:"history"`
	CareState      *model.CareState `json:"careState"`
	ConversationID string           `json:"conversationId"`
}

type chatResponse struct {
	Message        string             `json:"message"`
	ToolResults    []model.ToolResult `json:"toolResults,omitempty"`
	UpdatedState   *model.CareState   `json:"updatedState"`
	ConversationID string             `json:"conversationId"`
}

func (s *Server) handleChat(c *gin.Context) {
	if s.agent == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "GEMINI_API_KEY가 설정되지 않았습니다."})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다: " + err.Error()})
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	history := make([]*schema.Message, 0, len(req.History))
	for _, m := range req.History {
		msg := convertWireMessage(m)
		if msg != nil {
			history = append(history, msg)
		}
	}

	result, err := s.agent.RunTurn(c.Request.Context(), agent.TurnRequest{
		ConversationID: conversationID,
		Message:        req.Message,
		History:        history,
		State:          req.CareState,
	})
	if err != nil {
		logx.Error().Err(err).Str("conversation_id", conversationID).Msg("chat turn failed")
		status := http.StatusInternalServerError
		var appErr *errx.AppError
		if errors.As(err, &appErr) && appErr.Status != 0 {
			status = appErr.Status
		}
		c.JSON(status, gin.H{"error": "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요."})
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		Message:        result.Message,
		ToolResults:    result.ToolResults,
		UpdatedState:   result.State,
		ConversationID: conversationID,
	})
}

// convertWireMessage flattens a client history entry into a schema message.
// Unknown roles and non-text blocks are dropped.
func convertWireMessage(m wireMessage) *schema.Message {
	var content string

	var plain string
	if err := json.Unmarshal(m.Content, &plain); err == nil {
		content = plain
	} else {
		var blocks []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}
		if err := json.Unmarshal(m.Content, &blocks); err != nil {
			return nil
		}
		var parts []string
		for _, b := range blocks {
			if b.Type == "text" && b.Text != "" {
				parts = append(parts, b.Text)
			}
		}
		content = strings.Join(parts, "\n")
	}

	if content == "" {
		return nil
	}

	switch m.Role {
	case "user":
		return schema.UserMessage(content)
	case "assistant":
		return schema.AssistantMessage(content, nil)
	default:
		return nil
	}
}
