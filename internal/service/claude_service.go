package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gazelle/internal/dto"
	"gazelle/pkg/config"

	"go.uber.org/zap"
)

// ClaudeTool is a tool definition passed to the Messages API. At most one tool
// is offered per turn: record_supply_donation for providers,
// search_available_supplies for seekers.
type ClaudeTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// ContentBlock is one element of a Messages API response. Type is either
// "text" (Text set) or "tool_use" (Name and Input set).
type ContentBlock struct {
	Type  string         `json:"type"`
	Text  string         `json:"text,omitempty"`
	ID    string         `json:"id,omitempty"`
	Name  string         `json:"name,omitempty"`
	Input map[string]any `json:"input,omitempty"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	System    string          `json:"system"`
	Messages  []claudeMessage `json:"messages"`
	Tools     []ClaudeTool    `json:"tools,omitempty"`
}

type claudeResponse struct {
	ID         string         `json:"id"`
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// ClaudeService calls the Anthropic Messages API over plain HTTP.
// Documentation: https://docs.anthropic.com/en/api/messages
type ClaudeService struct {
	config     *config.ClaudeConfig
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewClaudeService(cfg *config.ClaudeConfig, logger *zap.Logger) *ClaudeService {
	return &ClaudeService{
		config: cfg,
		httpClient: &http.Client{
			// A hung upstream call would otherwise block the turn indefinitely
			Timeout: cfg.Timeout,
		},
		baseURL: "https://api.anthropic.com/v1",
		logger:  logger,
	}
}

// CreateMessage sends one chat turn: system prompt, full caller-supplied
// history plus the current message, and the optional tool. Returns the model's
// content blocks. A non-2xx response fails the turn; the body is logged.
func (s *ClaudeService) CreateMessage(
	ctx context.Context,
	system string,
	history []dto.ConversationMessage,
	message string,
	tool *ClaudeTool,
) ([]ContentBlock, error) {
	messages := make([]claudeMessage, 0, len(history)+1)
	for _, m := range history {
		messages = append(messages, claudeMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, claudeMessage{Role: "user", Content: message})

	reqBody := claudeRequest{
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
		System:    system,
		Messages:  messages,
	}
	if tool != nil {
		reqBody.Tools = []ClaudeTool{*tool}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/messages", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.config.APIKey)
	req.Header.Set("anthropic-version", s.config.Version)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		s.logger.Error("Claude API request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(bodyBytes)),
		)
		return nil, fmt.Errorf("claude API failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var claudeResp claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&claudeResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	s.logger.Debug("Claude response received",
		zap.String("stop_reason", claudeResp.StopReason),
		zap.Int("blocks", len(claudeResp.Content)),
		zap.Int("input_tokens", claudeResp.Usage.InputTokens),
		zap.Int("output_tokens", claudeResp.Usage.OutputTokens),
	)

	return claudeResp.Content, nil
}
