// Package assistant wraps the Claude API for the two SPA helpers:
// recognizing a paint label from a photo and answering free-text
// questions with the user's inventory as context.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/vrusch/ModSkl/internal/config"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("assistant is not configured")

// llmClient is the slice of the Anthropic SDK the service needs.
// A *anthropic.MessageService satisfies it.
type llmClient interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Service implements the assistant logic.
type Service struct {
	log *slog.Logger
	llm llmClient
	cfg config.AssistantConfig
}

// NewService creates a new Assistant service.
func NewService(
	logger *slog.Logger,
	llm llmClient,
	cfg config.AssistantConfig,
) *Service {
	return &Service{
		log: logger.With("service", "assistant"),
		llm: llm,
		cfg: cfg,
	}
}

// Enabled reports whether the assistant can serve requests.
func (s *Service) Enabled() bool {
	return s.cfg.Enabled() && s.llm != nil
}

// complete sends one message exchange and returns the response text.
func (s *Service) complete(ctx context.Context, params anthropic.MessageNewParams) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	msg, err := s.llm.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("llm api call: %w", err)
	}
	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty llm response")
	}

	var b strings.Builder
	for _, block := range msg.Content {
		b.WriteString(block.Text)
	}
	return b.String(), nil
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
