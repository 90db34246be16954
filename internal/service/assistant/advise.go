package assistant

import (
	"context"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/vrusch/ModSkl/internal/domain"
)

const maxQuestionLen = 2000

// AdviseInput holds one question plus the inventory it may refer to.
type AdviseInput struct {
	Question string
	Owned    []domain.Paint
}

// Validate checks all fields and collects all errors.
func (i AdviseInput) Validate() error {
	var errs []domain.FieldError

	q := strings.TrimSpace(i.Question)
	if q == "" {
		errs = append(errs, domain.FieldError{Field: "question", Message: "required"})
	}
	if len(q) > maxQuestionLen {
		errs = append(errs, domain.FieldError{Field: "question", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Advise answers a modelling question with the user's owned paints as
// read-only context. The model never mutates anything; the answer is
// free text for display.
func (s *Service) Advise(ctx context.Context, input AdviseInput) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}
	if err := input.Validate(); err != nil {
		return "", err
	}

	return s.complete(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.cfg.Model),
		MaxTokens: s.cfg.MaxTokens,
		System: []anthropic.TextBlockParam{
			{Text: buildSystemPrompt(input.Owned)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(strings.TrimSpace(input.Question))),
		},
	})
}

// buildSystemPrompt renders the inventory as one "Brand Code (Name)"
// line per owned paint.
func buildSystemPrompt(owned []domain.Paint) string {
	var b strings.Builder
	b.WriteString("You are a helpful assistant for a scale-modelling hobbyist. ")
	b.WriteString("Answer questions about paints, mixing, thinning, and color matching. ")
	b.WriteString("Be concise and practical.\n")

	ownedCount := 0
	for _, p := range owned {
		if p.Status != domain.StatusOwned {
			continue
		}
		if ownedCount == 0 {
			b.WriteString("\nThe user currently owns these paints:\n")
		}
		ownedCount++
		b.WriteString(p.Brand)
		b.WriteString(" ")
		b.WriteString(p.Code)
		if p.Name != "" {
			b.WriteString(" (")
			b.WriteString(p.Name)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	if ownedCount == 0 {
		b.WriteString("\nThe user's inventory is empty.\n")
	}
	return b.String()
}
