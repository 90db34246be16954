package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/vrusch/ModSkl/internal/domain"
)

// LabelGuess is the structured best-effort reading of a paint label.
// Any field may be empty; the SPA treats the whole guess as an
// externally-prefilled form seed, never as authoritative data.
type LabelGuess struct {
	Brand string `json:"brand"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Hex   string `json:"hex"`
}

// RecognizeInput holds a label photo for recognition.
type RecognizeInput struct {
	// ImageBase64 is the raw base64 payload, without a data: prefix.
	ImageBase64 string
	// MediaType is the image MIME type; defaults to image/jpeg.
	MediaType string
}

// Validate checks all fields and collects all errors.
func (i RecognizeInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.ImageBase64) == "" {
		errs = append(errs, domain.FieldError{Field: "image", Message: "required"})
	}
	if i.MediaType != "" {
		switch i.MediaType {
		case "image/jpeg", "image/png", "image/gif", "image/webp":
		default:
			errs = append(errs, domain.FieldError{Field: "media_type", Message: "unsupported image type"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

const recognizePrompt = `You are reading a photo of a hobby paint bottle or spray can label.

Identify the paint and output ONLY a valid JSON object matching this exact schema:
{
  "brand": "<manufacturer name, e.g. Tamiya, Vallejo, Gunze, MRP>",
  "code": "<manufacturer catalog code, e.g. XF-1, 70.950, H1>",
  "name": "<color name as printed>",
  "type": "<paint type if visible: Akryl, Lacquer, Email, Sprej, Wash, Pigment, or empty>",
  "hex": "<approximate color as #RRGGBB, or empty>"
}

Rules:
- If the photo does not show a paint product, output exactly: null
- Leave fields you cannot read as empty strings
- Output ONLY the JSON or null, no markdown, no explanations`

// RecognizeLabel asks the model to read a paint label photo. A nil
// guess with a nil error means the model saw no paint in the image.
func (s *Service) RecognizeLabel(ctx context.Context, input RecognizeInput) (*LabelGuess, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	mediaType := input.MediaType
	if mediaType == "" {
		mediaType = "image/jpeg"
	}

	text, err := s.complete(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.cfg.Model),
		MaxTokens: s.cfg.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mediaType, input.ImageBase64),
				anthropic.NewTextBlock(recognizePrompt),
			),
		},
	})
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(strings.TrimSpace(text), "null") {
		return nil, nil
	}

	jsonStr, err := extractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("extract json from response: %w", err)
	}
	if !json.Valid([]byte(jsonStr)) {
		return nil, fmt.Errorf("response does not contain valid JSON")
	}

	var guess LabelGuess
	if err := json.Unmarshal([]byte(jsonStr), &guess); err != nil {
		return nil, fmt.Errorf("unmarshal label guess: %w", err)
	}

	guess.Brand = strings.TrimSpace(guess.Brand)
	guess.Code = strings.TrimSpace(guess.Code)
	guess.Name = strings.TrimSpace(guess.Name)
	guess.Type = strings.TrimSpace(guess.Type)
	guess.Hex = strings.TrimSpace(guess.Hex)

	if guess.Brand == "" && guess.Code == "" {
		return nil, nil
	}

	s.log.InfoContext(ctx, "label recognized",
		slog.String("brand", guess.Brand),
		slog.String("code", guess.Code),
	)

	return &guess, nil
}
