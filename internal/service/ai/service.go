package ai

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/clancybot/clancy/backend/internal/analysis/majors"
	"github.com/clancybot/clancy/backend/internal/config"
)

// ErrGenerationUnavailable is the single failure value the gateway exposes.
// Callers never distinguish transport, quota or empty-output causes; the
// recovery action (re-prompt and let the user retry) is the same for all.
var ErrGenerationUnavailable = errors.New("text generation unavailable")

// Service wraps calls to the external generative text backend.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
}

// NewService creates a gateway backed by the configured chat model.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, err
	}
	return &Service{chatModel: chatModel, cfg: cfg}, nil
}

// Generate sends a single prompt under the assistant persona and returns the
// generated text. Any backend error collapses to ErrGenerationUnavailable.
func (s *Service) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(systemPersona(s.cfg.AssistantName)),
		schema.UserMessage(prompt),
	}

	response, err := s.chatModel.Generate(ctx, messages, model.WithMaxTokens(maxTokens))
	if err != nil {
		log.Printf("[ai] generation failed: %v", err)
		return "", ErrGenerationUnavailable
	}

	content := strings.TrimSpace(response.Content)
	if content == "" {
		log.Printf("[ai] generation returned empty content")
		return "", ErrGenerationUnavailable
	}
	return content, nil
}

// GenerateMajorsList asks for exactly four majors related to the career field
// and validates the shape of every answer before trusting it. The model is
// not contractually obligated to follow formatting instructions, so each
// failed attempt retries with a terser corrective prompt until the configured
// budget runs out; exhaustion yields an empty string.
func (s *Service) GenerateMajorsList(ctx context.Context, careerField string) string {
	prompt := majorsListPrompt(careerField)

	for attempt := 1; attempt <= s.cfg.MajorsMaxAttempts; attempt++ {
		raw, err := s.Generate(ctx, prompt, majorsListMaxTokens)
		if err != nil {
			prompt = majorsListRetryPrompt()
			continue
		}

		parsed := majors.Parse(raw)
		if len(parsed) == majors.ListLength {
			return strings.Join(parsed, ", ")
		}

		log.Printf("[ai] attempt %d: got %d majors, retrying", attempt, len(parsed))
		prompt = majorsListRetryPrompt()
	}

	return ""
}
