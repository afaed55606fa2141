package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-tracker/internal/api/dto"
	"github.com/spec-kit/job-tracker/internal/assistant"
	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

// Generator produces AI-assisted documents.
type Generator interface {
	TailorResume(ctx context.Context, req assistant.Request) (string, error)
	WriteCoverLetter(ctx context.Context, req assistant.Request) (string, error)
}

// AIHandler proxies generation requests to the configured provider.
type AIHandler struct {
	generator Generator
}

func NewAIHandler(generator Generator) *AIHandler {
	return &AIHandler{generator: generator}
}

// Tailor POST /ai/tailor.
func (h *AIHandler) Tailor(c *fiber.Ctx) error {
	return h.generate(c, h.generator.TailorResume)
}

// CoverLetter POST /ai/cover-letter.
func (h *AIHandler) CoverLetter(c *fiber.Ctx) error {
	return h.generate(c, h.generator.WriteCoverLetter)
}

func (h *AIHandler) generate(c *fiber.Ctx, fn func(context.Context, assistant.Request) (string, error)) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	result, err := fn(c.UserContext(), req.ToAssistant())
	if err != nil {
		return err
	}
	return c.JSON(dto.GenerateResponse{Result: result})
}
