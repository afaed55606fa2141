package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-tracker/internal/api/dto"
	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

// ResumeService stores the caller's resume text.
type ResumeService interface {
	Get(ctx context.Context, userID string) (string, error)
	Put(ctx context.Context, userID, resume string) error
}

// ResumeHandler exposes the per-user resume store.
type ResumeHandler struct {
	service ResumeService
}

func NewResumeHandler(resumeService ResumeService) *ResumeHandler {
	return &ResumeHandler{service: resumeService}
}

// GetResume GET /resume.
func (h *ResumeHandler) GetResume(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	resume, err := h.service.Get(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ResumeResponse{Resume: resume})
}

// PutResume PUT /resume. The text is stored exactly as sent.
func (h *ResumeHandler) PutResume(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.ResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Resume == nil {
		return apperrors.NewValidationError("resume is required", nil)
	}
	if err := h.service.Put(c.UserContext(), principal.UserID, *req.Resume); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Resume saved"})
}
