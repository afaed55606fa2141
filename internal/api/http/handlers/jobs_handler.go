package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-tracker/internal/api/dto"
	"github.com/spec-kit/job-tracker/internal/domain"
	"github.com/spec-kit/job-tracker/internal/service"
	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

// JobService is the owner-scoped job behavior the endpoints need.
type JobService interface {
	List(ctx context.Context, userID string) ([]domain.Job, error)
	Create(ctx context.Context, userID string, input service.JobCreateInput) (*domain.Job, error)
	Update(ctx context.Context, userID, id string, patch domain.JobPatch) (*domain.Job, error)
	Delete(ctx context.Context, userID, id string) error
	DeleteAll(ctx context.Context, userID string) (int64, error)
}

// JobsHandler manages the caller's job applications.
type JobsHandler struct {
	service JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// ListJobs GET /jobs.
func (h *JobsHandler) ListJobs(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	jobs, err := h.service.List(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponses(jobs))
}

// CreateJob POST /jobs.
func (h *JobsHandler) CreateJob(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.service.Create(c.UserContext(), principal.UserID, service.JobCreateInput{
		Company:        req.Company,
		Position:       req.Position,
		Status:         req.Status,
		Location:       req.Location,
		Salary:         req.Salary,
		JobDescription: req.JobDescription,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}

// UpdateJob PUT /jobs/:id.
func (h *JobsHandler) UpdateJob(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.service.Update(c.UserContext(), principal.UserID, c.Params("id"), req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}

// DeleteJob DELETE /jobs/:id.
func (h *JobsHandler) DeleteJob(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), principal.UserID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Job deleted"})
}

// DeleteAllJobs DELETE /jobs.
func (h *JobsHandler) DeleteAllJobs(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	deleted, err := h.service.DeleteAll(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Deleted %d jobs", deleted)})
}
