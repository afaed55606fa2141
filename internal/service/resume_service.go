package service

import (
	"context"

	"github.com/spec-kit/job-tracker/internal/domain"
	"github.com/spec-kit/job-tracker/internal/repository"
	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

// ResumeService reads and overwrites the caller's single resume text.
type ResumeService struct {
	users repository.UserRepository
}

// NewResumeService constructs the service.
func NewResumeService(users repository.UserRepository) *ResumeService {
	return &ResumeService{users: users}
}

// Get returns the stored resume, or "" when none was saved.
func (s *ResumeService) Get(ctx context.Context, userID string) (string, error) {
	resume, err := s.users.GetResume(ctx, userID)
	if err != nil {
		return "", sessionUserError(err)
	}
	return resume, nil
}

// Put replaces the resume byte-for-byte.
func (s *ResumeService) Put(ctx context.Context, userID, resume string) error {
	if !domain.StorableText(resume) {
		return apperrors.NewValidationError("resume must not contain NUL characters", nil)
	}
	if err := s.users.UpdateResume(ctx, userID, resume); err != nil {
		return sessionUserError(err)
	}
	return nil
}

// A valid session whose account no longer exists is treated as unauthenticated.
func sessionUserError(err error) error {
	if apperrors.HasCode(err, apperrors.CodeNotFound) {
		return apperrors.NewUnauthorized("Unauthorized")
	}
	return err
}
