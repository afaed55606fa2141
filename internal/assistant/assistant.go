package assistant

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

// Output caps per generator.
const (
	TailorMaxTokens      = 2048
	CoverLetterMaxTokens = 1024
)

// Request carries the inputs embedded into every prompt.
type Request struct {
	JobDescription string
	Resume         string
	Company        string
	Position       string
}

// Assistant proxies a job description and resume to a text-generation provider.
// Each call is a single synchronous round trip with no retry or caching.
type Assistant struct {
	model     llms.Model
	keyEnvVar string
	logger    *zap.Logger
}

// New creates an Assistant. A nil model means no credential is configured and
// every call fails with a configuration error naming keyEnvVar.
func New(model llms.Model, keyEnvVar string, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{model: model, keyEnvVar: keyEnvVar, logger: logger.Named("assistant")}
}

// Configured reports whether a provider is available.
func (a *Assistant) Configured() bool {
	return a.model != nil
}

// TailorResume rewrites the resume to emphasize what the job asks for.
func (a *Assistant) TailorResume(ctx context.Context, req Request) (string, error) {
	return a.generate(ctx, "tailor", tailorPrompt, req, TailorMaxTokens)
}

// WriteCoverLetter drafts a cover letter for the job.
func (a *Assistant) WriteCoverLetter(ctx context.Context, req Request) (string, error) {
	return a.generate(ctx, "cover_letter", coverLetterPrompt, req, CoverLetterMaxTokens)
}

func (a *Assistant) generate(ctx context.Context, kind, promptName string, req Request, maxTokens int) (string, error) {
	if a.model == nil {
		return "", apperrors.NewConfigError(fmt.Sprintf("%s is not set", a.keyEnvVar))
	}

	prompt, err := renderPrompt(promptName, req)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, a.model, prompt, llms.WithMaxTokens(maxTokens))
	if err != nil {
		a.logger.Error("generation failed", zap.String("kind", kind), zap.Error(err))
		return "", apperrors.NewUpstreamError(err)
	}
	return text, nil
}
