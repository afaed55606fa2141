package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/spec-kit/job-tracker/internal/config"
	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

type fakeModel struct {
	reply     string
	err       error
	calls     int
	prompt    string
	maxTokens int
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	opts := llms.CallOptions{}
	for _, opt := range options {
		opt(&opts)
	}
	f.maxTokens = opts.MaxTokens
	for _, m := range messages {
		for _, part := range m.Parts {
			if text, ok := part.(llms.TextContent); ok {
				f.prompt += text.Text
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.reply}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

var sample = Request{
	JobDescription: "Build APIs in Go.",
	Resume:         "Jane Doe\nBackend engineer",
	Company:        "Acme",
	Position:       "Engineer",
}

func TestTailorResume(t *testing.T) {
	model := &fakeModel{reply: "  tailored\n"}
	a := New(model, "GROQ_API_KEY", nil)

	out, err := a.TailorResume(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "  tailored\n", out)
	assert.Equal(t, 1, model.calls)
	assert.Equal(t, TailorMaxTokens, model.maxTokens)
	assert.Contains(t, model.prompt, "Job: Engineer at Acme")
	assert.Contains(t, model.prompt, "Build APIs in Go.")
	assert.Contains(t, model.prompt, "Jane Doe\nBackend engineer")
	assert.Contains(t, model.prompt, "don't invent experience")
}

func TestWriteCoverLetter(t *testing.T) {
	model := &fakeModel{reply: "Dear Acme"}
	a := New(model, "GROQ_API_KEY", nil)

	out, err := a.WriteCoverLetter(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "Dear Acme", out)
	assert.Equal(t, CoverLetterMaxTokens, model.maxTokens)
	assert.Contains(t, model.prompt, "cover letter")
	assert.Contains(t, model.prompt, "My Background (from resume):")
}

func TestMissingCredentialIsConfigError(t *testing.T) {
	a := New(nil, "GROQ_API_KEY", nil)
	assert.False(t, a.Configured())

	_, err := a.TailorResume(context.Background(), sample)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, apperrors.CodeConfig, de.Code)
	assert.Equal(t, 500, de.HTTPStatus)
	assert.Equal(t, "GROQ_API_KEY is not set", de.Message)

	_, err = a.WriteCoverLetter(context.Background(), sample)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConfig))
}

func TestProviderFailureIsUpstreamError(t *testing.T) {
	model := &fakeModel{err: errors.New("Rate limit reached for model")}
	a := New(model, "GROQ_API_KEY", nil)

	_, err := a.TailorResume(context.Background(), sample)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, apperrors.CodeUpstream, de.Code)
	assert.Equal(t, 500, de.HTTPStatus)
	assert.Contains(t, de.Message, "Rate limit reached for model")
	assert.Equal(t, 1, model.calls)
}

func TestNewModel_NoKeyReturnsNil(t *testing.T) {
	model, err := NewModel(context.Background(), config.AIConfig{Provider: config.ProviderGroq})
	require.NoError(t, err)
	assert.Nil(t, model)
}

func TestNewModel_Groq(t *testing.T) {
	model, err := NewModel(context.Background(), config.AIConfig{
		Provider:    config.ProviderGroq,
		GroqAPIKey:  "test-key",
		GroqModel:   "llama-3.3-70b-versatile",
		GroqBaseURL: "http://127.0.0.1:1/openai/v1",
	})
	require.NoError(t, err)
	assert.NotNil(t, model)
}

func TestCoverLetterPromptIsLiteral(t *testing.T) {
	prompt, err := renderPrompt(coverLetterPrompt, sample)
	require.NoError(t, err)

	want := `Write a compelling, personalized cover letter for this job application.

Job: Engineer at Acme

Job Description:
Build APIs in Go.

My Background (from resume):
Jane Doe
Backend engineer

Instructions:
- Professional but personable tone
- 3-4 short paragraphs
- Connect my specific experience to their specific needs
- Show genuine enthusiasm for the role and company
- Strong opening hook — do NOT start with "I am writing to apply..."
- End with a confident call to action
- Return ONLY the cover letter, no subject line or commentary
`
	assert.Equal(t, want, prompt)
}
