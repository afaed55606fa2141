package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-tracker/internal/domain"
	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

func TestResumeService_RoundTripIsExact(t *testing.T) {
	users := newFakeUserRepo()
	users.byID["u-1"] = &domain.User{ID: "u-1", Username: "alice"}
	svc := NewResumeService(users)
	ctx := context.Background()

	resume, err := svc.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "", resume)

	text := "  Jane Doe\r\n\n\tGo, SQL  é中\n\n"
	require.NoError(t, svc.Put(ctx, "u-1", text))

	resume, err = svc.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, text, resume)

	require.NoError(t, svc.Put(ctx, "u-1", ""))
	resume, err = svc.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "", resume)
}

func TestResumeService_MissingAccountIsUnauthorized(t *testing.T) {
	svc := NewResumeService(newFakeUserRepo())

	_, err := svc.Get(context.Background(), "gone")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeUnauthorized))
	assert.True(t, apperrors.HasCode(svc.Put(context.Background(), "gone", "x"), apperrors.CodeUnauthorized))
}

func TestResumeService_RejectsNUL(t *testing.T) {
	users := newFakeUserRepo()
	users.byID["u-1"] = &domain.User{ID: "u-1", Username: "alice", Resume: "kept"}
	svc := NewResumeService(users)

	err := svc.Put(context.Background(), "u-1", "Jane\u0000Doe")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	resume, err := svc.Get(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "kept", resume)
}
