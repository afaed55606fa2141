package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/job-tracker/internal/domain"
	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.User
	getErr  error
	creates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Username == user.Username {
			return apperrors.NewConflict("username already taken", nil)
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.byID[user.ID] = &stored
	f.creates++
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, apperrors.NewNotFound("user", nil)
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.NewNotFound("user", nil)
}

func (f *fakeUserRepo) GetResume(_ context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		return u.Resume, nil
	}
	return "", apperrors.NewNotFound("user", nil)
}

func (f *fakeUserRepo) UpdateResume(_ context.Context, id, resume string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return apperrors.NewNotFound("user", nil)
	}
	u.Resume = resume
	return nil
}

// fakeJobRepo mirrors the owner-scoped SQL of the Postgres repository.
type fakeJobRepo struct {
	mu    sync.Mutex
	jobs  map[string]*domain.Job
	clock time.Time
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*domain.Job{}, clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeJobRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	job.ID = uuid.NewString()
	job.CreatedAt = f.tick()
	job.UpdatedAt = job.CreatedAt
	stored := *job
	f.jobs[job.ID] = &stored
	return nil
}

func (f *fakeJobRepo) ListByUser(_ context.Context, userID string) ([]domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Job, 0)
	for _, j := range f.jobs {
		if j.UserID == userID {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out, nil
}

func (f *fakeJobRepo) owned(id, userID string) (*domain.Job, bool) {
	j, ok := f.jobs[id]
	if !ok || j.UserID != userID {
		return nil, false
	}
	return j, true
}

func (f *fakeJobRepo) GetForUser(_ context.Context, id, userID string) (*domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.owned(id, userID)
	if !ok {
		return nil, apperrors.NewNotFound("job", nil)
	}
	copied := *j
	return &copied, nil
}

func (f *fakeJobRepo) UpdateForUser(_ context.Context, id, userID string, patch domain.JobPatch) (*domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.owned(id, userID)
	if !ok {
		return nil, apperrors.NewNotFound("job", nil)
	}
	if patch.Company != nil {
		j.Company = *patch.Company
	}
	if patch.Position != nil {
		j.Position = *patch.Position
	}
	if patch.Status != nil {
		j.Status = *patch.Status
	}
	if patch.Location != nil {
		j.Location = *patch.Location
	}
	if patch.Salary != nil {
		j.Salary = *patch.Salary
	}
	if patch.JobDescription != nil {
		j.JobDescription = *patch.JobDescription
	}
	if patch.Notes != nil {
		j.Notes = *patch.Notes
	}
	j.UpdatedAt = f.tick()
	copied := *j
	return &copied, nil
}

func (f *fakeJobRepo) DeleteForUser(_ context.Context, id, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.owned(id, userID); !ok {
		return apperrors.NewNotFound("job", nil)
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) DeleteAllForUser(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, j := range f.jobs {
		if j.UserID == userID {
			delete(f.jobs, id)
			n++
		}
	}
	return n, nil
}
