package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-tracker/internal/domain"
	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

// JobRepository encapsulates job persistence. Every method except Create is
// scoped by owner: rows belonging to another user behave as if absent.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	ListByUser(ctx context.Context, userID string) ([]domain.Job, error)
	GetForUser(ctx context.Context, id, userID string) (*domain.Job, error)
	UpdateForUser(ctx context.Context, id, userID string, patch domain.JobPatch) (*domain.Job, error)
	DeleteForUser(ctx context.Context, id, userID string) error
	DeleteAllForUser(ctx context.Context, userID string) (int64, error)
}

const jobColumns = `id, user_id, company, position, status, location, salary, job_description, notes, created_at, updated_at`

type jobRepository struct {
	db DBTX
}

// NewJobRepository instantiates repository.
func NewJobRepository(db DBTX) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (user_id, company, position, status, location, salary, job_description, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	if err := r.db.QueryRow(ctx, query,
		job.UserID,
		job.Company,
		job.Position,
		string(job.Status),
		job.Location,
		job.Salary,
		job.JobDescription,
		job.Notes,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *jobRepository) ListByUser(ctx context.Context, userID string) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE user_id=$1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (r *jobRepository) GetForUser(ctx context.Context, id, userID string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id=$1 AND user_id=$2`

	job, err := scanJob(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", nil)
		}
		return nil, fmt.Errorf("select job: %w", err)
	}
	return job, nil
}

// UpdateForUser merges patch into the owned row in a single statement.
func (r *jobRepository) UpdateForUser(ctx context.Context, id, userID string, patch domain.JobPatch) (*domain.Job, error) {
	query := `
        UPDATE jobs SET
            company=COALESCE($3, company),
            position=COALESCE($4, position),
            status=COALESCE($5, status),
            location=COALESCE($6, location),
            salary=COALESCE($7, salary),
            job_description=COALESCE($8, job_description),
            notes=COALESCE($9, notes),
            updated_at=clock_timestamp()
        WHERE id=$1 AND user_id=$2
        RETURNING ` + jobColumns

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	job, err := scanJob(r.db.QueryRow(ctx, query,
		id,
		userID,
		patch.Company,
		patch.Position,
		status,
		patch.Location,
		patch.Salary,
		patch.JobDescription,
		patch.Notes,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", nil)
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

func (r *jobRepository) DeleteForUser(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM jobs WHERE id=$1 AND user_id=$2`

	cmd, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NewNotFound("job", nil)
	}
	return nil
}

func (r *jobRepository) DeleteAllForUser(ctx context.Context, userID string) (int64, error) {
	const query = `DELETE FROM jobs WHERE user_id=$1`

	cmd, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("delete jobs: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var (
		job    domain.Job
		status string
	)
	if err := row.Scan(
		&job.ID,
		&job.UserID,
		&job.Company,
		&job.Position,
		&status,
		&job.Location,
		&job.Salary,
		&job.JobDescription,
		&job.Notes,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		return nil, err
	}
	job.Status = domain.JobStatus(status)
	return &job, nil
}
