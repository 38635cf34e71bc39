package repository

import (
	"context"
	"errors"
	"time"

	"campushire/internal/database"
	"campushire/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrSavedJobNotFound = errors.New("saved job not found")
	ErrAlreadySaved     = errors.New("job already saved")
)

type SavedJobRepository interface {
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]job.SavedJob, error)
	Save(ctx context.Context, studentID, jobID uuid.UUID) error
	Unsave(ctx context.Context, studentID, jobID uuid.UUID) error
}

type PostgresSavedJobRepository struct {
	db database.DB
}

func NewPostgresSavedJobRepository(db database.DB) *PostgresSavedJobRepository {
	return &PostgresSavedJobRepository{db: db}
}

func (r *PostgresSavedJobRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]job.SavedJob, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.student_id, s.created_at,
		       j.id, j.company_id, j.category_id, j.title, j.description, j.location,
		       j.job_type, j.salary_min, j.salary_max, j.experience_required,
		       j.application_deadline, j.created_at,
		       COALESCE(c.name, ''), COALESCE(cat.name, ''),
		       (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id)
		FROM saved_jobs s
		JOIN jobs j ON j.id = s.job_id
		LEFT JOIN companies c ON c.id = j.company_id
		LEFT JOIN categories cat ON cat.id = j.category_id
		WHERE s.student_id = $1`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.SavedJob, 0)
	for rows.Next() {
		var sj job.SavedJob
		var jobType string
		err := rows.Scan(
			&sj.StudentID, &sj.CreatedAt,
			&sj.Job.ID, &sj.Job.CompanyID, &sj.Job.CategoryID, &sj.Job.Title,
			&sj.Job.Description, &sj.Job.Location, &jobType,
			&sj.Job.SalaryMin, &sj.Job.SalaryMax, &sj.Job.ExperienceRequired,
			&sj.Job.ApplicationDeadline, &sj.Job.CreatedAt,
			&sj.Job.CompanyName, &sj.Job.CategoryName, &sj.Job.ApplicationCount,
		)
		if err != nil {
			return nil, err
		}
		sj.Job.JobType = job.Type(jobType)
		sj.JobID = sj.Job.ID
		out = append(out, sj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSavedJobRepository) Save(ctx context.Context, studentID, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (student_id, job_id, created_at) VALUES ($1, $2, $3)`,
		studentID, jobID, time.Now().UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadySaved
		}
		return err
	}
	return nil
}

func (r *PostgresSavedJobRepository) Unsave(ctx context.Context, studentID, jobID uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE student_id = $1 AND job_id = $2`,
		studentID, jobID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}
