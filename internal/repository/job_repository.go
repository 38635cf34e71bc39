package repository

import (
	"context"
	"errors"

	"campushire/internal/database"
	"campushire/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// JobRepository supplies job collections to the listing engine. The
// engine itself never touches storage; scoping (public vs one company)
// happens here, every other constraint happens in the engine.
type JobRepository interface {
	ListJobs(ctx context.Context) ([]job.Job, error)
	ListJobsByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	Create(ctx context.Context, j job.Job) error
	Update(ctx context.Context, j job.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const jobSelect = `
	SELECT j.id, j.company_id, j.category_id, j.title, j.description, j.location,
	       j.job_type, j.salary_min, j.salary_max, j.experience_required,
	       j.application_deadline, j.created_at,
	       COALESCE(c.name, ''), COALESCE(cat.name, ''),
	       (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id)
	FROM jobs j
	LEFT JOIN companies c ON c.id = j.company_id
	LEFT JOIN categories cat ON cat.id = j.category_id`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, jobSelect)
	if err != nil {
		return nil, err
	}
	return scanJobs(rows)
}

func (r *PostgresJobRepository) ListJobsByCompany(ctx context.Context, companyID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, jobSelect+` WHERE j.company_id = $1`, companyID)
	if err != nil {
		return nil, err
	}
	return scanJobs(rows)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, company_id, category_id, title, description, location,
		                   job_type, salary_min, salary_max, experience_required,
		                   application_deadline, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		j.ID, j.CompanyID, j.CategoryID, j.Title, j.Description, j.Location,
		string(j.JobType), j.SalaryMin, j.SalaryMax, j.ExperienceRequired,
		j.ApplicationDeadline, j.CreatedAt,
	)
	return err
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET category_id = $2, title = $3, description = $4, location = $5,
		        job_type = $6, salary_min = $7, salary_max = $8,
		        experience_required = $9, application_deadline = $10
		 WHERE id = $1`,
		j.ID, j.CategoryID, j.Title, j.Description, j.Location,
		string(j.JobType), j.SalaryMin, j.SalaryMax, j.ExperienceRequired,
		j.ApplicationDeadline,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func scanJobs(rows database.Rows) ([]job.Job, error) {
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var jobType string
	err := row.Scan(
		&j.ID, &j.CompanyID, &j.CategoryID, &j.Title, &j.Description, &j.Location,
		&jobType, &j.SalaryMin, &j.SalaryMax, &j.ExperienceRequired,
		&j.ApplicationDeadline, &j.CreatedAt,
		&j.CompanyName, &j.CategoryName, &j.ApplicationCount,
	)
	if err != nil {
		return job.Job{}, err
	}
	j.JobType = job.Type(jobType)
	return j, nil
}
