package repository

import (
	"context"
	"errors"

	"campushire/internal/database"
	"campushire/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and student")
)

type ApplicationRepository interface {
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]application.Application, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]application.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	Create(ctx context.Context, a application.Application) error

	// UpdateStatusIfCurrent persists a transition only when the stored
	// status still equals expected. It reports false when the optimistic
	// precondition failed because a concurrent writer got there first.
	UpdateStatusIfCurrent(ctx context.Context, a application.Application, expected application.Status) (bool, error)

	UpdateFeedback(ctx context.Context, id uuid.UUID, feedback string) error
}

const applicationSelect = `
	SELECT a.id, a.job_id, a.student_id, j.company_id, a.status, a.cover_letter,
	       a.feedback, a.applied_at, a.viewed_at, a.interview_date,
	       a.responded_at, a.withdrawn_at,
	       COALESCE(j.title, ''), COALESCE(c.name, ''), COALESCE(s.name, '')
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	LEFT JOIN companies c ON c.id = j.company_id
	LEFT JOIN students s ON s.id = a.student_id`

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, applicationSelect+` WHERE j.company_id = $1`, companyID)
	if err != nil {
		return nil, err
	}
	return scanApplications(rows)
}

func (r *PostgresApplicationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, applicationSelect+` WHERE a.student_id = $1`, studentID)
	if err != nil {
		return nil, err
	}
	return scanApplications(rows)
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id)
	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, student_id, status, cover_letter, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.JobID, a.StudentID, string(a.Status), a.CoverLetter, a.AppliedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique violation on (job_id, student_id)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *PostgresApplicationRepository) UpdateStatusIfCurrent(ctx context.Context, a application.Application, expected application.Status) (bool, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE applications
		 SET status = $3, feedback = $4, viewed_at = $5, interview_date = $6,
		     responded_at = $7, withdrawn_at = $8
		 WHERE id = $1 AND status = $2`,
		a.ID, string(expected), string(a.Status), a.Feedback,
		a.ViewedAt, a.InterviewDate, a.RespondedAt, a.WithdrawnAt,
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresApplicationRepository) UpdateFeedback(ctx context.Context, id uuid.UUID, feedback string) error {
	n, err := r.db.Exec(ctx, `UPDATE applications SET feedback = $2 WHERE id = $1`, id, feedback)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func scanApplications(rows database.Rows) ([]application.Application, error) {
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var status string
	err := row.Scan(
		&a.ID, &a.JobID, &a.StudentID, &a.CompanyID, &status, &a.CoverLetter,
		&a.Feedback, &a.AppliedAt, &a.ViewedAt, &a.InterviewDate,
		&a.RespondedAt, &a.WithdrawnAt,
		&a.JobTitle, &a.CompanyName, &a.StudentName,
	)
	if err != nil {
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}
