package seeder

import (
	"context"
	"fmt"

	"campushire/internal/database"
)

// schemaDDL is applied on boot; every statement is idempotent.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS companies (
		id UUID PRIMARY KEY REFERENCES users(id),
		name TEXT NOT NULL,
		industry TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY REFERENCES users(id),
		name TEXT NOT NULL,
		university TEXT NOT NULL DEFAULT '',
		major TEXT NOT NULL DEFAULT '',
		year INT NOT NULL DEFAULT 0,
		gpa DOUBLE PRECISION,
		age INT,
		availability BOOLEAN NOT NULL DEFAULT false,
		expected_salary_min INT,
		expected_salary_max INT,
		skills JSONB NOT NULL DEFAULT '[]',
		experiences JSONB NOT NULL DEFAULT '[]',
		links JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		company_id UUID NOT NULL REFERENCES companies(id),
		category_id UUID REFERENCES categories(id),
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		job_type TEXT NOT NULL,
		salary_min INT,
		salary_max INT,
		experience_required INT NOT NULL DEFAULT 0,
		application_deadline TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id UUID PRIMARY KEY,
		job_id UUID NOT NULL REFERENCES jobs(id),
		student_id UUID NOT NULL REFERENCES students(id),
		status TEXT NOT NULL DEFAULT 'PENDING',
		cover_letter TEXT NOT NULL DEFAULT '',
		feedback TEXT NOT NULL DEFAULT '',
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		viewed_at TIMESTAMPTZ,
		interview_date TIMESTAMPTZ,
		responded_at TIMESTAMPTZ,
		withdrawn_at TIMESTAMPTZ,
		UNIQUE (job_id, student_id)
	)`,
	`CREATE TABLE IF NOT EXISTS saved_jobs (
		student_id UUID NOT NULL REFERENCES students(id),
		job_id UUID NOT NULL REFERENCES jobs(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (student_id, job_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_company ON jobs(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_job ON applications(job_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_student ON applications(student_id)`,
}

// EnsureSchema creates any missing tables and indexes.
func EnsureSchema(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
