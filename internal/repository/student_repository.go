package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"campushire/internal/database"
	"campushire/internal/domain/student"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrStudentNotFound = errors.New("student not found")

type StudentRepository interface {
	ListStudents(ctx context.Context) ([]student.Student, error)
	GetByID(ctx context.Context, id uuid.UUID) (student.Student, error)
	Create(ctx context.Context, s student.Student) error
	Update(ctx context.Context, s student.Student) error
}

const studentSelect = `
	SELECT id, name, university, major, year, gpa, age, availability,
	       expected_salary_min, expected_salary_max,
	       skills, experiences, links, created_at, updated_at
	FROM students`

type PostgresStudentRepository struct {
	db database.DB
}

func NewPostgresStudentRepository(db database.DB) *PostgresStudentRepository {
	return &PostgresStudentRepository{db: db}
}

func (r *PostgresStudentRepository) ListStudents(ctx context.Context) ([]student.Student, error) {
	rows, err := r.db.Query(ctx, studentSelect)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]student.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStudentRepository) GetByID(ctx context.Context, id uuid.UUID) (student.Student, error) {
	row := r.db.QueryRow(ctx, studentSelect+` WHERE id = $1`, id)
	s, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.Student{}, ErrStudentNotFound
		}
		return student.Student{}, err
	}
	return s, nil
}

func (r *PostgresStudentRepository) Create(ctx context.Context, s student.Student) error {
	skills, experiences, links, err := marshalLists(s)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = r.db.Exec(ctx,
		`INSERT INTO students (id, name, university, major, year, gpa, age, availability,
		                       expected_salary_min, expected_salary_max,
		                       skills, experiences, links, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)`,
		s.ID, s.Name, s.University, s.Major, s.Year, s.GPA, s.Age, s.Availability,
		s.ExpectedSalaryMin, s.ExpectedSalaryMax, skills, experiences, links, now,
	)
	return err
}

func (r *PostgresStudentRepository) Update(ctx context.Context, s student.Student) error {
	skills, experiences, links, err := marshalLists(s)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE students
		 SET name = $2, university = $3, major = $4, year = $5, gpa = $6, age = $7,
		     availability = $8, expected_salary_min = $9, expected_salary_max = $10,
		     skills = $11, experiences = $12, links = $13, updated_at = $14
		 WHERE id = $1`,
		s.ID, s.Name, s.University, s.Major, s.Year, s.GPA, s.Age,
		s.Availability, s.ExpectedSalaryMin, s.ExpectedSalaryMax,
		skills, experiences, links, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStudentNotFound
	}
	return nil
}

func marshalLists(s student.Student) ([]byte, []byte, []byte, error) {
	skills, err := json.Marshal(s.Skills)
	if err != nil {
		return nil, nil, nil, err
	}
	experiences, err := json.Marshal(s.Experiences)
	if err != nil {
		return nil, nil, nil, err
	}
	links, err := json.Marshal(s.Links)
	if err != nil {
		return nil, nil, nil, err
	}
	return skills, experiences, links, nil
}

func scanStudent(row database.Row) (student.Student, error) {
	var s student.Student
	var skills, experiences, links []byte
	err := row.Scan(
		&s.ID, &s.Name, &s.University, &s.Major, &s.Year, &s.GPA, &s.Age,
		&s.Availability, &s.ExpectedSalaryMin, &s.ExpectedSalaryMax,
		&skills, &experiences, &links, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return student.Student{}, err
	}
	if err := json.Unmarshal(skills, &s.Skills); err != nil {
		return student.Student{}, err
	}
	if err := json.Unmarshal(experiences, &s.Experiences); err != nil {
		return student.Student{}, err
	}
	if err := json.Unmarshal(links, &s.Links); err != nil {
		return student.Student{}, err
	}
	return s, nil
}
