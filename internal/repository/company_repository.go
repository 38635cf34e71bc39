package repository

import (
	"context"
	"errors"
	"time"

	"campushire/internal/database"
	"campushire/internal/domain/company"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (company.Company, error)
	Create(ctx context.Context, c company.Company) error
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	var c company.Company
	row := r.db.QueryRow(ctx,
		`SELECT id, name, industry, location, description, created_at FROM companies WHERE id = $1`, id)
	if err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.Location, &c.Description, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c company.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, name, industry, location, description, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Industry, c.Location, c.Description, time.Now().UTC(),
	)
	return err
}
