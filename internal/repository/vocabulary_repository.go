package repository

import (
	"context"

	"campushire/internal/database"
)

// FilterOptions are the known vocabularies the filter dropdowns offer.
// The listing engine treats every entry as an opaque string.
type FilterOptions struct {
	Universities []string
	Majors       []string
	Locations    []string
	Categories   []string
}

type VocabularyRepository interface {
	FilterOptions(ctx context.Context) (FilterOptions, error)
}

type PostgresVocabularyRepository struct {
	db database.DB
}

func NewPostgresVocabularyRepository(db database.DB) *PostgresVocabularyRepository {
	return &PostgresVocabularyRepository{db: db}
}

func (r *PostgresVocabularyRepository) FilterOptions(ctx context.Context) (FilterOptions, error) {
	var out FilterOptions
	var err error

	if out.Universities, err = r.distinct(ctx, `SELECT DISTINCT university FROM students WHERE university <> '' ORDER BY university`); err != nil {
		return FilterOptions{}, err
	}
	if out.Majors, err = r.distinct(ctx, `SELECT DISTINCT major FROM students WHERE major <> '' ORDER BY major`); err != nil {
		return FilterOptions{}, err
	}
	if out.Locations, err = r.distinct(ctx, `SELECT DISTINCT location FROM jobs WHERE location <> '' ORDER BY location`); err != nil {
		return FilterOptions{}, err
	}
	if out.Categories, err = r.distinct(ctx, `SELECT name FROM categories ORDER BY name`); err != nil {
		return FilterOptions{}, err
	}

	return out, nil
}

func (r *PostgresVocabularyRepository) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
