package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/publication"
	"catalog-backend/pkg/logger"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) publication.Repository {
	return &postgresRepository{pool: pool}
}

func scanSummaries(rows pgx.Rows) ([]publication.Summary, error) {
	defer rows.Close()

	var summaries []publication.Summary
	for rows.Next() {
		var s publication.Summary
		var discriminator string
		if err := rows.Scan(&s.ID, &discriminator, &s.Title, &s.PublicationDate.Time); err != nil {
			return nil, fmt.Errorf("failed to scan publication: %w", err)
		}
		s.Type = publication.TypeFromDiscriminator(discriminator)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read publications: %w", err)
	}

	return summaries, nil
}

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]publication.Summary, error) {
	const query = `
		SELECT id, type, title, publication_date
		FROM publications
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		logger.Error("List: database error", err)
		return nil, fmt.Errorf("failed to list publications: %w", err)
	}

	return scanSummaries(rows)
}

func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM publications`

	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		logger.Error("Count: database error", err)
		return 0, fmt.Errorf("failed to count publications: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) SearchByTitle(ctx context.Context, title string, t publication.Type) ([]publication.Summary, error) {
	const query = `
		SELECT id, type, title, publication_date
		FROM publications
		WHERE type = $1 AND title ILIKE '%' || $2 || '%'
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, string(t), title)
	if err != nil {
		logger.Error("SearchByTitle: database error", err)
		return nil, fmt.Errorf("failed to search publications: %w", err)
	}

	return scanSummaries(rows)
}
