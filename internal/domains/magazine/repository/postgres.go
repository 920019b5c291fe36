package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/magazine"
	"catalog-backend/pkg/database"
	"catalog-backend/pkg/logger"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) magazine.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, entity *magazine.Magazine) (*magazine.Magazine, error) {
	const insertPublication = `
		INSERT INTO publications (type, title, publication_date)
		VALUES ('MAGAZINE', $1, $2)
		RETURNING id
	`
	const insertMagazine = `
		INSERT INTO magazines (id, issue_number)
		VALUES ($1, $2)
	`
	const insertAssociation = `
		INSERT INTO magazine_authors (magazine_id, author_id, position)
		VALUES ($1, $2, $3)
	`

	created := *entity

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertPublication,
			entity.Title,
			entity.PublicationDate.Time,
		).Scan(&created.ID); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, insertMagazine, created.ID, entity.IssueNumber); err != nil {
			return err
		}

		for i, a := range entity.Authors {
			if _, err := tx.Exec(ctx, insertAssociation, created.ID, a.ID, i); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.ConstraintName {
			case "magazines_issue_number_key":
				return nil, magazine.ErrIssueNumberExists
			case "magazine_authors_author_id_fkey":
				return nil, magazine.ErrAuthorNotFound
			}
		}
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create magazine: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*magazine.Magazine, error) {
	const query = `
		SELECT m.id, m.issue_number, p.title, p.publication_date
		FROM magazines m
		JOIN publications p ON p.id = m.id
		WHERE m.id = $1
	`

	var entity magazine.Magazine
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&entity.ID,
		&entity.IssueNumber,
		&entity.Title,
		&entity.PublicationDate.Time,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", magazine.ErrMagazineNotFound, id)
	}
	if err != nil {
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get magazine: %w", err)
	}

	authors, err := r.authorsByMagazine(ctx, id)
	if err != nil {
		return nil, err
	}
	entity.Authors = authors

	return &entity, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]magazine.Magazine, error) {
	const query = `
		SELECT m.id, m.issue_number, p.title, p.publication_date
		FROM magazines m
		JOIN publications p ON p.id = m.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("GetAll: database error", err)
		return nil, fmt.Errorf("failed to list magazines: %w", err)
	}
	defer rows.Close()

	var entities []magazine.Magazine
	for rows.Next() {
		var entity magazine.Magazine
		if err := rows.Scan(
			&entity.ID,
			&entity.IssueNumber,
			&entity.Title,
			&entity.PublicationDate.Time,
		); err != nil {
			return nil, fmt.Errorf("failed to scan magazine: %w", err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read magazines: %w", err)
	}

	for i := range entities {
		authors, err := r.authorsByMagazine(ctx, entities[i].ID)
		if err != nil {
			return nil, err
		}
		entities[i].Authors = authors
	}

	return entities, nil
}

func (r *postgresRepository) authorsByMagazine(ctx context.Context, magazineID int64) ([]magazine.AuthorBasic, error) {
	const query = `
		SELECT a.id, a.name, a.nationality
		FROM magazine_authors ma
		JOIN authors a ON a.id = ma.author_id
		WHERE ma.magazine_id = $1
		ORDER BY ma.position
	`

	rows, err := r.pool.Query(ctx, query, magazineID)
	if err != nil {
		logger.Error("authorsByMagazine: database error", err)
		return nil, fmt.Errorf("failed to list magazine authors: %w", err)
	}
	defer rows.Close()

	var authors []magazine.AuthorBasic
	for rows.Next() {
		var a magazine.AuthorBasic
		if err := rows.Scan(&a.ID, &a.Name, &a.Nationality); err != nil {
			return nil, fmt.Errorf("failed to scan magazine author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read magazine authors: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) ExistsByIssueNumber(ctx context.Context, issueNumber int) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM magazines WHERE issue_number = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, issueNumber).Scan(&exists); err != nil {
		logger.Error("ExistsByIssueNumber: database error", err)
		return false, fmt.Errorf("failed to check issue number: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) FindAuthorByID(ctx context.Context, id int64) (*magazine.AuthorBasic, error) {
	const query = `SELECT id, name, nationality FROM authors WHERE id = $1`

	var basic magazine.AuthorBasic
	err := r.pool.QueryRow(ctx, query, id).Scan(&basic.ID, &basic.Name, &basic.Nationality)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("FindAuthorByID: database error", err)
		return nil, fmt.Errorf("failed to resolve author: %w", err)
	}

	return &basic, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const deleteAssociations = `DELETE FROM magazine_authors WHERE magazine_id = $1`
	const deleteMagazine = `DELETE FROM magazines WHERE id = $1`
	const deletePublication = `DELETE FROM publications WHERE id = $1`

	deleted, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		if _, err := tx.Exec(ctx, deleteAssociations, id); err != nil {
			return false, err
		}

		tag, err := tx.Exec(ctx, deleteMagazine, id)
		if err != nil {
			return false, err
		}
		if tag.RowsAffected() == 0 {
			return false, nil
		}

		if _, err := tx.Exec(ctx, deletePublication, id); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		logger.Error("Delete: database error", err)
		return false, fmt.Errorf("failed to delete magazine: %w", err)
	}

	return deleted, nil
}
