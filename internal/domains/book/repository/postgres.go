package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/book"
	"catalog-backend/pkg/database"
	"catalog-backend/pkg/logger"
)

const selectBook = `
	SELECT b.id, p.title, b.isbn, b.author_id, p.publication_date,
	       a.id, a.name, a.nationality
	FROM books b
	JOIN publications p ON p.id = b.id
	JOIN authors a ON a.id = b.author_id
`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func scanBook(row pgx.Row) (*book.Book, error) {
	var entity book.Book
	err := row.Scan(
		&entity.ID,
		&entity.Title,
		&entity.ISBN,
		&entity.AuthorID,
		&entity.PublicationDate.Time,
		&entity.Author.ID,
		&entity.Author.Name,
		&entity.Author.Nationality,
	)
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *book.Book) (*book.Book, error) {
	const insertPublication = `
		INSERT INTO publications (type, title, publication_date)
		VALUES ('BOOK', $1, $2)
		RETURNING id
	`
	const insertBook = `
		INSERT INTO books (id, isbn, author_id)
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

		_, err := tx.Exec(ctx, insertBook, created.ID, entity.ISBN, entity.AuthorID)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.ConstraintName {
			case "books_isbn_key":
				return nil, book.ErrISBNExists
			case "books_author_id_fkey":
				return nil, book.ErrAuthorNotFound
			}
		}
		logger.Error("Create: database error", err)
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	const query = selectBook + ` WHERE b.isbn = $1`

	entity, err := scanBook(r.pool.QueryRow(ctx, query, isbn))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("FindByISBN: database error", err)
		return nil, fmt.Errorf("failed to find book by isbn: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	rows, err := r.pool.Query(ctx, selectBook)
	if err != nil {
		logger.Error("GetAll: database error", err)
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var entities []book.Book
	for rows.Next() {
		entity, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		entities = append(entities, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, isbn).Scan(&exists); err != nil {
		logger.Error("ExistsByISBN: database error", err)
		return false, fmt.Errorf("failed to check isbn: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) FindAuthorByID(ctx context.Context, id int64) (*book.AuthorBasic, error) {
	const query = `SELECT id, name, nationality FROM authors WHERE id = $1`

	var basic book.AuthorBasic
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
	return r.deleteByID(ctx, id)
}

func (r *postgresRepository) DeleteByISBN(ctx context.Context, isbn string) (bool, error) {
	const query = `SELECT id FROM books WHERE isbn = $1`

	var id int64
	err := r.pool.QueryRow(ctx, query, isbn).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.Error("DeleteByISBN: database error", err)
		return false, fmt.Errorf("failed to find book by isbn: %w", err)
	}

	return r.deleteByID(ctx, id)
}

// deleteByID removes the book row and its publication row together.
func (r *postgresRepository) deleteByID(ctx context.Context, id int64) (bool, error) {
	const deleteBook = `DELETE FROM books WHERE id = $1`
	const deletePublication = `DELETE FROM publications WHERE id = $1`

	deleted, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (bool, error) {
		tag, err := tx.Exec(ctx, deleteBook, id)
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
		return false, fmt.Errorf("failed to delete book: %w", err)
	}

	return deleted, nil
}
