package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/author"
	"catalog-backend/internal/shared/apperrors"
	"catalog-backend/pkg/database"
	"catalog-backend/pkg/logger"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CreateWithBooks(ctx context.Context, entity *author.Author, books []author.Book) (*author.Author, []author.Book, error) {
	const insertAuthor = `
		INSERT INTO authors (name, birth_date, nationality)
		VALUES ($1, $2, $3)
		RETURNING id
	`
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
	createdBooks := make([]author.Book, len(books))
	copy(createdBooks, books)

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertAuthor,
			entity.Name,
			entity.BirthDate.Time,
			entity.Nationality,
		).Scan(&created.ID); err != nil {
			return err
		}

		for i := range createdBooks {
			if err := tx.QueryRow(ctx, insertPublication,
				createdBooks[i].Title,
				createdBooks[i].PublicationDate.Time,
			).Scan(&createdBooks[i].ID); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, insertBook,
				createdBooks[i].ID,
				createdBooks[i].ISBN,
				created.ID,
			); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.ConstraintName {
			case "authors_name_key":
				return nil, nil, author.ErrAuthorExists
			case "books_isbn_key":
				return nil, nil, apperrors.Conflict("book isbn already exists")
			}
		}
		logger.Error("CreateWithBooks: database error", err)
		return nil, nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, createdBooks, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	const query = `
		SELECT id, name, birth_date, nationality
		FROM authors
		WHERE id = $1
	`

	var entity author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&entity.ID,
		&entity.Name,
		&entity.BirthDate.Time,
		&entity.Nationality,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", author.ErrAuthorNotFound, id)
	}
	if err != nil {
		logger.Error("GetByID: database error", err)
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return &entity, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	const query = `
		SELECT id, name, birth_date, nationality
		FROM authors
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("GetAll: database error", err)
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	var entities []author.Author
	for rows.Next() {
		var entity author.Author
		if err := rows.Scan(
			&entity.ID,
			&entity.Name,
			&entity.BirthDate.Time,
			&entity.Nationality,
		); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read authors: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM authors WHERE name = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		logger.Error("ExistsByName: database error", err)
		return false, fmt.Errorf("failed to check author name: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) BooksByAuthor(ctx context.Context, authorID int64) ([]author.Book, error) {
	const query = `
		SELECT b.id, p.title, b.isbn, p.publication_date
		FROM books b
		JOIN publications p ON p.id = b.id
		WHERE b.author_id = $1
	`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		logger.Error("BooksByAuthor: database error", err)
		return nil, fmt.Errorf("failed to list author books: %w", err)
	}
	defer rows.Close()

	var books []author.Book
	for rows.Next() {
		var b author.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.ISBN, &b.PublicationDate.Time); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read author books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) MagazineRefCount(ctx context.Context, authorID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM magazine_authors WHERE author_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, authorID).Scan(&count); err != nil {
		logger.Error("MagazineRefCount: database error", err)
		return 0, fmt.Errorf("failed to count magazine references: %w", err)
	}
	return count, nil
}

// DeleteWithBooks removes every owned book one by one, then the author,
// inside a single transaction. No storage-level ON DELETE CASCADE is relied
// on for the author-book relationship.
func (r *postgresRepository) DeleteWithBooks(ctx context.Context, id int64) (int, error) {
	const selectBooks = `SELECT id FROM books WHERE author_id = $1`
	const deleteBook = `DELETE FROM books WHERE id = $1`
	const deletePublication = `DELETE FROM publications WHERE id = $1`
	const deleteAuthor = `DELETE FROM authors WHERE id = $1`

	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int, error) {
		rows, err := tx.Query(ctx, selectBooks, id)
		if err != nil {
			return 0, fmt.Errorf("failed to load author books: %w", err)
		}

		var bookIDs []int64
		for rows.Next() {
			var bookID int64
			if err := rows.Scan(&bookID); err != nil {
				rows.Close()
				return 0, fmt.Errorf("failed to scan book id: %w", err)
			}
			bookIDs = append(bookIDs, bookID)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return 0, fmt.Errorf("failed to read book ids: %w", err)
		}

		for _, bookID := range bookIDs {
			if _, err := tx.Exec(ctx, deleteBook, bookID); err != nil {
				return 0, fmt.Errorf("failed to delete book %d: %w", bookID, err)
			}
			if _, err := tx.Exec(ctx, deletePublication, bookID); err != nil {
				return 0, fmt.Errorf("failed to delete publication %d: %w", bookID, err)
			}
		}

		tag, err := tx.Exec(ctx, deleteAuthor, id)
		if err != nil {
			return 0, fmt.Errorf("failed to delete author: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return 0, fmt.Errorf("%w: id %d", author.ErrAuthorNotFound, id)
		}

		return len(bookIDs), nil
	})
}
