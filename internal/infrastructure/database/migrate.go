package database

import (
	"context"
	"fmt"

	"catalog-backend/pkg/logger"
)

// schema is the catalog DDL. Books and magazines extend the shared
// publications identity space (joined tables keyed by the publication id,
// tagged with a type discriminator). Uniqueness invariants are enforced here
// as the authoritative backstop behind the service-level pre-checks.
const schema = `
CREATE TABLE IF NOT EXISTS authors (
	id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	name        TEXT NOT NULL,
	birth_date  DATE NOT NULL,
	nationality TEXT NOT NULL,
	CONSTRAINT authors_name_key UNIQUE (name)
);

CREATE TABLE IF NOT EXISTS publications (
	id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	type             TEXT NOT NULL CHECK (type IN ('BOOK', 'MAGAZINE')),
	title            TEXT NOT NULL,
	publication_date DATE NOT NULL
);

CREATE TABLE IF NOT EXISTS books (
	id        BIGINT PRIMARY KEY REFERENCES publications (id),
	isbn      TEXT NOT NULL,
	author_id BIGINT NOT NULL REFERENCES authors (id),
	CONSTRAINT books_isbn_key UNIQUE (isbn)
);

CREATE TABLE IF NOT EXISTS magazines (
	id           BIGINT PRIMARY KEY REFERENCES publications (id),
	issue_number INT NOT NULL CHECK (issue_number >= 1),
	CONSTRAINT magazines_issue_number_key UNIQUE (issue_number)
);

CREATE TABLE IF NOT EXISTS magazine_authors (
	magazine_id BIGINT NOT NULL REFERENCES magazines (id) ON DELETE CASCADE,
	author_id   BIGINT NOT NULL REFERENCES authors (id),
	position    INT NOT NULL,
	PRIMARY KEY (magazine_id, author_id)
);

CREATE INDEX IF NOT EXISTS idx_books_author_id ON books (author_id);
CREATE INDEX IF NOT EXISTS idx_publications_title ON publications (LOWER(title));
`

// Migrate applies the schema. Every statement is idempotent so this runs on
// each startup.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info("database schema applied", nil)
	return nil
}
