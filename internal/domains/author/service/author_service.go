package service

import (
	"context"
	"fmt"

	"catalog-backend/internal/domains/author"
	"catalog-backend/internal/shared/apperrors"
	"catalog-backend/pkg/cache"
	"catalog-backend/pkg/logger"
)

// bookListCachePattern mirrors the book service's cache namespace: the
// cascade create/delete paths mutate books, so the cached book listing has
// to go.
const bookListCachePattern = "books:*"

type authorServiceImpl struct {
	repository author.Repository
	books      author.BookCatalog
	cache      cache.Cache
}

func NewAuthorService(repo author.Repository, books author.BookCatalog, c cache.Cache) author.Service {
	return &authorServiceImpl{
		repository: repo,
		books:      books,
		cache:      c,
	}
}

func (s *authorServiceImpl) invalidateBookCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, bookListCachePattern); err != nil {
		logger.Warn("cache invalidation failed", map[string]interface{}{
			"pattern": bookListCachePattern,
			"error":   err.Error(),
		})
	}
}

func (s *authorServiceImpl) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.AuthorResponse, error) {
	if req == nil {
		return nil, apperrors.Validation("create author: invalid request")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	exists, err := s.repository.ExistsByName(ctx, req.Name)
	if err != nil {
		logger.Error("Create: check author name failed", err)
		return nil, fmt.Errorf("create author: %w", err)
	}
	if exists {
		return nil, author.ErrAuthorExists
	}

	// Validate nested book ISBNs before any write: first against the
	// payload itself, then against the store.
	seen := make(map[string]struct{}, len(req.Books))
	for _, b := range req.Books {
		if _, dup := seen[b.ISBN]; dup {
			return nil, apperrors.Validationf("duplicate isbn in author request: %s", b.ISBN)
		}
		seen[b.ISBN] = struct{}{}

		taken, err := s.books.ExistsByISBN(ctx, b.ISBN)
		if err != nil {
			logger.Error("Create: check isbn failed", err)
			return nil, fmt.Errorf("create author: %w", err)
		}
		if taken {
			return nil, apperrors.Conflictf("book with isbn %s already exists", b.ISBN)
		}
	}

	entity, books := author.ToEntity(req)

	created, createdBooks, err := s.repository.CreateWithBooks(ctx, entity, books)
	if err != nil {
		logger.Error("Create: repository create failed", err)
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("create author: %w", err)
	}

	if len(createdBooks) > 0 {
		s.invalidateBookCache(ctx)
	}

	logger.Info("author created", map[string]interface{}{
		"author_id": created.ID,
		"name":      created.Name,
		"books":     len(createdBooks),
	})

	return author.ToResponse(created, createdBooks), nil
}

func (s *authorServiceImpl) GetByID(ctx context.Context, id int64) (*author.AuthorResponse, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	books, err := s.repository.BooksByAuthor(ctx, id)
	if err != nil {
		logger.Error("GetByID: load books failed", err)
		return nil, fmt.Errorf("get author: %w", err)
	}

	return author.ToResponse(entity, books), nil
}

func (s *authorServiceImpl) GetAll(ctx context.Context) ([]author.AuthorResponse, error) {
	entities, err := s.repository.GetAll(ctx)
	if err != nil {
		logger.Error("GetAll: repository failed", err)
		return nil, fmt.Errorf("list authors: %w", err)
	}

	responses := make([]author.AuthorResponse, 0, len(entities))
	for i := range entities {
		books, err := s.repository.BooksByAuthor(ctx, entities[i].ID)
		if err != nil {
			logger.Error("GetAll: load books failed", err)
			return nil, fmt.Errorf("list authors: %w", err)
		}
		responses = append(responses, *author.ToResponse(&entities[i], books))
	}

	return responses, nil
}

func (s *authorServiceImpl) Delete(ctx context.Context, id int64) error {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Magazine associations are non-owning; a referenced author cannot be
	// removed without breaking its magazines.
	refs, err := s.repository.MagazineRefCount(ctx, id)
	if err != nil {
		logger.Error("Delete: check magazine references failed", err)
		return fmt.Errorf("delete author: %w", err)
	}
	if refs > 0 {
		return author.ErrAuthorInUse
	}

	deletedBooks, err := s.repository.DeleteWithBooks(ctx, id)
	if err != nil {
		logger.Error("Delete: repository delete failed", err)
		if apperrors.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("delete author: %w", err)
	}

	if deletedBooks > 0 {
		s.invalidateBookCache(ctx)
	}

	logger.Info("author deleted", map[string]interface{}{
		"author_id":     id,
		"name":          entity.Name,
		"deleted_books": deletedBooks,
	})

	return nil
}
