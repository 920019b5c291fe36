package service

import (
	"context"
	"fmt"
	"time"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/shared/apperrors"
	"catalog-backend/pkg/cache"
	"catalog-backend/pkg/logger"
)

const (
	listCacheKey     = "books:list"
	listCachePattern = "books:*"
	listCacheTTL     = 5 * time.Minute
)

type bookServiceImpl struct {
	repository book.Repository
	cache      cache.Cache
}

func NewBookService(repo book.Repository, c cache.Cache) book.Service {
	return &bookServiceImpl{
		repository: repo,
		cache:      c,
	}
}

func (s *bookServiceImpl) Create(ctx context.Context, req *book.CreateBookRequest) (*book.BookResponse, error) {
	if req == nil {
		return nil, apperrors.Validation("create book: invalid request")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	taken, err := s.repository.ExistsByISBN(ctx, req.ISBN)
	if err != nil {
		logger.Error("Create: check isbn failed", err)
		return nil, fmt.Errorf("create book: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("book with isbn %s: %w", req.ISBN, book.ErrISBNExists)
	}

	resolved, err := s.repository.FindAuthorByID(ctx, req.Author.ID)
	if err != nil {
		logger.Error("Create: resolve author failed", err)
		return nil, fmt.Errorf("create book: %w", err)
	}
	if resolved == nil {
		return nil, fmt.Errorf("author with id %d: %w", req.Author.ID, book.ErrAuthorNotFound)
	}

	created, err := s.repository.Create(ctx, book.ToEntity(req, *resolved))
	if err != nil {
		logger.Error("Create: repository create failed", err)
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("create book: %w", err)
	}

	s.invalidateListCache(ctx)

	logger.Info("book created", map[string]interface{}{
		"book_id":   created.ID,
		"isbn":      created.ISBN,
		"author_id": created.AuthorID,
	})

	return book.ToResponse(created), nil
}

func (s *bookServiceImpl) GetByISBN(ctx context.Context, isbn string) (*book.BookResponse, error) {
	entity, err := s.repository.FindByISBN(ctx, isbn)
	if err != nil {
		logger.Error("GetByISBN: repository failed", err)
		return nil, fmt.Errorf("get book: %w", err)
	}
	if entity == nil {
		return nil, nil
	}

	return book.ToResponse(entity), nil
}

func (s *bookServiceImpl) GetAll(ctx context.Context) ([]book.BookResponse, error) {
	var cached []book.BookResponse
	found, err := s.cache.Get(ctx, listCacheKey, &cached)
	if err != nil {
		logger.Warn("GetAll: cache read failed", map[string]interface{}{"error": err.Error()})
	}
	if found {
		return cached, nil
	}

	entities, err := s.repository.GetAll(ctx)
	if err != nil {
		logger.Error("GetAll: repository failed", err)
		return nil, fmt.Errorf("list books: %w", err)
	}

	responses := make([]book.BookResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, *book.ToResponse(&entities[i]))
	}

	if err := s.cache.Set(ctx, listCacheKey, responses, listCacheTTL); err != nil {
		logger.Warn("GetAll: cache write failed", map[string]interface{}{"error": err.Error()})
	}

	return responses, nil
}

func (s *bookServiceImpl) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		logger.Error("Delete: repository failed", err)
		return false, fmt.Errorf("delete book: %w", err)
	}

	if deleted {
		s.invalidateListCache(ctx)
		logger.Info("book deleted", map[string]interface{}{"book_id": id})
	}

	return deleted, nil
}

func (s *bookServiceImpl) DeleteByISBN(ctx context.Context, isbn string) (bool, error) {
	deleted, err := s.repository.DeleteByISBN(ctx, isbn)
	if err != nil {
		logger.Error("DeleteByISBN: repository failed", err)
		return false, fmt.Errorf("delete book: %w", err)
	}

	if deleted {
		s.invalidateListCache(ctx)
		logger.Info("book deleted", map[string]interface{}{"isbn": isbn})
	}

	return deleted, nil
}

func (s *bookServiceImpl) invalidateListCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, listCachePattern); err != nil {
		logger.Warn("cache invalidation failed", map[string]interface{}{
			"pattern": listCachePattern,
			"error":   err.Error(),
		})
	}
}
