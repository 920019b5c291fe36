package service

import (
	"context"
	"fmt"

	"catalog-backend/internal/domains/book"
	"catalog-backend/internal/domains/magazine"
	"catalog-backend/internal/domains/publication"
	"catalog-backend/pkg/logger"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type publicationServiceImpl struct {
	repository publication.Repository
	books      book.Service
	magazines  magazine.Service
}

func NewPublicationService(repo publication.Repository, books book.Service, magazines magazine.Service) publication.Service {
	return &publicationServiceImpl{
		repository: repo,
		books:      books,
		magazines:  magazines,
	}
}

func (s *publicationServiceImpl) List(ctx context.Context, page, size int) (*publication.Page, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	total, err := s.repository.Count(ctx)
	if err != nil {
		logger.Error("List: count failed", err)
		return nil, fmt.Errorf("list publications: %w", err)
	}

	summaries, err := s.repository.List(ctx, size, page*size)
	if err != nil {
		logger.Error("List: repository failed", err)
		return nil, fmt.Errorf("list publications: %w", err)
	}
	if summaries == nil {
		summaries = []publication.Summary{}
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	return &publication.Page{
		Content:       summaries,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func (s *publicationServiceImpl) SearchByTitle(ctx context.Context, title string) ([]publication.Summary, error) {
	books, err := s.repository.SearchByTitle(ctx, title, publication.TypeBook)
	if err != nil {
		logger.Error("SearchByTitle: book search failed", err)
		return nil, fmt.Errorf("search publications: %w", err)
	}

	magazines, err := s.repository.SearchByTitle(ctx, title, publication.TypeMagazine)
	if err != nil {
		logger.Error("SearchByTitle: magazine search failed", err)
		return nil, fmt.Errorf("search publications: %w", err)
	}

	results := make([]publication.Summary, 0, len(books)+len(magazines))
	results = append(results, books...)
	results = append(results, magazines...)
	return results, nil
}

func (s *publicationServiceImpl) GetGrouped(ctx context.Context) (*publication.Grouped, error) {
	books, err := s.books.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("grouped publications: %w", err)
	}

	magazines, err := s.magazines.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("grouped publications: %w", err)
	}

	return &publication.Grouped{
		Books:     books,
		Magazines: magazines,
	}, nil
}
