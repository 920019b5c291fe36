package service

import (
	"context"
	"fmt"
	"time"

	"catalog-backend/internal/domains/magazine"
	"catalog-backend/internal/shared/apperrors"
	"catalog-backend/pkg/cache"
	"catalog-backend/pkg/logger"
)

const (
	listCacheKey     = "magazines:list"
	listCachePattern = "magazines:*"
	listCacheTTL     = 5 * time.Minute
)

type magazineServiceImpl struct {
	repository magazine.Repository
	cache      cache.Cache
}

func NewMagazineService(repo magazine.Repository, c cache.Cache) magazine.Service {
	return &magazineServiceImpl{
		repository: repo,
		cache:      c,
	}
}

func (s *magazineServiceImpl) Create(ctx context.Context, req *magazine.CreateMagazineRequest) (*magazine.MagazineResponse, error) {
	if req == nil {
		return nil, apperrors.Validation("create magazine: invalid request")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	taken, err := s.repository.ExistsByIssueNumber(ctx, req.IssueNumber)
	if err != nil {
		logger.Error("Create: check issue number failed", err)
		return nil, fmt.Errorf("create magazine: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("magazine with issue number %d: %w", req.IssueNumber, magazine.ErrIssueNumberExists)
	}

	// Resolve every referenced author up front, keeping request order.
	authors := make([]magazine.AuthorBasic, 0, len(req.Authors))
	for _, ref := range req.Authors {
		resolved, err := s.repository.FindAuthorByID(ctx, ref.ID)
		if err != nil {
			logger.Error("Create: resolve author failed", err)
			return nil, fmt.Errorf("create magazine: %w", err)
		}
		if resolved == nil {
			return nil, fmt.Errorf("author with id %d: %w", ref.ID, magazine.ErrAuthorNotFound)
		}
		authors = append(authors, *resolved)
	}

	created, err := s.repository.Create(ctx, magazine.ToEntity(req, authors))
	if err != nil {
		logger.Error("Create: repository create failed", err)
		if apperrors.IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("create magazine: %w", err)
	}

	s.invalidateListCache(ctx)

	logger.Info("magazine created", map[string]interface{}{
		"magazine_id":  created.ID,
		"issue_number": created.IssueNumber,
		"authors":      len(created.Authors),
	})

	return magazine.ToResponse(created), nil
}

func (s *magazineServiceImpl) GetAll(ctx context.Context) ([]magazine.MagazineResponse, error) {
	var cached []magazine.MagazineResponse
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
		return nil, fmt.Errorf("list magazines: %w", err)
	}

	responses := make([]magazine.MagazineResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, *magazine.ToResponse(&entities[i]))
	}

	if err := s.cache.Set(ctx, listCacheKey, responses, listCacheTTL); err != nil {
		logger.Warn("GetAll: cache write failed", map[string]interface{}{"error": err.Error()})
	}

	return responses, nil
}

func (s *magazineServiceImpl) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		logger.Error("Delete: repository failed", err)
		return fmt.Errorf("delete magazine: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: id %d", magazine.ErrMagazineNotFound, id)
	}

	s.invalidateListCache(ctx)

	logger.Info("magazine deleted", map[string]interface{}{"magazine_id": id})
	return nil
}

func (s *magazineServiceImpl) invalidateListCache(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, listCachePattern); err != nil {
		logger.Warn("cache invalidation failed", map[string]interface{}{
			"pattern": listCachePattern,
			"error":   err.Error(),
		})
	}
}
