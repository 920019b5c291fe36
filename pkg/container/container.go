package container

import (
	"context"
	"fmt"

	"catalog-backend/internal/config"
	infraCache "catalog-backend/internal/infrastructure/cache"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/pkg/cache"

	"catalog-backend/internal/domains/author"
	authorHandler "catalog-backend/internal/domains/author/handler"
	authorRepo "catalog-backend/internal/domains/author/repository"
	authorService "catalog-backend/internal/domains/author/service"

	"catalog-backend/internal/domains/book"
	bookHandler "catalog-backend/internal/domains/book/handler"
	bookRepo "catalog-backend/internal/domains/book/repository"
	bookService "catalog-backend/internal/domains/book/service"

	"catalog-backend/internal/domains/magazine"
	magazineHandler "catalog-backend/internal/domains/magazine/handler"
	magazineRepo "catalog-backend/internal/domains/magazine/repository"
	magazineService "catalog-backend/internal/domains/magazine/service"

	"catalog-backend/internal/domains/publication"
	publicationHandler "catalog-backend/internal/domains/publication/handler"
	publicationRepo "catalog-backend/internal/domains/publication/repository"
	publicationService "catalog-backend/internal/domains/publication/service"
)

// Container is the root of the dependency graph: infrastructure first,
// then repositories, services and handlers on top. Everything is a
// singleton for the application lifetime.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo      author.Repository
	BookRepo        book.Repository
	MagazineRepo    magazine.Repository
	PublicationRepo publication.Repository

	AuthorService      author.Service
	BookService        book.Service
	MagazineService    magazine.Service
	PublicationService publication.Service

	AuthorHandler      *authorHandler.AuthorHandler
	BookHandler        *bookHandler.BookHandler
	MagazineHandler    *magazineHandler.MagazineHandler
	PublicationHandler *publicationHandler.PublicationHandler

	redis *infraCache.RedisCache
}

// New builds the whole graph.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	db := database.New(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	redis := infraCache.NewRedisCache(&cfg.Redis)
	if err := redis.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	c := &Container{
		Config: cfg,
		DB:     db,
		Cache:  redis,
		redis:  redis,
	}

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)
	c.MagazineRepo = magazineRepo.NewPostgresRepository(db.Pool)
	c.PublicationRepo = publicationRepo.NewPostgresRepository(db.Pool)

	// The book repository doubles as the author service's ISBN catalog.
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo, c.Cache)
	c.BookService = bookService.NewBookService(c.BookRepo, c.Cache)
	c.MagazineService = magazineService.NewMagazineService(c.MagazineRepo, c.Cache)
	c.PublicationService = publicationService.NewPublicationService(c.PublicationRepo, c.BookService, c.MagazineService)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.MagazineHandler = magazineHandler.NewMagazineHandler(c.MagazineService)
	c.PublicationHandler = publicationHandler.NewPublicationHandler(c.PublicationService)

	return c, nil
}

// Close releases infrastructure connections, newest first.
func (c *Container) Close() {
	if c.redis != nil {
		_ = c.redis.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
