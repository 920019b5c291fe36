package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/middleware"
	"catalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.CORSOrigins),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(v1, c)
		setupBookRoutes(v1, c)
		setupMagazineRoutes(v1, c)
		setupPublicationRoutes(v1, c)
	}

	return router
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("", c.AuthorHandler.GetAll)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.POST("", c.BookHandler.Create)
		books.GET("", c.BookHandler.GetAll)
		books.GET("/isbn/:isbn", c.BookHandler.GetByISBN)
		books.DELETE("/:id", c.BookHandler.Delete)
		books.DELETE("/isbn/:isbn", c.BookHandler.DeleteByISBN)
	}
}

func setupMagazineRoutes(v1 *gin.RouterGroup, c *container.Container) {
	magazines := v1.Group("/magazines")
	{
		magazines.POST("", c.MagazineHandler.Create)
		magazines.GET("", c.MagazineHandler.GetAll)
		magazines.DELETE("/:id", c.MagazineHandler.Delete)
	}
}

func setupPublicationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	publications := v1.Group("/publications")
	{
		publications.GET("", c.PublicationHandler.List)
		publications.GET("/grouped", c.PublicationHandler.GetGrouped)
		publications.GET("/search", c.PublicationHandler.Search)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "cache": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["database"] = err.Error()
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["cache"] = err.Error()
		}

		ctx.JSON(status, gin.H{
			"status":  http.StatusText(status),
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
