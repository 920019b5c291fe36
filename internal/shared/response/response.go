package response

import (
	"time"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/apperrors"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Timestamp  time.Time   `json:"timestamp"`
}

func write(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		StatusCode: status,
		Message:    message,
		Data:       data,
		Timestamp:  time.Now(),
	})
}

// OK answers 200 with data.
func OK(c *gin.Context, message string, data interface{}) {
	write(c, 200, message, data)
}

// Created answers 201 with the created resource.
func Created(c *gin.Context, message string, data interface{}) {
	write(c, 201, message, data)
}

// NotFound answers 404 with a null data field.
func NotFound(c *gin.Context, message string) {
	write(c, 404, message, nil)
}

// BadRequest answers 400 with a null data field.
func BadRequest(c *gin.Context, message string) {
	write(c, 400, message, nil)
}

// Error maps a domain error to its status code via the apperrors taxonomy.
func Error(c *gin.Context, err error) {
	write(c, apperrors.HTTPStatus(err), err.Error(), nil)
}
