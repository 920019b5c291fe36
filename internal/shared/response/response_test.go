package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/shared/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestEnvelopeShape(t *testing.T) {
	w := record(func(c *gin.Context) {
		Created(c, "Author created successfully", gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(201), body["statusCode"])
	assert.Equal(t, "Author created successfully", body["message"])
	assert.NotNil(t, body["data"])
	assert.Contains(t, body, "timestamp")
}

func TestNotFoundHasNullData(t *testing.T) {
	w := record(func(c *gin.Context) {
		NotFound(c, "Book not found with ISBN 123")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	body := decode(t, w)
	assert.Nil(t, body["data"])
	assert.Equal(t, float64(404), body["statusCode"])
}

func TestErrorUsesTaxonomyStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"conflict", apperrors.Conflict("author already exists"), http.StatusConflict},
		{"not found", apperrors.NotFound("author not found"), http.StatusNotFound},
		{"validation", apperrors.Validation("name is required"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := record(func(c *gin.Context) {
				Error(c, tt.err)
			})

			assert.Equal(t, tt.want, w.Code)
			body := decode(t, w)
			assert.Equal(t, float64(tt.want), body["statusCode"])
			assert.Equal(t, tt.err.Error(), body["message"])
		})
	}
}
