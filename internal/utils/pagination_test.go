// internal/utils/pagination_test.go
package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 20))
	assert.Equal(t, 20, Offset(2, 20))
	assert.Equal(t, 90, Offset(10, 10))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(45, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(0, 20))
}

func TestCreatePaginationResult(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 20}
	result := CreatePaginationResult([]string{"a"}, 45, params)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, int64(45), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := GetPaginationParams(testContext("/products"))

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "", params.Sort)
}

func TestGetPaginationParamsClampsBounds(t *testing.T) {
	params := GetPaginationParams(testContext("/products?page=0&limit=500"))
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)

	params = GetPaginationParams(testContext("/products?page=-3&limit=-1"))
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
}

func TestGetPaginationParamsPassThrough(t *testing.T) {
	params := GetPaginationParams(testContext("/products?page=3&limit=50&sort=price_low"))

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 50, params.Limit)
	assert.Equal(t, "price_low", params.Sort)
}
