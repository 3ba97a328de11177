// internal/handlers/search.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javajoker/shopsmart-backend/internal/middleware"
	"github.com/javajoker/shopsmart-backend/internal/services"
	"github.com/javajoker/shopsmart-backend/internal/utils"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// POST /search
func (h *SearchHandler) Search(c *gin.Context) {
	var req services.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	// Same boundary clamping as the query-string variant.
	params := utils.PaginationParams{
		Page:  req.Page,
		Limit: req.Limit,
		Sort:  req.Sort,
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}

	var userID *uuid.UUID
	if identity, ok := middleware.IdentityFrom(c); ok {
		userID = &identity.UserID
	}

	products, total, err := h.searchService.Search(&req, params, userID)
	if err != nil {
		if errors.Is(err, services.ErrBlankKeyword) {
			utils.BadRequestResponse(c, "Search keyword is required", nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(products, total, params)
	utils.SetPaginationHeaders(c, result)
	utils.SuccessResponseWithMeta(c, result.Data, gin.H{
		"pagination": gin.H{
			"page":        result.Page,
			"limit":       result.Limit,
			"total":       result.Total,
			"total_pages": result.TotalPages,
		},
		"search_info": gin.H{
			"keyword":       services.NormalizeKeyword(req.Keyword),
			"category":      req.Category,
			"sort":          req.Sort,
			"results_count": total,
		},
	})
}

// GET /search/history
func (h *SearchHandler) GetHistory(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	params := utils.GetPaginationParams(c)
	records, total, err := h.searchService.GetHistory(identity.UserID, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(records, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /search/suggestions
func (h *SearchHandler) GetSuggestions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	keywords, categories, err := h.searchService.GetSuggestions(limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"keywords":   keywords,
		"categories": categories,
	})
}
