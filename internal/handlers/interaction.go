// internal/handlers/interaction.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shopsmart-backend/internal/middleware"
	"github.com/javajoker/shopsmart-backend/internal/services"
	"github.com/javajoker/shopsmart-backend/internal/utils"
)

type InteractionHandler struct {
	interactionService *services.InteractionService
}

func NewInteractionHandler(interactionService *services.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService}
}

// POST /interactions
func (h *InteractionHandler) CreateInteraction(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.RecordInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	interaction, err := h.interactionService.Record(identity.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAction):
			utils.BadRequestResponse(c, "Invalid interaction action", nil)
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "Product not found")
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"interaction": interaction,
	})
}

// GET /interactions/history
func (h *InteractionHandler) GetHistory(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	params := utils.GetPaginationParams(c)
	action := c.Query("action")

	interactions, total, err := h.interactionService.GetHistory(identity.UserID, action, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(interactions, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /interactions/stats
func (h *InteractionHandler) GetStats(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	stats, err := h.interactionService.GetStats(identity.UserID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"stats": stats,
	})
}
