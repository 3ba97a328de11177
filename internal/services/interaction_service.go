// internal/services/interaction_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/javajoker/shopsmart-backend/internal/models"
	"github.com/javajoker/shopsmart-backend/internal/utils"
)

type InteractionService struct {
	db *gorm.DB
}

type RecordInteractionRequest struct {
	ProductID int64    `json:"productId" validate:"required"`
	Action    string   `json:"action" validate:"required"`
	Duration  float64  `json:"duration,omitempty" validate:"omitempty,min=0"`
	Rating    *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
}

type ActionStat struct {
	Action      string  `json:"action"`
	Count       int64   `json:"count"`
	AvgDuration float64 `json:"avg_duration"`
}

type CategoryStat struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type InteractionStats struct {
	Actions       []ActionStat   `json:"actions"`
	TopCategories []CategoryStat `json:"top_categories"`
}

func NewInteractionService(db *gorm.DB) *InteractionService {
	return &InteractionService{db: db}
}

// Record stores one user action against a product. The action must be a
// member of the fixed set and the product must exist; a rejected request
// creates no record and bumps no counter. Counter side effects: viewed bumps
// view_count, purchased bumps purchase_count, liked and added_to_cart bump
// nothing.
func (s *InteractionService) Record(userID uuid.UUID, req *RecordInteractionRequest) (*models.Interaction, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	action := models.InteractionAction(req.Action)
	if !action.IsValid() {
		return nil, ErrInvalidAction
	}

	var product models.Product
	if err := s.db.Where("product_id = ?", req.ProductID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	interaction := &models.Interaction{
		UserID:    userID,
		ProductID: req.ProductID,
		Action:    action,
		Duration:  req.Duration,
		Rating:    req.Rating,
	}

	if err := s.db.Create(interaction).Error; err != nil {
		return nil, fmt.Errorf("failed to record interaction: %w", err)
	}

	switch action {
	case models.ActionViewed:
		if err := s.incrementCounter(req.ProductID, "view_count"); err != nil {
			return nil, err
		}
	case models.ActionPurchased:
		if err := s.incrementCounter(req.ProductID, "purchase_count"); err != nil {
			return nil, err
		}
	}

	return interaction, nil
}

// GetHistory returns the caller's interactions, newest first, optionally
// narrowed to one action, with product details joined in.
func (s *InteractionService) GetHistory(userID uuid.UUID, action string, params utils.PaginationParams) ([]models.Interaction, int64, error) {
	query := s.db.Model(&models.Interaction{}).Where("user_id = ?", userID)

	if action != "" {
		query = query.Where("action = ?", action)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count interactions: %w", err)
	}

	var interactions []models.Interaction
	if err := utils.ApplyPagination(query.Order("created_at DESC"), params).
		Preload("Product").
		Find(&interactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch interactions: %w", err)
	}

	return interactions, total, nil
}

// GetStats groups the caller's interactions by action (count and mean
// duration each) and ranks their top five categories, resolved through each
// interaction's product.
func (s *InteractionService) GetStats(userID uuid.UUID) (*InteractionStats, error) {
	var actions []ActionStat
	if err := s.db.Model(&models.Interaction{}).
		Select("action, COUNT(*) AS count, COALESCE(AVG(duration), 0) AS avg_duration").
		Where("user_id = ?", userID).
		Group("action").
		Order("count DESC").
		Scan(&actions).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate actions: %w", err)
	}

	var categories []CategoryStat
	if err := s.db.Table("interactions").
		Select("products.category, COUNT(*) AS count").
		Joins("JOIN products ON products.product_id = interactions.product_id").
		Where("interactions.user_id = ?", userID).
		Group("products.category").
		Order("count DESC").
		Limit(5).
		Scan(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate categories: %w", err)
	}

	return &InteractionStats{
		Actions:       actions,
		TopCategories: categories,
	}, nil
}

func (s *InteractionService) incrementCounter(productID int64, column string) error {
	if err := s.db.Model(&models.Product{}).Where("product_id = ?", productID).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error; err != nil {
		return fmt.Errorf("failed to increment %s: %w", column, err)
	}
	return nil
}
