// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/javajoker/shopsmart-backend/internal/models"
	"github.com/javajoker/shopsmart-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

// ProductFilterParams are the optional listing filters. A nil pointer means
// the filter is not applied; with no filters set the query matches the whole
// catalog.
type ProductFilterParams struct {
	utils.PaginationParams
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Tags      []string
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func applyProductFilters(query *gorm.DB, params ProductFilterParams) *gorm.DB {
	if params.Category != "" {
		query = query.Where("LOWER(category) LIKE ?", "%"+escapeLikePattern(strings.ToLower(params.Category))+"%")
	}

	if params.MinPrice != nil {
		query = query.Where("price >= ?", *params.MinPrice)
	}

	if params.MaxPrice != nil {
		query = query.Where("price <= ?", *params.MaxPrice)
	}

	if params.MinRating != nil {
		query = query.Where("rating >= ?", *params.MinRating)
	}

	if len(params.Tags) > 0 {
		query = query.Where("tags && ?", pq.Array(params.Tags))
	}

	return query
}

// ListProducts returns one page of the catalog plus the total match count.
// No side effects.
func (s *ProductService) ListProducts(params ProductFilterParams) ([]models.Product, int64, error) {
	query := applyProductFilters(s.db.Model(&models.Product{}), params)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query = query.Order(ResolveSort(params.Sort, DefaultListOrder))
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// GetProduct fetches a single product by its public identifier. Every
// successful fetch bumps view_count by one, repeated fetches included; there
// is no de-duplication window. Authenticated callers additionally get a
// "viewed" interaction on their history (the counter is bumped only once).
func (s *ProductService) GetProduct(productID int64, userID *uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Where("product_id = ?", productID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&models.Product{}).Where("product_id = ?", productID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return nil, fmt.Errorf("failed to increment view count: %w", err)
	}
	product.ViewCount++

	if userID != nil {
		interaction := &models.Interaction{
			UserID:    *userID,
			ProductID: productID,
			Action:    models.ActionViewed,
		}
		if err := s.db.Create(interaction).Error; err != nil {
			return nil, fmt.Errorf("failed to record view interaction: %w", err)
		}
	}

	return &product, nil
}

// GetSimilarProducts is category-based content filtering: every result
// shares the source product's exact category, the source itself is excluded
// by product_id, and results are ordered by rating then view count. It never
// consults interaction history.
func (s *ProductService) GetSimilarProducts(productID int64, limit int) ([]models.Product, error) {
	var source models.Product
	if err := s.db.Where("product_id = ?", productID).First(&source).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var products []models.Product
	if err := s.db.Where("category = ?", source.Category).
		Where("product_id <> ?", productID).
		Order("rating DESC, view_count DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch similar products: %w", err)
	}

	return products, nil
}

// GetCategories returns the distinct category values in the catalog.
func (s *ProductService) GetCategories() ([]string, error) {
	var categories []string
	if err := s.db.Model(&models.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, nil
}

func (s *ProductService) GetPopularProducts(limit int) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("view_count DESC, rating DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch popular products: %w", err)
	}

	return products, nil
}

func (s *ProductService) GetFeaturedProducts(limit int) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("is_featured = ?", true).
		Order("rating DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch featured products: %w", err)
	}

	return products, nil
}
