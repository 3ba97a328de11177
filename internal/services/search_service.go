// internal/services/search_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/javajoker/shopsmart-backend/internal/models"
	"github.com/javajoker/shopsmart-backend/internal/utils"
)

type SearchService struct {
	db *gorm.DB
}

type SearchRequest struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category,omitempty"`
	Sort     string `json:"sort,omitempty"`
	Page     int    `json:"page,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

type KeywordSuggestion struct {
	Keyword string `json:"keyword"`
	Count   int64  `json:"count"`
}

type CategorySuggestion struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// NormalizeKeyword trims surrounding whitespace; the trimmed form is what
// gets matched and logged.
func NormalizeKeyword(keyword string) string {
	return strings.TrimSpace(keyword)
}

// likeEscaper neutralizes LIKE metacharacters so a keyword such as "100%"
// matches literally instead of matching everything.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

// Search runs a case-insensitive substring match of the keyword against
// name, description, manufacturer, category and subcategory (any field may
// match), optionally narrowed to one exact category. A blank keyword is
// rejected before the store is touched. When the caller is authenticated the
// search is logged with its total match count, zero included.
func (s *SearchService) Search(req *SearchRequest, params utils.PaginationParams, userID *uuid.UUID) ([]models.Product, int64, error) {
	keyword := NormalizeKeyword(req.Keyword)
	if keyword == "" {
		return nil, 0, ErrBlankKeyword
	}

	pattern := "%" + escapeLikePattern(strings.ToLower(keyword)) + "%"
	query := s.db.Model(&models.Product{}).Where(
		"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(manufacturer) LIKE ? OR LOWER(category) LIKE ? OR LOWER(subcategory) LIKE ?",
		pattern, pattern, pattern, pattern, pattern,
	)

	if req.Category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", req.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	query = query.Order(ResolveSort(req.Sort, DefaultSearchOrder))
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch search results: %w", err)
	}

	if userID != nil {
		record := &models.SearchRecord{
			UserID:      *userID,
			Keyword:     keyword,
			ResultCount: total,
		}
		// A failed log entry must not fail the search itself.
		if err := s.db.Create(record).Error; err != nil {
			logrus.WithError(err).WithField("keyword", keyword).Warn("Failed to record search")
		}
	}

	return products, total, nil
}

// GetHistory returns the caller's past searches, newest first.
func (s *SearchService) GetHistory(userID uuid.UUID, params utils.PaginationParams) ([]models.SearchRecord, int64, error) {
	query := s.db.Model(&models.SearchRecord{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count search history: %w", err)
	}

	var records []models.SearchRecord
	if err := utils.ApplyPagination(query.Order("created_at DESC"), params).
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch search history: %w", err)
	}

	return records, total, nil
}

// GetSuggestions aggregates the most frequent search keywords across all
// users and the categories holding the most products.
func (s *SearchService) GetSuggestions(limit int) ([]KeywordSuggestion, []CategorySuggestion, error) {
	var keywords []KeywordSuggestion
	if err := s.db.Model(&models.SearchRecord{}).
		Select("keyword, COUNT(*) AS count").
		Group("keyword").
		Order("count DESC").
		Limit(limit).
		Scan(&keywords).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to aggregate keywords: %w", err)
	}

	var categories []CategorySuggestion
	if err := s.db.Model(&models.Product{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Limit(limit).
		Scan(&categories).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to aggregate categories: %w", err)
	}

	return keywords, categories, nil
}
