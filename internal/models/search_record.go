// internal/models/search_record.go
package models

import (
	"github.com/google/uuid"
)

// SearchRecord logs one executed search by an authenticated user, including
// searches that matched nothing. Append-only.
type SearchRecord struct {
	BaseModel
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Keyword     string    `json:"keyword" gorm:"size:255;not null;index"`
	ResultCount int64     `json:"result_count" gorm:"default:0"`
}
