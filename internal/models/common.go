// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums
type InteractionAction string

const (
	ActionViewed      InteractionAction = "viewed"
	ActionLiked       InteractionAction = "liked"
	ActionPurchased   InteractionAction = "purchased"
	ActionAddedToCart InteractionAction = "added_to_cart"
)

var validActions = map[InteractionAction]bool{
	ActionViewed:      true,
	ActionLiked:       true,
	ActionPurchased:   true,
	ActionAddedToCart: true,
}

func (a InteractionAction) IsValid() bool {
	return validActions[a]
}
