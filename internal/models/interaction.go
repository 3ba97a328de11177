// internal/models/interaction.go
package models

import (
	"github.com/google/uuid"
)

// Interaction is one user action against one product. Rows are append-only:
// they are never updated or deleted, only queried for history and stats.
// ProductID is the public catalog identifier, checked for existence at
// creation time but not enforced as a foreign key.
type Interaction struct {
	BaseModel
	UserID    uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductID int64             `json:"product_id" gorm:"not null;index"`
	Action    InteractionAction `json:"action" gorm:"type:varchar(20);not null;index"`
	Duration  float64           `json:"duration" gorm:"default:0"`
	Rating    *float64          `json:"rating,omitempty" gorm:"type:decimal(3,2)"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID;references:ProductID"`
}
