// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

// Product is a catalog entry. ProductID is the public identifier used by
// every API route and by interaction/search records; the row's UUID primary
// key stays internal.
type Product struct {
	BaseModel
	ProductID     int64          `json:"product_id" gorm:"uniqueIndex;not null"`
	Name          string         `json:"name" gorm:"size:255;not null"`
	Category      string         `json:"category" gorm:"size:100;not null;index"`
	Subcategory   string         `json:"subcategory" gorm:"size:100;not null"`
	Price         float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	StockQuantity int            `json:"stock_quantity" gorm:"default:0"`
	Manufacturer  string         `json:"manufacturer" gorm:"size:255"`
	Description   string         `json:"description" gorm:"type:text"`
	Weight        float64        `json:"weight" gorm:"type:decimal(10,3);default:0"`
	Dimensions    string         `json:"dimensions" gorm:"size:100"`
	ReleaseDate   string         `json:"release_date" gorm:"size:20"`
	Rating        float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	IsFeatured    bool           `json:"is_featured" gorm:"default:false;index"`
	IsOnSale      bool           `json:"is_on_sale" gorm:"default:false"`
	SalePrice     float64        `json:"sale_price" gorm:"type:decimal(10,2);default:0"`
	ImageURL      string         `json:"image_url" gorm:"size:500"`
	Tags          pq.StringArray `json:"tags" gorm:"type:text[]"`
	ViewCount     int64          `json:"view_count" gorm:"default:0"`
	PurchaseCount int64          `json:"purchase_count" gorm:"default:0"`
}
