package domain

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Product represents a catalog product. Price is stored in currency
// minor units so that totals downstream stay exact.
type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	Category    string         `json:"category"`
	Brand       string         `json:"brand"`
	Size        string         `json:"size"`
	Color       string         `json:"color"`
	Price       int64          `json:"price" gorm:"not null"`
	Stock       int            `json:"stock" gorm:"not null;default:0"`
	ImageURL    string         `json:"image_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsAvailable checks if product is in stock
func (p *Product) IsAvailable() bool {
	return p.Stock > 0
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindAll() ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)
	UpdateStock(id uint, stock int) error
}
