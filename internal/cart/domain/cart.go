package domain

import (
	"context"
	"fmt"
	"time"
)

// Cart holds a user's line items. Line items are keyed by (ProductID, Size):
// the same product in two sizes is two lines, the same product in the same
// size is always one line with a summed quantity.
type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	UserID    string     `json:"user_id" gorm:"uniqueIndex;not null"`
	Items     []LineItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// LineItem is one (product, size) entry in a cart. Name, Price and ImageURL
// are snapshots taken at add-to-cart time; later catalog changes never alter
// a cart that already holds the item.
type LineItem struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	CartID    string `json:"-" gorm:"index"`
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"image_url"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// TableName specifies the table name
func (Cart) TableName() string {
	return "carts"
}

// TableName specifies the table name
func (LineItem) TableName() string {
	return "cart_line_items"
}

// ErrInvalidLineItem is returned for a line item with a negative price or a
// non-positive quantity.
var ErrInvalidLineItem = fmt.Errorf("invalid line item")

// Validate checks the line item invariants
func (li LineItem) Validate() error {
	if li.ProductID == 0 {
		return fmt.Errorf("%w: missing product id", ErrInvalidLineItem)
	}
	if li.Price < 0 {
		return fmt.Errorf("%w: negative price %d", ErrInvalidLineItem, li.Price)
	}
	if li.Quantity <= 0 {
		return fmt.Errorf("%w: non-positive quantity %d", ErrInvalidLineItem, li.Quantity)
	}
	return nil
}

// AddItem merges the item into the cart. An existing (ProductID, Size) line
// absorbs the quantity; otherwise a new line is appended.
func (c *Cart) AddItem(item LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID && c.Items[i].Size == item.Size {
			c.Items[i].Quantity += item.Quantity
			return nil
		}
	}

	item.CartID = c.ID
	c.Items = append(c.Items, item)
	return nil
}

// SetQuantity sets the quantity of a (ProductID, Size) line. A quantity of
// zero or less removes the line entirely; a zero-quantity line is never kept.
func (c *Cart) SetQuantity(productID uint, size string, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			if quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

// RemoveItem removes a (ProductID, Size) line from the cart
func (c *Cart) RemoveItem(productID uint, size string) bool {
	return c.SetQuantity(productID, size, 0)
}

// IsEmpty reports whether the cart holds no line items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CartRepository defines the contract for cart data access
type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*Cart, error)
	UpsertCart(ctx context.Context, cart *Cart) error
	DeleteCart(ctx context.Context, userID string) error
}

// ErrCartNotFound is returned when a user has no stored cart
var ErrCartNotFound = fmt.Errorf("cart not found")
