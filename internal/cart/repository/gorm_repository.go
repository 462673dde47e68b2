package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/raritone/storefront/internal/cart/domain"
)

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Cart{}, &domain.LineItem{})
}

func (r *GormCartRepository) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return &cart, nil
}

// UpsertCart stores the full cart state. Line items are replaced wholesale so
// merged and removed lines never leave stale rows behind.
func (r *GormCartRepository) UpsertCart(ctx context.Context, cart *domain.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(cart).Error; err != nil {
			return fmt.Errorf("failed to save cart: %w", err)
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&domain.LineItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear line items: %w", err)
		}
		for i := range cart.Items {
			cart.Items[i].ID = 0
			cart.Items[i].CartID = cart.ID
		}
		if len(cart.Items) > 0 {
			if err := tx.Create(&cart.Items).Error; err != nil {
				return fmt.Errorf("failed to save line items: %w", err)
			}
		}
		return nil
	})
}

func (r *GormCartRepository) DeleteCart(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.Cart{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
