package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/raritone/storefront/internal/cart/domain"
)

var tracer = otel.Tracer("cart-repository")

// GormCartRepositoryWithTracing wraps GormCartRepository with tracing
type GormCartRepositoryWithTracing struct {
	*GormCartRepository
}

// NewGormCartRepositoryWithTracing creates a new repository with tracing
func NewGormCartRepositoryWithTracing(db *gorm.DB) *GormCartRepositoryWithTracing {
	return &GormCartRepositoryWithTracing{
		GormCartRepository: NewGormCartRepository(db),
	}
}

func (r *GormCartRepositoryWithTracing) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	ctx, span := tracer.Start(ctx, "repository.GetCart",
		trace.WithAttributes(
			attribute.String("cart.user_id", userID),
		),
	)
	defer span.End()

	cart, err := r.GormCartRepository.GetCart(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("cart.items", len(cart.Items)))
	return cart, nil
}

func (r *GormCartRepositoryWithTracing) UpsertCart(ctx context.Context, cart *domain.Cart) error {
	ctx, span := tracer.Start(ctx, "repository.UpsertCart",
		trace.WithAttributes(
			attribute.String("cart.user_id", cart.UserID),
			attribute.Int("cart.items", len(cart.Items)),
		),
	)
	defer span.End()

	if err := r.GormCartRepository.UpsertCart(ctx, cart); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (r *GormCartRepositoryWithTracing) DeleteCart(ctx context.Context, userID string) error {
	ctx, span := tracer.Start(ctx, "repository.DeleteCart",
		trace.WithAttributes(
			attribute.String("cart.user_id", userID),
		),
	)
	defer span.End()

	if err := r.GormCartRepository.DeleteCart(ctx, userID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
