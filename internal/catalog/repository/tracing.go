package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/raritone/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormProductRepositoryWithTracing wraps GormProductRepository with tracing
type GormProductRepositoryWithTracing struct {
	*GormProductRepository
}

// NewGormProductRepositoryWithTracing creates a new repository with tracing
func NewGormProductRepositoryWithTracing(db *gorm.DB) *GormProductRepositoryWithTracing {
	return &GormProductRepositoryWithTracing{
		GormProductRepository: NewGormProductRepository(db),
	}
}

// CreateWithContext records a span around product creation
func (r *GormProductRepositoryWithTracing) CreateWithContext(ctx context.Context, product *domain.Product) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("product.name", product.Name),
			attribute.String("product.category", product.Category),
			attribute.String("product.brand", product.Brand),
			attribute.Int64("product.price_minor", product.Price),
			attribute.Int("product.stock", product.Stock),
		),
	)
	defer span.End()

	err := r.GormProductRepository.Create(product)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("product.id", int(product.ID)))
	return nil
}

// FindByIDWithContext records a span around a single product lookup
func (r *GormProductRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
		),
	)
	defer span.End()

	product, err := r.GormProductRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.name", product.Name),
		attribute.Int("product.stock", product.Stock),
	)
	return product, nil
}

// FindAllWithContext records a span around the full catalog scan
func (r *GormProductRepositoryWithTracing) FindAllWithContext(ctx context.Context) ([]domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	products, err := r.GormProductRepository.FindAll()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

// UpdateStockWithContext records a span around a stock update
func (r *GormProductRepositoryWithTracing) UpdateStockWithContext(ctx context.Context, id uint, stock int) error {
	_, span := tracer.Start(ctx, "repository.UpdateStock",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.Int("product.stock", stock),
		),
	)
	defer span.End()

	err := r.GormProductRepository.UpdateStock(id, stock)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
