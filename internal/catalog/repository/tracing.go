package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/velocita/storefront/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// TracedCatalogRepository wraps a CatalogRepository with tracing spans for
// context-aware call sites.
type TracedCatalogRepository struct {
	domain.CatalogRepository
}

// NewTracedCatalogRepository creates a new repository with tracing
func NewTracedCatalogRepository(inner domain.CatalogRepository) *TracedCatalogRepository {
	return &TracedCatalogRepository{CatalogRepository: inner}
}

// FindAllWithContext loads the catalog under a span
func (r *TracedCatalogRepository) FindAllWithContext(ctx context.Context) ([]domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	products, err := r.FindAll()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.size", len(products)))
	return products, nil
}

// FindByIDWithContext looks up a product under a span
func (r *TracedCatalogRepository) FindByIDWithContext(ctx context.Context, id string) (*domain.Product, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.String("product.id", id)),
	)
	defer span.End()

	product, err := r.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return product, nil
}
