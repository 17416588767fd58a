package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/domain"
	pkgkafka "github.com/MAnojSHA5799/Candebrilla-web-1/pkg/kafka"
)

// Kafka topic constants for product domain events.
const (
	TopicProductCreated = "candebrilla.product.created"
	TopicProductUpdated = "candebrilla.product.updated"
	TopicProductDeleted = "candebrilla.product.deleted"
)

// Aggregate type constant.
const AggregateTypeProduct = "product"

// Source identifier for events originating from the catalog service.
const SourceCatalogService = "catalog-service"

// ProductData is the payload for product.created and product.updated events.
type ProductData struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	Size          string  `json:"size"`
	StockQuantity int     `json:"stock_quantity"`
	ImageURL      *string `json:"image_url,omitempty"`
}

// ProductDeletedData is the payload for a product.deleted event.
type ProductDeletedData struct {
	ID string `json:"id"`
}

// Producer publishes product domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the catalog service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

func productData(product *domain.Product) ProductData {
	return ProductData{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		Category:      product.Category,
		Size:          product.Size,
		StockQuantity: product.StockQuantity,
		ImageURL:      product.ImageURL,
	}
}

// PublishProductCreated publishes a product.created event.
func (p *Producer) PublishProductCreated(ctx context.Context, product *domain.Product) error {
	event, err := pkgkafka.NewEvent(TopicProductCreated, product.ID, AggregateTypeProduct, SourceCatalogService, productData(product))
	if err != nil {
		return fmt.Errorf("create product.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicProductCreated, event); err != nil {
		return fmt.Errorf("publish product.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published product.created event",
		slog.String("product_id", product.ID),
	)

	return nil
}

// PublishProductUpdated publishes a product.updated event.
func (p *Producer) PublishProductUpdated(ctx context.Context, product *domain.Product) error {
	event, err := pkgkafka.NewEvent(TopicProductUpdated, product.ID, AggregateTypeProduct, SourceCatalogService, productData(product))
	if err != nil {
		return fmt.Errorf("create product.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicProductUpdated, event); err != nil {
		return fmt.Errorf("publish product.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published product.updated event",
		slog.String("product_id", product.ID),
	)

	return nil
}

// PublishProductDeleted publishes a product.deleted event.
func (p *Producer) PublishProductDeleted(ctx context.Context, id string) error {
	event, err := pkgkafka.NewEvent(TopicProductDeleted, id, AggregateTypeProduct, SourceCatalogService, ProductDeletedData{ID: id})
	if err != nil {
		return fmt.Errorf("create product.deleted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicProductDeleted, event); err != nil {
		return fmt.Errorf("publish product.deleted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published product.deleted event",
		slog.String("product_id", id),
	)

	return nil
}
