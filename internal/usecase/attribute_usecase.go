// Package usecase defines the application's use case interfaces and their
// input/output shapes.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AttributeValueInput is one allowed value supplied when authoring an attribute.
type AttributeValueInput struct {
	ID     string            `json:"id" validate:"required"`
	Labels map[string]string `json:"labels"`
}

// AttributeUsecase defines the interface for attribute catalog administration.
type AttributeUsecase interface {
	// CreateAttribute registers a new product dimension with its value set.
	CreateAttribute(ctx context.Context, key string, values []AttributeValueInput) (*entity.Attribute, error)

	// GetAttribute retrieves an attribute by key.
	GetAttribute(ctx context.Context, key string) (*entity.Attribute, error)

	// ListAttributes retrieves all attributes.
	ListAttributes(ctx context.Context) ([]*entity.Attribute, error)

	// UpdateAttribute replaces an attribute's value set.
	UpdateAttribute(ctx context.Context, key string, values []AttributeValueInput) (*entity.Attribute, error)
}
