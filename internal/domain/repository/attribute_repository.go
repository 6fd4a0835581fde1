// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for attribute persistence.
var (
	// ErrAttributeNotFound is returned when an attribute is not found.
	ErrAttributeNotFound = errors.New("attribute not found")
	// ErrDuplicateAttribute is returned when an attribute key already exists.
	ErrDuplicateAttribute = errors.New("attribute already exists")
)

// AttributeRepository defines the interface for attribute-related database operations.
type AttributeRepository interface {
	// CreateAttribute persists a new attribute with its ordered value set.
	CreateAttribute(ctx context.Context, attribute *entity.Attribute) error

	// FindAttributeByKey retrieves an attribute by its unique key.
	FindAttributeByKey(ctx context.Context, key string) (*entity.Attribute, error)

	// ListAttributes retrieves all attributes ordered by key.
	ListAttributes(ctx context.Context) ([]*entity.Attribute, error)

	// UpdateAttribute replaces an attribute's value set wholesale.
	UpdateAttribute(ctx context.Context, attribute *entity.Attribute) error
}
