package impl

import (
	"context"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type attributeService struct {
	attributeRepo repository.AttributeRepository
}

// AttributeServiceParams holds dependencies for AttributeService, injected by Fx.
type AttributeServiceParams struct {
	fx.In

	AttributeRepo repository.AttributeRepository
}

// NewAttributeService creates a new attribute service instance
func NewAttributeService(params AttributeServiceParams) usecase.AttributeUsecase {
	return &attributeService{
		attributeRepo: params.AttributeRepo,
	}
}

// CreateAttribute registers a new product dimension with its value set.
func (s *attributeService) CreateAttribute(ctx context.Context, key string, values []usecase.AttributeValueInput) (*entity.Attribute, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" || len(values) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("attribute key and at least one value are required")
	}

	attribute := &entity.Attribute{
		ID:     uuid.New(),
		Key:    key,
		Values: buildValues(values),
	}

	if err := s.attributeRepo.CreateAttribute(ctx, attribute); err != nil {
		if errors.Is(err, repository.ErrDuplicateAttribute) {
			return nil, domainerrors.ErrDuplicateAttribute
		}

		return nil, errors.Wrap(err, "failed to create attribute")
	}

	return attribute, nil
}

// GetAttribute retrieves an attribute by key.
func (s *attributeService) GetAttribute(ctx context.Context, key string) (*entity.Attribute, error) {
	attribute, err := s.attributeRepo.FindAttributeByKey(ctx, strings.ToLower(key))
	if err != nil {
		if errors.Is(err, repository.ErrAttributeNotFound) {
			return nil, domainerrors.ErrAttributeNotFound
		}

		return nil, errors.Wrap(err, "failed to find attribute by key")
	}

	return attribute, nil
}

// ListAttributes retrieves all attributes.
func (s *attributeService) ListAttributes(ctx context.Context) ([]*entity.Attribute, error) {
	attributes, err := s.attributeRepo.ListAttributes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list attributes")
	}

	return attributes, nil
}

// UpdateAttribute replaces an attribute's value set wholesale.
func (s *attributeService) UpdateAttribute(ctx context.Context, key string, values []usecase.AttributeValueInput) (*entity.Attribute, error) {
	if len(values) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one value is required")
	}

	attribute, err := s.GetAttribute(ctx, key)
	if err != nil {
		return nil, err
	}

	attribute.Values = buildValues(values)
	attribute.UpdatedAt = time.Now()

	if err := s.attributeRepo.UpdateAttribute(ctx, attribute); err != nil {
		return nil, errors.Wrap(err, "failed to update attribute")
	}

	return attribute, nil
}

func buildValues(inputs []usecase.AttributeValueInput) []entity.AttributeValue {
	values := make([]entity.AttributeValue, 0, len(inputs))
	for position, input := range inputs {
		values = append(values, entity.AttributeValue{
			ID:       strings.ToLower(strings.TrimSpace(input.ID)),
			Labels:   input.Labels,
			Position: position,
		})
	}

	return values
}
