package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// attributeRepository implements the domain.AttributeRepository interface using GORM.
type attributeRepository struct {
	db *gorm.DB
}

// NewAttributeRepository is the constructor for attributeRepository.
func NewAttributeRepository(db *gorm.DB) repository.AttributeRepository {
	return &attributeRepository{db: db}
}

// CreateAttribute persists a new attribute with its ordered value set.
func (repo *attributeRepository) CreateAttribute(ctx context.Context, attribute *entity.Attribute) error {
	attributeM := fromAttributeDomain(attribute)

	if err := repo.db.WithContext(ctx).Create(attributeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAttribute
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create attribute")
	}

	attribute.ID = attributeM.ID
	attribute.CreatedAt = attributeM.CreatedAt
	attribute.UpdatedAt = attributeM.UpdatedAt

	return nil
}

// FindAttributeByKey retrieves an attribute by its unique key.
func (repo *attributeRepository) FindAttributeByKey(ctx context.Context, key string) (*entity.Attribute, error) {
	var attributeM model.AttributeModel
	err := repo.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("key = ?", key).
		First(&attributeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttributeNotFound
		}

		return nil, errors.Wrap(err, "failed to find attribute by key")
	}

	return toAttributeDomain(&attributeM), nil
}

// ListAttributes retrieves all attributes ordered by key.
func (repo *attributeRepository) ListAttributes(ctx context.Context) ([]*entity.Attribute, error) {
	var attributeMs []model.AttributeModel
	err := repo.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("key ASC").
		Find(&attributeMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list attributes")
	}

	attributes := make([]*entity.Attribute, 0, len(attributeMs))
	for i := range attributeMs {
		attributes = append(attributes, toAttributeDomain(&attributeMs[i]))
	}

	return attributes, nil
}

// UpdateAttribute replaces an attribute's value set wholesale: the old value
// rows are deleted and the new ordered set inserted fresh.
func (repo *attributeRepository) UpdateAttribute(ctx context.Context, attribute *entity.Attribute) error {
	attributeM := fromAttributeDomain(attribute)

	tx := repo.db.WithContext(ctx)
	if err := tx.Where("attribute_id = ?", attribute.ID).Delete(&model.AttributeValueModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace attribute values")
	}

	if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(attributeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAttribute
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update attribute")
	}

	attribute.UpdatedAt = attributeM.UpdatedAt

	return nil
}

func toAttributeDomain(data *model.AttributeModel) *entity.Attribute {
	attribute := &entity.Attribute{
		ID:        data.ID,
		Key:       data.Key,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	attribute.Values = make([]entity.AttributeValue, 0, len(data.Values))
	for i := range data.Values {
		valueM := &data.Values[i]
		attribute.Values = append(attribute.Values, entity.AttributeValue{
			ID:       valueM.ValueID,
			Labels:   valueM.Labels,
			Position: valueM.Position,
		})
	}

	return attribute
}

func fromAttributeDomain(data *entity.Attribute) *model.AttributeModel {
	attributeM := &model.AttributeModel{
		ID:        data.ID,
		Key:       data.Key,
		CreatedAt: data.CreatedAt,
	}

	attributeM.Values = make([]model.AttributeValueModel, 0, len(data.Values))
	for i := range data.Values {
		value := &data.Values[i]
		attributeM.Values = append(attributeM.Values, model.AttributeValueModel{
			AttributeID: data.ID,
			ValueID:     value.ID,
			Labels:      value.Labels,
			Position:    value.Position,
		})
	}

	return attributeM
}
