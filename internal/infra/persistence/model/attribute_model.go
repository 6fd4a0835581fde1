// Package model holds the GORM persistence models mirroring the database
// schema. Models are mapped to and from pure domain entities at the
// repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AttributeModel mirrors the 'attributes' table. PostgreSQL generates UUIDs
// via uuid_generate_v7().
type AttributeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Key       string    `gorm:"type:varchar(64);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Values []AttributeValueModel `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AttributeModel) TableName() string {
	return "attributes"
}

// AttributeValueModel mirrors the 'attribute_values' table. The value ID is
// unique within its attribute, not globally.
type AttributeValueModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AttributeID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_attribute_values_value,priority:1"`
	ValueID     string            `gorm:"type:varchar(64);not null;uniqueIndex:idx_attribute_values_value,priority:2"`
	Labels      map[string]string `gorm:"type:jsonb;serializer:json"`
	Position    int               `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AttributeValueModel) TableName() string {
	return "attribute_values"
}
