// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Attribute is a named product dimension (e.g. "color", "size") with an
// ordered, enumerated set of allowed values. Attributes are admin-authored
// and rarely change.
type Attribute struct {
	ID        uuid.UUID        // The Global Unique Identifier (GUID) for the attribute.
	Key       string           // Unique machine key, e.g. "color".
	Values    []AttributeValue // Ordered list of allowed values.
	CreatedAt time.Time        // Timestamp of when this attribute was created.
	UpdatedAt time.Time        // Timestamp of the last modification.
}

// AttributeValue is one allowed value of an attribute, with localized labels.
type AttributeValue struct {
	ID       string            // Value identifier within the attribute, e.g. "black".
	Labels   map[string]string // Localized display labels keyed by locale, e.g. {"en": "Black"}.
	Position int               // Ordering position within the attribute.
}

// ValueByID returns the value with the given ID, if present.
func (a *Attribute) ValueByID(id string) (*AttributeValue, bool) {
	for i := range a.Values {
		if a.Values[i].ID == id {
			return &a.Values[i], true
		}
	}

	return nil, false
}

// Label returns the display label for the given locale, falling back to any
// available label and finally to the value ID itself.
func (v *AttributeValue) Label(locale string) string {
	if label, ok := v.Labels[locale]; ok {
		return label
	}
	for _, label := range v.Labels {
		return label
	}

	return v.ID
}
