package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// SettingsRepository defines the interface for store-wide key-value settings.
// Settings are read fresh on every pricing resolution; nothing is cached in
// process, so concurrent admin updates take effect immediately.
type SettingsRepository interface {
	// GetSettings loads all store settings.
	GetSettings(ctx context.Context) (*entity.StoreSettings, error)

	// SetSetting upserts one key-value pair.
	SetSetting(ctx context.Context, key, value string) error
}
