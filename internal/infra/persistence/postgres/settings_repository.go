package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the domain.SettingsRepository interface using GORM.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// GetSettings loads all store settings as one key-value map.
func (repo *settingsRepository) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	var settingMs []model.StoreSettingModel
	if err := repo.db.WithContext(ctx).Find(&settingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load store settings")
	}

	values := make(map[string]string, len(settingMs))
	for i := range settingMs {
		values[settingMs[i].Key] = settingMs[i].Value
	}

	return &entity.StoreSettings{Values: values}, nil
}

// SetSetting upserts one key-value pair.
func (repo *settingsRepository) SetSetting(ctx context.Context, key, value string) error {
	settingM := &model.StoreSettingModel{Key: key, Value: value}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(settingM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set store setting")
	}

	return nil
}
