package model

import "time"

// StoreSettingModel mirrors the 'store_settings' key-value table.
type StoreSettingModel struct {
	Key       string `gorm:"type:varchar(64);primary_key"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreSettingModel) TableName() string {
	return "store_settings"
}
