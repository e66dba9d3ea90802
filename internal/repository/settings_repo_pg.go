package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clubnavi/portal/internal/model"
)

type pgSettingsRepository struct {
	db *gorm.DB
}

func NewPGSettingsRepository(db *gorm.DB) SettingsRepository {
	return &pgSettingsRepository{db: db}
}

func (r *pgSettingsRepository) GetBannerDisplaySettings(ctx context.Context) (model.BannerDisplaySettings, error) {
	var settings model.BannerDisplaySettings
	if err := r.db.WithContext(ctx).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.DefaultBannerDisplaySettings(), nil
		}
		return model.BannerDisplaySettings{}, err
	}
	return settings, nil
}
