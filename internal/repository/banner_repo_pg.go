package repository

import (
	"context"

	"gorm.io/gorm"

	"clubnavi/portal/internal/model"
)

type pgBannerRepository struct {
	db *gorm.DB
}

func NewPGBannerRepository(db *gorm.DB) BannerRepository {
	return &pgBannerRepository{db: db}
}

func (r *pgBannerRepository) ListActive(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("sort_order ASC, created_at ASC").
		Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}
