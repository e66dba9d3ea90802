package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubnavi/portal/internal/model"
)

type pgClubRepository struct {
	db *gorm.DB
}

func NewPGClubRepository(db *gorm.DB) ClubRepository {
	return &pgClubRepository{db: db}
}

func (r *pgClubRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Club, error) {
	var club model.Club
	if err := r.db.WithContext(ctx).First(&club, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

func (r *pgClubRepository) ListRecent(ctx context.Context, limit int) ([]model.Club, error) {
	var clubs []model.Club
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}
