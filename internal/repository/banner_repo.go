package repository

import (
	"context"

	"clubnavi/portal/internal/model"
)

// BannerRepository is the read-side of the persisted banner list.
// The preview subsystem never writes banners; CRUD lives elsewhere.
type BannerRepository interface {
	ListActive(ctx context.Context) ([]model.Banner, error)
}
