package repository

import (
	"context"

	"clubnavi/portal/internal/model"
)

type SettingsRepository interface {
	// GetBannerDisplaySettings returns the single settings row, or the
	// permissive defaults when none has been saved yet.
	GetBannerDisplaySettings(ctx context.Context) (model.BannerDisplaySettings, error)
}
