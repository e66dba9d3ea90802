package model

import "time"

type DisplayMode string

const (
	DisplayModeOfficialOnly DisplayMode = "official_only"
	DisplayModeLocalOnly    DisplayMode = "local_only"
	DisplayModeAll          DisplayMode = "all"
)

// BannerSurface identifies a page slot with its own display-mode setting.
type BannerSurface string

const (
	SurfaceHome              BannerSurface = "home"
	SurfacePrefectureTop     BannerSurface = "prefecture_top"
	SurfacePrefectureSidebar BannerSurface = "prefecture_sidebar"
)

// BannerDisplaySettings is the single persisted row of per-surface banner
// display modes. It is read-only to the preview subsystem: overrides are
// computed into a copy, never written back.
type BannerDisplaySettings struct {
	ID                           uint         `gorm:"primaryKey" json:"-"`
	HomeDisplayMode              DisplayMode  `gorm:"type:text;not null;default:'all'" json:"home_display_mode"`
	PrefectureTopDisplayMode     DisplayMode  `gorm:"type:text;not null;default:'all'" json:"prefecture_top_display_mode"`
	PrefectureSidebarDisplayMode DisplayMode  `gorm:"type:text;not null;default:'all'" json:"prefecture_sidebar_display_mode"`
	SponsorTierFilter            *SponsorTier `gorm:"type:text" json:"sponsor_tier_filter,omitempty"`
	UpdatedAt                    time.Time    `json:"updated_at"`
}

func (BannerDisplaySettings) TableName() string { return "banner_display_settings" }

// ModeFor returns the display mode configured for a surface. An unknown
// surface gets the most permissive mode rather than an error.
func (s BannerDisplaySettings) ModeFor(surface BannerSurface) DisplayMode {
	switch surface {
	case SurfaceHome:
		return s.HomeDisplayMode
	case SurfacePrefectureTop:
		return s.PrefectureTopDisplayMode
	case SurfacePrefectureSidebar:
		return s.PrefectureSidebarDisplayMode
	}
	return DisplayModeAll
}

// DefaultBannerDisplaySettings is used when no settings row exists yet.
func DefaultBannerDisplaySettings() BannerDisplaySettings {
	return BannerDisplaySettings{
		HomeDisplayMode:              DisplayModeAll,
		PrefectureTopDisplayMode:     DisplayModeAll,
		PrefectureSidebarDisplayMode: DisplayModeAll,
	}
}
