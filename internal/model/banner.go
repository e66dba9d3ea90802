package model

import (
	"time"

	"github.com/google/uuid"
)

type BannerCategory string

const (
	BannerCategoryClub    BannerCategory = "club"
	BannerCategorySponsor BannerCategory = "sponsor"
)

type SponsorTier string

const (
	SponsorTierOfficial SponsorTier = "OFFICIAL"
	SponsorTierLocal    SponsorTier = "LOCAL"
)

type Banner struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Image       string         `gorm:"not null" json:"image"`
	AltText     string         `json:"alt_text"`
	LinkURL     string         `json:"link_url"`
	Category    BannerCategory `gorm:"type:text;not null;default:'club'" json:"category"`
	SponsorTier *SponsorTier   `gorm:"type:text" json:"sponsor_tier,omitempty"`
	SortOrder   int            `gorm:"not null;default:0" json:"sort_order"`
	Active      bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Banner) TableName() string { return "banners" }
