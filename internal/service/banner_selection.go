package service

import (
	"sort"

	"clubnavi/portal/internal/model"
)

// BannerView is the projection a rendering surface consumes.
type BannerView struct {
	ID       string               `json:"id"`
	Image    string               `json:"image"`
	Alt      string               `json:"alt"`
	Link     string               `json:"link"`
	Category model.BannerCategory `json:"category"`
}

// SelectBanners produces the final ordered list for one page surface.
// Club banners always pass; sponsor banners are filtered by the surface's
// display mode and, when configured, the sponsor-tier filter. An unknown
// mode behaves as "all" so a misconfigured row never blanks a page.
// Ties in SortOrder keep their input order.
func SelectBanners(records []BannerRecord, mode model.DisplayMode, tierFilter *model.SponsorTier) []BannerView {
	kept := make([]BannerRecord, 0, len(records))
	for _, r := range records {
		if r.Category != model.BannerCategorySponsor {
			kept = append(kept, r)
			continue
		}
		if !sponsorPasses(r.SponsorTier, mode) {
			continue
		}
		if tierFilter != nil && (r.SponsorTier == nil || *r.SponsorTier != *tierFilter) {
			continue
		}
		kept = append(kept, r)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].SortOrder < kept[j].SortOrder
	})

	views := make([]BannerView, 0, len(kept))
	for _, r := range kept {
		alt := r.AltText
		if alt == "" {
			alt = r.Name
		}
		views = append(views, BannerView{
			ID:       r.ID,
			Image:    r.Image,
			Alt:      alt,
			Link:     r.LinkURL,
			Category: r.Category,
		})
	}
	return views
}

func sponsorPasses(tier *model.SponsorTier, mode model.DisplayMode) bool {
	switch mode {
	case model.DisplayModeOfficialOnly:
		return tier != nil && *tier == model.SponsorTierOfficial
	case model.DisplayModeLocalOnly:
		return tier == nil || *tier == model.SponsorTierLocal
	case model.DisplayModeAll:
		return true
	}
	// Unknown mode: most permissive.
	return true
}
