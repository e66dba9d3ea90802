package service

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"clubnavi/portal/internal/model"
	"clubnavi/portal/internal/repository"
)

// BannerRecord is the banner shape the merge and selection engines work
// on: persisted banners and the synthetic preview banner both project
// into it, so a merged list can hold either. String ids because the
// synthetic banner's id is not a uuid.
type BannerRecord struct {
	ID          string
	Name        string
	Image       string
	AltText     string
	LinkURL     string
	Category    model.BannerCategory
	SponsorTier *model.SponsorTier
	SortOrder   int
}

func recordFromBanner(b model.Banner) BannerRecord {
	return BannerRecord{
		ID:          b.ID.String(),
		Name:        b.Name,
		Image:       b.Image,
		AltText:     b.AltText,
		LinkURL:     b.LinkURL,
		Category:    b.Category,
		SponsorTier: b.SponsorTier,
		SortOrder:   b.SortOrder,
	}
}

func recordFromPreview(p model.BannerSinglePreview) BannerRecord {
	return BannerRecord{
		ID:          p.ID,
		Name:        p.Name,
		Image:       p.Image,
		AltText:     p.AltText,
		LinkURL:     p.LinkURL,
		Category:    p.Category,
		SponsorTier: p.SponsorTier,
		SortOrder:   p.SortOrder,
	}
}

func BannerRecords(banners []model.Banner) []BannerRecord {
	records := make([]BannerRecord, 0, len(banners))
	for _, b := range banners {
		records = append(records, recordFromBanner(b))
	}
	return records
}

// PreviewApplies reports whether an entry targets the page being rendered.
// Identity is compared exactly; substring matching would let a preview
// leak onto unrelated pages. A root-scoped banner_display preview applies
// everywhere, since display settings affect every surface.
func PreviewApplies(entry *model.PreviewEntry, pagePath string) bool {
	if entry == nil {
		return false
	}
	if entry.RedirectPath == pagePath {
		return true
	}
	if entry.RedirectPath != "/" {
		return false
	}
	switch entry.Type {
	case model.PreviewTypeBannerDisplay:
		return true
	case model.PreviewTypeBannerSingle, model.PreviewTypeHomePickup:
		return false
	}
	return false
}

// MergeBanners overlays a banner_single payload onto the persisted list:
// any persisted banner sharing the synthetic id is dropped, the synthetic
// banner is prepended, and the combined list is re-sorted by SortOrder.
// The input slice is never modified.
func MergeBanners(records []BannerRecord, p model.BannerSinglePreview) []BannerRecord {
	merged := make([]BannerRecord, 0, len(records)+1)
	merged = append(merged, recordFromPreview(p))
	for _, r := range records {
		if r.ID == p.ID {
			continue
		}
		merged = append(merged, r)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].SortOrder < merged[j].SortOrder
	})
	return merged
}

// MergeDisplaySettings shallow-overrides only the fields present in the
// payload onto a copy of the persisted settings.
func MergeDisplaySettings(persisted model.BannerDisplaySettings, p model.BannerDisplayPreview) model.BannerDisplaySettings {
	merged := persisted
	if p.HomeDisplayMode != nil {
		merged.HomeDisplayMode = *p.HomeDisplayMode
	}
	if p.PrefectureTopDisplayMode != nil {
		merged.PrefectureTopDisplayMode = *p.PrefectureTopDisplayMode
	}
	if p.PrefectureSidebarDisplayMode != nil {
		merged.PrefectureSidebarDisplayMode = *p.PrefectureSidebarDisplayMode
	}
	if p.SponsorTierFilter != nil {
		merged.SponsorTierFilter = p.SponsorTierFilter
	}
	return merged
}

// MergePickup resolves the payload's club-id slots in order. Nil slots,
// unparsable ids, and ids with no matching club are skipped; filling a
// shortfall back up to the slot count is the caller's concern.
func MergePickup(ctx context.Context, clubs repository.ClubRepository, p model.HomePickupPreview) ([]model.Club, error) {
	picked := make([]model.Club, 0, model.HomePickupSlots)
	for _, slot := range p.ClubIDs {
		if slot == nil {
			continue
		}
		id, err := uuid.Parse(*slot)
		if err != nil {
			continue
		}
		club, err := clubs.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if club == nil {
			continue
		}
		picked = append(picked, *club)
	}
	return picked, nil
}
