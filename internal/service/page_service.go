package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clubnavi/portal/internal/model"
	"clubnavi/portal/internal/repository"
)

type ClubView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Prefecture string `json:"prefecture"`
	Image      string `json:"image"`
}

type HomePageView struct {
	PickupClubs []ClubView   `json:"pickup_clubs"`
	Banners     []BannerView `json:"banners"`
}

type PrefecturePageView struct {
	Prefecture     string       `json:"prefecture"`
	TopBanners     []BannerView `json:"top_banners"`
	SidebarBanners []BannerView `json:"sidebar_banners"`
}

// PageService assembles the view models the site renders. previewID is
// the preview_id cookie value ("" when absent); with no active preview
// the output is exactly what the persisted data dictates.
type PageService interface {
	HomePage(ctx context.Context, previewID string) (*HomePageView, error)
	PrefecturePage(ctx context.Context, code, previewID string) (*PrefecturePageView, error)
}

type pageService struct {
	banners  repository.BannerRepository
	clubs    repository.ClubRepository
	settings repository.SettingsRepository
	previews PreviewService
	logger   *zap.Logger
}

func NewPageService(
	banners repository.BannerRepository,
	clubs repository.ClubRepository,
	settings repository.SettingsRepository,
	previews PreviewService,
	logger *zap.Logger,
) PageService {
	return &pageService{
		banners:  banners,
		clubs:    clubs,
		settings: settings,
		previews: previews,
		logger:   logger,
	}
}

func (s *pageService) HomePage(ctx context.Context, previewID string) (*HomePageView, error) {
	records, settings, entry, err := s.loadMerged(ctx, previewID, "/")
	if err != nil {
		return nil, err
	}

	var picked []model.Club
	if entry != nil {
		if p, ok := entry.Payload.(model.HomePickupPreview); ok {
			picked, err = MergePickup(ctx, s.clubs, p)
			if err != nil {
				// A broken preview must never break the page itself.
				s.logger.Warn("pickup preview merge failed, rendering persisted data", zap.Error(err))
				picked = nil
			}
		}
	}
	picked, err = s.fillPickup(ctx, picked)
	if err != nil {
		return nil, fmt.Errorf("load pickup clubs: %w", err)
	}

	return &HomePageView{
		PickupClubs: clubViews(picked),
		Banners:     SelectBanners(records, settings.ModeFor(model.SurfaceHome), settings.SponsorTierFilter),
	}, nil
}

func (s *pageService) PrefecturePage(ctx context.Context, code, previewID string) (*PrefecturePageView, error) {
	records, settings, _, err := s.loadMerged(ctx, previewID, "/prefectures/"+code)
	if err != nil {
		return nil, err
	}

	return &PrefecturePageView{
		Prefecture:     code,
		TopBanners:     SelectBanners(records, settings.ModeFor(model.SurfacePrefectureTop), settings.SponsorTierFilter),
		SidebarBanners: SelectBanners(records, settings.ModeFor(model.SurfacePrefectureSidebar), settings.SponsorTierFilter),
	}, nil
}

// loadMerged fetches persisted banners and display settings, then overlays
// the active preview for pagePath if one exists. It returns the (possibly
// merged) records and settings plus the applied entry for payload types
// the caller handles itself.
func (s *pageService) loadMerged(ctx context.Context, previewID, pagePath string) ([]BannerRecord, model.BannerDisplaySettings, *model.PreviewEntry, error) {
	banners, err := s.banners.ListActive(ctx)
	if err != nil {
		return nil, model.BannerDisplaySettings{}, nil, fmt.Errorf("load banners: %w", err)
	}
	settings, err := s.settings.GetBannerDisplaySettings(ctx)
	if err != nil {
		return nil, model.BannerDisplaySettings{}, nil, fmt.Errorf("load display settings: %w", err)
	}

	records := BannerRecords(banners)
	entry := s.activePreview(ctx, previewID, pagePath)
	if entry == nil {
		return records, settings, nil, nil
	}

	switch p := entry.Payload.(type) {
	case model.BannerSinglePreview:
		records = MergeBanners(records, p)
	case model.BannerDisplayPreview:
		settings = MergeDisplaySettings(settings, p)
	case model.HomePickupPreview:
		// Handled by the home page, which owns club resolution.
	}
	return records, settings, entry, nil
}

// activePreview resolves a preview cookie to an entry that targets
// pagePath. Absence and lookup failures both come back nil: most requests
// carry no preview, and a preview failure must degrade to the plain page.
func (s *pageService) activePreview(ctx context.Context, previewID, pagePath string) *model.PreviewEntry {
	if previewID == "" {
		return nil
	}
	entry, err := s.previews.Resolve(ctx, previewID)
	if err != nil {
		s.logger.Warn("preview lookup failed, rendering persisted data", zap.Error(err))
		return nil
	}
	if entry == nil {
		s.logger.Debug("preview cookie names no live entry", zap.String("preview_id", previewID))
		return nil
	}
	if !PreviewApplies(entry, pagePath) {
		return nil
	}
	return entry
}

// fillPickup tops the pickup list up to the slot count with the most
// recent clubs, skipping ones already picked.
func (s *pageService) fillPickup(ctx context.Context, picked []model.Club) ([]model.Club, error) {
	if len(picked) >= model.HomePickupSlots {
		return picked[:model.HomePickupSlots], nil
	}

	recent, err := s.clubs.ListRecent(ctx, model.HomePickupSlots+len(picked))
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(picked))
	for _, c := range picked {
		seen[c.ID.String()] = true
	}
	for _, c := range recent {
		if len(picked) >= model.HomePickupSlots {
			break
		}
		if seen[c.ID.String()] {
			continue
		}
		picked = append(picked, c)
	}
	return picked, nil
}

func clubViews(clubs []model.Club) []ClubView {
	views := make([]ClubView, 0, len(clubs))
	for _, c := range clubs {
		views = append(views, ClubView{
			ID:         c.ID.String(),
			Name:       c.Name,
			Prefecture: c.Prefecture,
			Image:      c.Image,
		})
	}
	return views
}
