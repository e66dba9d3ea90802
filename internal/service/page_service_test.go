package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clubnavi/portal/internal/model"
	"clubnavi/portal/internal/repository"
)

type fakeClubRepo struct {
	clubs  []model.Club
	recent []model.Club
}

func (f *fakeClubRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Club, error) {
	for _, c := range f.clubs {
		if c.ID == id {
			club := c
			return &club, nil
		}
	}
	return nil, nil
}

func (f *fakeClubRepo) ListRecent(_ context.Context, limit int) ([]model.Club, error) {
	if limit > len(f.recent) {
		limit = len(f.recent)
	}
	return f.recent[:limit], nil
}

type fakeBannerRepo struct {
	banners []model.Banner
}

func (f *fakeBannerRepo) ListActive(_ context.Context) ([]model.Banner, error) {
	return f.banners, nil
}

type fakeSettingsRepo struct {
	settings model.BannerDisplaySettings
}

func (f *fakeSettingsRepo) GetBannerDisplaySettings(_ context.Context) (model.BannerDisplaySettings, error) {
	return f.settings, nil
}

func newTestPageService(t *testing.T, banners []model.Banner, clubs *fakeClubRepo, settings model.BannerDisplaySettings) (PageService, PreviewService) {
	t.Helper()
	previews := NewPreviewService(repository.NewMemoryPreviewStore())
	pages := NewPageService(
		&fakeBannerRepo{banners: banners},
		clubs,
		&fakeSettingsRepo{settings: settings},
		previews,
		zap.NewNop(),
	)
	return pages, previews
}

func someClubs(n int) []model.Club {
	clubs := make([]model.Club, 0, n)
	for i := 0; i < n; i++ {
		clubs = append(clubs, model.Club{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("Club %d", i),
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Hour),
		})
	}
	return clubs
}

func TestHomePage_NoPreview(t *testing.T) {
	clubs := someClubs(4)
	tier := model.SponsorTierLocal
	banners := []model.Banner{
		{ID: uuid.New(), Name: "Club banner", Category: model.BannerCategoryClub, SortOrder: 2},
		{ID: uuid.New(), Name: "Local sponsor", Category: model.BannerCategorySponsor, SponsorTier: &tier, SortOrder: 1},
	}
	pages, _ := newTestPageService(t, banners, &fakeClubRepo{clubs: clubs, recent: clubs}, model.BannerDisplaySettings{
		HomeDisplayMode: model.DisplayModeOfficialOnly,
	})

	view, err := pages.HomePage(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, view.Banners, 1, "official_only drops the local sponsor")
	assert.Equal(t, "Club banner", view.Banners[0].Alt)

	require.Len(t, view.PickupClubs, model.HomePickupSlots)
	assert.Equal(t, "Club 0", view.PickupClubs[0].Name, "most recent clubs fill the slots")
}

func TestHomePage_PickupPreviewWithFallback(t *testing.T) {
	clubs := someClubs(4)
	repo := &fakeClubRepo{clubs: clubs, recent: clubs}
	pages, previews := newTestPageService(t, nil, repo, model.DefaultBannerDisplaySettings())

	// Preview picks the oldest club; the remaining slots fall back to the
	// most recent ones without duplicating the pick.
	pickedID := clubs[3].ID.String()
	payload, _ := json.Marshal(map[string]any{"club_ids": []any{pickedID, nil}})
	entry, err := previews.Create(context.Background(), "home_pickup", "/", payload)
	require.NoError(t, err)

	view, err := pages.HomePage(context.Background(), entry.ID)
	require.NoError(t, err)

	require.Len(t, view.PickupClubs, model.HomePickupSlots)
	assert.Equal(t, "Club 3", view.PickupClubs[0].Name)
	assert.Equal(t, "Club 0", view.PickupClubs[1].Name)
	assert.Equal(t, "Club 1", view.PickupClubs[2].Name)
}

func TestHomePage_BannerSinglePreview(t *testing.T) {
	banners := []model.Banner{
		{ID: uuid.New(), Name: "b1", Category: model.BannerCategoryClub, SortOrder: 1},
		{ID: uuid.New(), Name: "b2", Category: model.BannerCategoryClub, SortOrder: 2},
	}
	clubs := &fakeClubRepo{recent: someClubs(3)}
	pages, previews := newTestPageService(t, banners, clubs, model.DefaultBannerDisplaySettings())

	entry, err := previews.Create(context.Background(), "banner_single", "/", []byte(`{"name":"Draft","image":"draft.png"}`))
	require.NoError(t, err)

	view, err := pages.HomePage(context.Background(), entry.ID)
	require.NoError(t, err)

	require.Len(t, view.Banners, 3)
	assert.Equal(t, model.PreviewBannerID, view.Banners[0].ID, "synthetic banner sorts first")
	assert.Equal(t, "Draft", view.Banners[0].Alt)
}

func TestHomePage_PreviewForOtherPageDoesNotLeak(t *testing.T) {
	banners := []model.Banner{
		{ID: uuid.New(), Name: "b1", Category: model.BannerCategoryClub},
	}
	pages, previews := newTestPageService(t, banners, &fakeClubRepo{recent: someClubs(3)}, model.DefaultBannerDisplaySettings())

	entry, err := previews.Create(context.Background(), "banner_single", "/prefectures/tokyo", []byte(`{"name":"Draft"}`))
	require.NoError(t, err)

	view, err := pages.HomePage(context.Background(), entry.ID)
	require.NoError(t, err)
	require.Len(t, view.Banners, 1)
	assert.Equal(t, "b1", view.Banners[0].Alt)
}

func TestHomePage_RepeatedRendersIdentical(t *testing.T) {
	banners := []model.Banner{
		{ID: uuid.New(), Name: "b1", Category: model.BannerCategoryClub, SortOrder: 1},
	}
	pages, previews := newTestPageService(t, banners, &fakeClubRepo{recent: someClubs(3)}, model.DefaultBannerDisplaySettings())

	entry, err := previews.Create(context.Background(), "banner_single", "/", []byte(`{"name":"Draft"}`))
	require.NoError(t, err)

	first, err := pages.HomePage(context.Background(), entry.ID)
	require.NoError(t, err)
	second, err := pages.HomePage(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second, "a render pass that fetches twice sees one consistent preview")
}

func TestHomePage_UnknownPreviewIDFallsBack(t *testing.T) {
	banners := []model.Banner{
		{ID: uuid.New(), Name: "b1", Category: model.BannerCategoryClub},
	}
	pages, _ := newTestPageService(t, banners, &fakeClubRepo{recent: someClubs(3)}, model.DefaultBannerDisplaySettings())

	view, err := pages.HomePage(context.Background(), "stale-cookie-value")
	require.NoError(t, err)
	require.Len(t, view.Banners, 1)
	assert.Equal(t, "b1", view.Banners[0].Alt)
}

func TestPrefecturePage_RootDisplayPreviewApplies(t *testing.T) {
	official := model.SponsorTierOfficial
	local := model.SponsorTierLocal
	banners := []model.Banner{
		{ID: uuid.New(), Name: "official", Category: model.BannerCategorySponsor, SponsorTier: &official, SortOrder: 1},
		{ID: uuid.New(), Name: "local", Category: model.BannerCategorySponsor, SponsorTier: &local, SortOrder: 2},
	}
	pages, previews := newTestPageService(t, banners, &fakeClubRepo{}, model.DefaultBannerDisplaySettings())

	entry, err := previews.Create(context.Background(), "banner_display", "/",
		[]byte(`{"prefecture_top_display_mode":"official_only"}`))
	require.NoError(t, err)

	view, err := pages.PrefecturePage(context.Background(), "tokyo", entry.ID)
	require.NoError(t, err)

	require.Len(t, view.TopBanners, 1, "root-scoped display preview overrides the prefecture top surface")
	assert.Equal(t, "official", view.TopBanners[0].Alt)
	require.Len(t, view.SidebarBanners, 2, "sidebar surface keeps its persisted mode")
	assert.Equal(t, "tokyo", view.Prefecture)
}
