package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePreviewPayload_BannerSingleDefaults(t *testing.T) {
	payload, err := DecodePreviewPayload(PreviewTypeBannerSingle, []byte(`{"image":"x"}`))
	require.NoError(t, err)

	p, ok := payload.(BannerSinglePreview)
	require.True(t, ok)
	assert.Equal(t, PreviewBannerID, p.ID, "missing id defaults to the sentinel")
	assert.Equal(t, BannerCategoryClub, p.Category, "missing category coerces to club")
	assert.Nil(t, p.SponsorTier)
	assert.Equal(t, 0, p.SortOrder)
}

func TestDecodePreviewPayload_BannerSingleCategoryCoercion(t *testing.T) {
	payload, err := DecodePreviewPayload(PreviewTypeBannerSingle, []byte(`{"category":"banana"}`))
	require.NoError(t, err)
	assert.Equal(t, BannerCategoryClub, payload.(BannerSinglePreview).Category)

	payload, err = DecodePreviewPayload(PreviewTypeBannerSingle, []byte(`{"category":"sponsor","sponsor_tier":"OFFICIAL"}`))
	require.NoError(t, err)
	p := payload.(BannerSinglePreview)
	assert.Equal(t, BannerCategorySponsor, p.Category)
	require.NotNil(t, p.SponsorTier)
	assert.Equal(t, SponsorTierOfficial, *p.SponsorTier)
}

func TestDecodePreviewPayload_BannerDisplayPartial(t *testing.T) {
	payload, err := DecodePreviewPayload(PreviewTypeBannerDisplay, []byte(`{"home_display_mode":"official_only","unknown_field":42}`))
	require.NoError(t, err)

	p, ok := payload.(BannerDisplayPreview)
	require.True(t, ok)
	require.NotNil(t, p.HomeDisplayMode)
	assert.Equal(t, DisplayModeOfficialOnly, *p.HomeDisplayMode)
	assert.Nil(t, p.PrefectureTopDisplayMode, "absent fields stay nil")
	assert.Nil(t, p.SponsorTierFilter)
}

func TestDecodePreviewPayload_HomePickupTruncatesSlots(t *testing.T) {
	payload, err := DecodePreviewPayload(PreviewTypeHomePickup, []byte(`{"club_ids":["a",null,"b","c","d"]}`))
	require.NoError(t, err)

	p, ok := payload.(HomePickupPreview)
	require.True(t, ok)
	require.Len(t, p.ClubIDs, HomePickupSlots)
	assert.Nil(t, p.ClubIDs[1])
}

func TestDecodePreviewPayload_EmptyPayload(t *testing.T) {
	payload, err := DecodePreviewPayload(PreviewTypeBannerDisplay, nil)
	require.NoError(t, err)
	assert.Equal(t, BannerDisplayPreview{}, payload)
}

func TestDecodePreviewPayload_UnknownType(t *testing.T) {
	_, err := DecodePreviewPayload(PreviewType("magazine_cover"), []byte(`{}`))
	assert.Error(t, err)
}

func TestPreviewEntry_JSONRoundTrip(t *testing.T) {
	tier := SponsorTierLocal
	entry := PreviewEntry{
		ID:           "p1",
		Type:         PreviewTypeBannerSingle,
		RedirectPath: "/prefectures/kyoto",
		Payload: BannerSinglePreview{
			ID:          "preview-banner",
			Name:        "Spring fair",
			Image:       "https://cdn.example.com/spring.png",
			Category:    BannerCategorySponsor,
			SponsorTier: &tier,
			SortOrder:   2,
		},
		ExpiresAt: time.Now().Add(PreviewTTL).Truncate(time.Second),
	}

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded PreviewEntry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, entry.ID, decoded.ID)
	assert.Equal(t, entry.Type, decoded.Type)
	assert.Equal(t, entry.RedirectPath, decoded.RedirectPath)
	assert.Equal(t, entry.Payload, decoded.Payload)
	assert.True(t, entry.ExpiresAt.Equal(decoded.ExpiresAt))
}
