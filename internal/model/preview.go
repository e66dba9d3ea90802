package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// PreviewTTL bounds the lifetime of a preview entry and of the
// preview_id cookie. The store and the cookie MaxAge must agree, so
// this is the only place the value is defined.
const PreviewTTL = 5 * time.Minute

type PreviewType string

const (
	PreviewTypeBannerSingle  PreviewType = "banner_single"
	PreviewTypeBannerDisplay PreviewType = "banner_display"
	PreviewTypeHomePickup    PreviewType = "home_pickup"
)

func (t PreviewType) Valid() bool {
	switch t {
	case PreviewTypeBannerSingle, PreviewTypeBannerDisplay, PreviewTypeHomePickup:
		return true
	}
	return false
}

// PreviewPayload is the closed set of payload shapes a preview can carry.
// The merge engine switches over the concrete types exhaustively; adding a
// new preview type means adding a type here and extending every switch.
type PreviewPayload interface {
	previewPayload()
}

// BannerSinglePreview carries one synthetic banner to overlay onto the
// persisted banner list of the target page.
type BannerSinglePreview struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Image       string         `json:"image"`
	AltText     string         `json:"alt_text"`
	LinkURL     string         `json:"link_url"`
	Category    BannerCategory `json:"category"`
	SponsorTier *SponsorTier   `json:"sponsor_tier"`
	SortOrder   int            `json:"sort_order"`
}

func (BannerSinglePreview) previewPayload() {}

// PreviewBannerID is the id given to a synthetic banner whose payload did
// not name one. It also keys the merge-time replacement of a persisted
// banner sharing the id.
const PreviewBannerID = "preview-banner"

// BannerDisplayPreview is a partial settings object: only non-nil fields
// override the persisted BannerDisplaySettings.
type BannerDisplayPreview struct {
	HomeDisplayMode              *DisplayMode `json:"home_display_mode,omitempty"`
	PrefectureTopDisplayMode     *DisplayMode `json:"prefecture_top_display_mode,omitempty"`
	PrefectureSidebarDisplayMode *DisplayMode `json:"prefecture_sidebar_display_mode,omitempty"`
	SponsorTierFilter            *SponsorTier `json:"sponsor_tier_filter,omitempty"`
}

func (BannerDisplayPreview) previewPayload() {}

// HomePickupPreview carries up to three homepage pickup slots. A nil slot
// or an identifier that resolves to no club is simply skipped at merge time.
type HomePickupPreview struct {
	ClubIDs []*string `json:"club_ids"`
}

func (HomePickupPreview) previewPayload() {}

// HomePickupSlots is how many pickup clubs the homepage renders.
const HomePickupSlots = 3

// PreviewEntry is a pending, unsaved change held by the preview store.
// Entries are owned by the store; merge always derives a new view model
// and never writes back into an entry.
type PreviewEntry struct {
	ID           string
	Type         PreviewType
	RedirectPath string
	Payload      PreviewPayload
	ExpiresAt    time.Time
}

type previewEntryJSON struct {
	ID           string          `json:"id"`
	Type         PreviewType     `json:"type"`
	RedirectPath string          `json:"redirect_path"`
	Payload      json.RawMessage `json:"payload"`
	ExpiresAt    time.Time       `json:"expires_at"`
}

func (e PreviewEntry) MarshalJSON() ([]byte, error) {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("marshal preview payload: %w", err)
	}
	return json.Marshal(previewEntryJSON{
		ID:           e.ID,
		Type:         e.Type,
		RedirectPath: e.RedirectPath,
		Payload:      payload,
		ExpiresAt:    e.ExpiresAt,
	})
}

func (e *PreviewEntry) UnmarshalJSON(data []byte) error {
	var raw previewEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	payload, err := DecodePreviewPayload(raw.Type, raw.Payload)
	if err != nil {
		return err
	}
	e.ID = raw.ID
	e.Type = raw.Type
	e.RedirectPath = raw.RedirectPath
	e.Payload = payload
	e.ExpiresAt = raw.ExpiresAt
	return nil
}

// DecodePreviewPayload decodes raw payload JSON into the shape declared by
// the preview type, applying the per-type defaulting rules. Unknown fields
// in the payload are ignored.
func DecodePreviewPayload(t PreviewType, raw []byte) (PreviewPayload, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	switch t {
	case PreviewTypeBannerSingle:
		var p BannerSinglePreview
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode banner_single payload: %w", err)
		}
		if p.ID == "" {
			p.ID = PreviewBannerID
		}
		if p.Category != BannerCategorySponsor {
			p.Category = BannerCategoryClub
		}
		return p, nil
	case PreviewTypeBannerDisplay:
		var p BannerDisplayPreview
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode banner_display payload: %w", err)
		}
		return p, nil
	case PreviewTypeHomePickup:
		var p HomePickupPreview
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode home_pickup payload: %w", err)
		}
		if len(p.ClubIDs) > HomePickupSlots {
			p.ClubIDs = p.ClubIDs[:HomePickupSlots]
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown preview type: %s", t)
	}
}
