package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"clubnavi/portal/internal/model"
	"clubnavi/portal/internal/repository"
	"clubnavi/portal/pkg/crypto"
)

type PreviewService interface {
	// Create validates and stores a pending preview, returning the entry
	// whose id the caller pairs with the preview_id cookie.
	Create(ctx context.Context, previewType, redirectPath string, payload json.RawMessage) (*model.PreviewEntry, error)
	// ValidateBridge checks a bridge request: the id must resolve to a
	// live entry and path must be site-relative. The entry is left in
	// place; a bridge failure never shortens its TTL.
	ValidateBridge(ctx context.Context, id, path string) (*model.PreviewEntry, error)
	// Resolve maps a preview_id cookie value to its live entry, or nil.
	// Reads are side-effect-free so a render pass that fetches the same
	// data twice sees one consistent preview; TTL expiry is the sole
	// removal mechanism.
	Resolve(ctx context.Context, id string) (*model.PreviewEntry, error)
}

type previewService struct {
	store repository.PreviewStore
}

func NewPreviewService(store repository.PreviewStore) PreviewService {
	return &previewService{store: store}
}

func (s *previewService) Create(ctx context.Context, previewType, redirectPath string, payload json.RawMessage) (*model.PreviewEntry, error) {
	t := model.PreviewType(previewType)
	if !t.Valid() {
		return nil, ErrPreviewTypeInvalid
	}
	if !IsSiteRelative(redirectPath) {
		return nil, ErrRedirectPathInvalid
	}

	decoded, err := model.DecodePreviewPayload(t, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPreviewPayloadInvalid, err)
	}

	id, err := crypto.GeneratePreviewID()
	if err != nil {
		return nil, fmt.Errorf("generate preview id: %w", err)
	}

	entry := &model.PreviewEntry{
		ID:           id,
		Type:         t,
		RedirectPath: redirectPath,
		Payload:      decoded,
	}
	if err := s.store.Set(ctx, entry, model.PreviewTTL); err != nil {
		return nil, fmt.Errorf("store preview: %w", err)
	}
	return entry, nil
}

func (s *previewService) ValidateBridge(ctx context.Context, id, path string) (*model.PreviewEntry, error) {
	if !IsSiteRelative(path) {
		return nil, ErrRedirectPathInvalid
	}
	entry, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup preview: %w", err)
	}
	if entry == nil {
		return nil, ErrPreviewNotFound
	}
	return entry, nil
}

func (s *previewService) Resolve(ctx context.Context, id string) (*model.PreviewEntry, error) {
	if id == "" {
		return nil, nil
	}
	return s.store.Get(ctx, id)
}

// IsSiteRelative reports whether path stays on this site: it must start
// with a single "/" and carry no scheme or authority. "//host" and
// "https://host" would send the bridge redirect off-site.
func IsSiteRelative(path string) bool {
	if path == "" || !strings.HasPrefix(path, "/") {
		return false
	}
	if strings.HasPrefix(path, "//") {
		return false
	}
	if strings.Contains(path, "://") || strings.Contains(path, "\\") {
		return false
	}
	return true
}
