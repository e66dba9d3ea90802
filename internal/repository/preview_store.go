package repository

import (
	"context"
	"time"

	"clubnavi/portal/internal/model"
)

// PreviewStore holds pending preview entries keyed by id.
// Absence (never stored, expired, or consumed) is a normal outcome and is
// reported as (nil, nil); an expired entry is never returned regardless of
// whether it has been garbage collected yet.
// Implementations: in-memory (single instance; a preview created on one
// instance behind a load balancer is invisible on the others — accepted,
// previews are single-editor and short-lived) or Redis.
type PreviewStore interface {
	// Set inserts or replaces the entry under entry.ID and stamps
	// entry.ExpiresAt to now + ttl. The last write for an id wins.
	Set(ctx context.Context, entry *model.PreviewEntry, ttl time.Duration) error
	// Get returns the live entry or (nil, nil). It never mutates state, so
	// a render pass that fetches twice sees the same preview both times.
	Get(ctx context.Context, id string) (*model.PreviewEntry, error)
	// Consume is Get plus removal, for call sites that want strict
	// one-time reads.
	Consume(ctx context.Context, id string) (*model.PreviewEntry, error)
}
