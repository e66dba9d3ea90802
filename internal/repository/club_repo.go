package repository

import (
	"context"

	"github.com/google/uuid"

	"clubnavi/portal/internal/model"
)

type ClubRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Club, error)
	// ListRecent returns up to limit clubs, newest first. Backs the
	// homepage pickup fallback when fewer than three slots are filled.
	ListRecent(ctx context.Context, limit int) ([]model.Club, error)
}
