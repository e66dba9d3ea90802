package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"clubnavi/portal/internal/model"
)

const previewKeyPrefix = "preview:"

type redisPreviewStore struct {
	client *redis.Client
}

func NewRedisPreviewStore(client *redis.Client) PreviewStore {
	return &redisPreviewStore{client: client}
}

func (s *redisPreviewStore) Set(ctx context.Context, entry *model.PreviewEntry, ttl time.Duration) error {
	entry.ExpiresAt = time.Now().Add(ttl)
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	// Redis native expiry does the pruning; no amortized cleanup needed.
	return s.client.Set(ctx, previewKeyPrefix+entry.ID, data, ttl).Err()
}

func (s *redisPreviewStore) Get(ctx context.Context, id string) (*model.PreviewEntry, error) {
	data, err := s.client.Get(ctx, previewKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodePreviewEntry(data)
}

func (s *redisPreviewStore) Consume(ctx context.Context, id string) (*model.PreviewEntry, error) {
	data, err := s.client.GetDel(ctx, previewKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodePreviewEntry(data)
}

func decodePreviewEntry(data []byte) (*model.PreviewEntry, error) {
	var entry model.PreviewEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	// Guard against a key whose Redis TTL outlived the stamped expiry
	// (clock skew between writer and reader).
	if time.Now().After(entry.ExpiresAt) {
		return nil, nil
	}
	return &entry, nil
}
