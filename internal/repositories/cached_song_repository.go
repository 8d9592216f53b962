package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"songvault/internal/cache"
	"songvault/internal/models"
)

// cachedSongRepository wraps a SongRepository with read-through caching
// of single-song lookups. List and count queries always hit the store;
// their results depend on the whole collection and are not worth the
// invalidation bookkeeping at this scale.
type cachedSongRepository struct {
	repository SongRepository
	cache      cache.Cache

	// generation is bumped on DeleteAll so every previously cached key
	// becomes unreachable without enumerating them.
	generation atomic.Uint64
}

// NewCachedSongRepository creates a new cached song repository
func NewCachedSongRepository(repository SongRepository, c cache.Cache) SongRepository {
	return &cachedSongRepository{
		repository: repository,
		cache:      c,
	}
}

const songCacheTTL = 1 * time.Hour

func (r *cachedSongRepository) songIDKey(id string) string {
	return fmt.Sprintf("song:g%d:id:%s", r.generation.Load(), id)
}

// Save inserts through to the repository; the assigned id has no cache
// entry yet, so there is nothing to invalidate.
func (r *cachedSongRepository) Save(ctx context.Context, song *models.Song) error {
	return r.repository.Save(ctx, song)
}

// Update writes through and invalidates the cached document
func (r *cachedSongRepository) Update(ctx context.Context, song *models.Song) error {
	if err := r.repository.Update(ctx, song); err != nil {
		return err
	}
	r.invalidate(ctx, song.ID.Hex())
	return nil
}

// ApplyPatch writes through and invalidates the cached document
func (r *cachedSongRepository) ApplyPatch(ctx context.Context, id string, patch *models.SongPatch) (*models.Song, error) {
	song, err := r.repository.ApplyPatch(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, id)
	return song, nil
}

// FindByID checks cache first, then repository
func (r *cachedSongRepository) FindByID(ctx context.Context, id string) (*models.Song, error) {
	key := r.songIDKey(id)

	if data, err := r.cache.Get(ctx, key); err == nil && data != nil {
		var song models.Song
		if err := json.Unmarshal(data, &song); err == nil {
			return &song, nil
		}
		// Unreadable entry, fall through to the store.
		r.invalidate(ctx, id)
	}

	song, err := r.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if song != nil {
		if data, err := json.Marshal(song); err == nil {
			if err := r.cache.Set(ctx, key, data, songCacheTTL); err != nil {
				slog.Warn("Failed to cache song", "id", id, "error", err)
			}
		}
	}

	return song, nil
}

func (r *cachedSongRepository) Find(ctx context.Context, filter SongFilter, skip, limit int64) ([]*models.Song, error) {
	return r.repository.Find(ctx, filter, skip, limit)
}

func (r *cachedSongRepository) Count(ctx context.Context, filter SongFilter) (int64, error) {
	return r.repository.Count(ctx, filter)
}

// DeleteByID deletes through and invalidates the cached document
func (r *cachedSongRepository) DeleteByID(ctx context.Context, id string) error {
	if err := r.repository.DeleteByID(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

// DeleteAll clears the store and abandons every cached entry
func (r *cachedSongRepository) DeleteAll(ctx context.Context) error {
	if err := r.repository.DeleteAll(ctx); err != nil {
		return err
	}
	r.generation.Add(1)
	return nil
}

func (r *cachedSongRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Delete(ctx, r.songIDKey(id)); err != nil {
		slog.Warn("Failed to invalidate cached song", "id", id, "error", err)
	}
}
