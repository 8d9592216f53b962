package repositories

import (
	"context"
	"errors"

	"songvault/internal/models"
)

// ErrSongNotFound is returned by mutations whose target id does not
// resolve to a stored song. Find operations instead return (nil, nil)
// on a miss.
var ErrSongNotFound = errors.New("song not found")

// SongFilter is a composable match condition evaluated by the store.
// The zero value matches every song.
type SongFilter struct {
	// Search restricts to songs whose artist or songName contains the
	// term, case-insensitively. Expected lowercase-normalized.
	Search string

	// FavoritesOnly additionally restricts to favorited songs.
	FavoritesOnly bool
}

// IsZero reports whether the filter matches the whole collection.
func (f SongFilter) IsZero() bool {
	return f.Search == "" && !f.FavoritesOnly
}

// SongRepository defines the interface for song data operations
type SongRepository interface {
	// Save inserts a new song, assigning its ID and timestamps
	Save(ctx context.Context, song *models.Song) error

	// Update replaces the stored document and refreshes LastModified
	Update(ctx context.Context, song *models.Song) error

	// ApplyPatch merges the provided fields into the stored song and
	// returns the updated document
	ApplyPatch(ctx context.Context, id string, patch *models.SongPatch) (*models.Song, error)

	// FindByID resolves a single song; (nil, nil) when absent
	FindByID(ctx context.Context, id string) (*models.Song, error)

	// Find returns the matching window in store-native order.
	// limit <= 0 means no window: return every matching song.
	Find(ctx context.Context, filter SongFilter, skip, limit int64) ([]*models.Song, error)

	// Count returns the number of songs matching the filter
	Count(ctx context.Context, filter SongFilter) (int64, error)

	// DeleteByID removes a song; ErrSongNotFound when absent
	DeleteByID(ctx context.Context, id string) error

	// DeleteAll clears the whole collection
	DeleteAll(ctx context.Context) error
}
