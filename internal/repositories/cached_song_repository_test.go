package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"songvault/internal/cache"
	"songvault/internal/models"
)

// fakeSongRepository is a map-backed SongRepository that counts store
// hits so cache behavior is observable.
type fakeSongRepository struct {
	songs     map[string]*models.Song
	findCalls int
}

func newFakeSongRepository() *fakeSongRepository {
	return &fakeSongRepository{songs: make(map[string]*models.Song)}
}

func (f *fakeSongRepository) Save(ctx context.Context, song *models.Song) error {
	if song.ID.IsZero() {
		song.ID = primitive.NewObjectID()
	}
	clone := *song
	f.songs[song.ID.Hex()] = &clone
	return nil
}

func (f *fakeSongRepository) Update(ctx context.Context, song *models.Song) error {
	if _, ok := f.songs[song.ID.Hex()]; !ok {
		return ErrSongNotFound
	}
	clone := *song
	f.songs[song.ID.Hex()] = &clone
	return nil
}

func (f *fakeSongRepository) ApplyPatch(ctx context.Context, id string, patch *models.SongPatch) (*models.Song, error) {
	song, ok := f.songs[id]
	if !ok {
		return nil, ErrSongNotFound
	}
	patch.ApplyTo(song)
	clone := *song
	return &clone, nil
}

func (f *fakeSongRepository) FindByID(ctx context.Context, id string) (*models.Song, error) {
	f.findCalls++
	song, ok := f.songs[id]
	if !ok {
		return nil, nil
	}
	clone := *song
	return &clone, nil
}

func (f *fakeSongRepository) Find(ctx context.Context, filter SongFilter, skip, limit int64) ([]*models.Song, error) {
	out := make([]*models.Song, 0, len(f.songs))
	for _, s := range f.songs {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeSongRepository) Count(ctx context.Context, filter SongFilter) (int64, error) {
	return int64(len(f.songs)), nil
}

func (f *fakeSongRepository) DeleteByID(ctx context.Context, id string) error {
	if _, ok := f.songs[id]; !ok {
		return ErrSongNotFound
	}
	delete(f.songs, id)
	return nil
}

func (f *fakeSongRepository) DeleteAll(ctx context.Context) error {
	f.songs = make(map[string]*models.Song)
	return nil
}

func TestCachedSongRepository_FindByIDHitsCacheOnSecondRead(t *testing.T) {
	fake := newFakeSongRepository()
	cached := NewCachedSongRepository(fake, cache.NewMemoryCache())
	ctx := context.Background()

	song := models.NewSong("Pink Floyd", "Money", "The Dark Side of the Moon", "Progressive Rock")
	require.NoError(t, cached.Save(ctx, song))
	id := song.ID.Hex()

	first, err := cached.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 1, fake.findCalls)

	second, err := cached.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, 1, fake.findCalls, "second read should be served from cache")
	assert.Equal(t, first.Artist, second.Artist)
	assert.Equal(t, first.ID, second.ID)
}

func TestCachedSongRepository_UpdateInvalidates(t *testing.T) {
	fake := newFakeSongRepository()
	cached := NewCachedSongRepository(fake, cache.NewMemoryCache())
	ctx := context.Background()

	song := models.NewSong("Queen", "Bohemian Rhapsody", "A Night at the Opera", "Rock")
	require.NoError(t, cached.Save(ctx, song))
	id := song.ID.Hex()

	_, err := cached.FindByID(ctx, id)
	require.NoError(t, err)

	song.Genre = "Opera Rock"
	require.NoError(t, cached.Update(ctx, song))

	got, err := cached.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Opera Rock", got.Genre)
}

func TestCachedSongRepository_PatchInvalidates(t *testing.T) {
	fake := newFakeSongRepository()
	cached := NewCachedSongRepository(fake, cache.NewMemoryCache())
	ctx := context.Background()

	song := models.NewSong("Miles Davis", "So What", "Kind of Blue", "Jazz")
	require.NoError(t, cached.Save(ctx, song))
	id := song.ID.Hex()

	_, err := cached.FindByID(ctx, id)
	require.NoError(t, err)

	genre := "Modal Jazz"
	_, err = cached.ApplyPatch(ctx, id, &models.SongPatch{Genre: &genre})
	require.NoError(t, err)

	got, err := cached.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Modal Jazz", got.Genre)
}

func TestCachedSongRepository_DeleteInvalidates(t *testing.T) {
	fake := newFakeSongRepository()
	cached := NewCachedSongRepository(fake, cache.NewMemoryCache())
	ctx := context.Background()

	song := models.NewSong("Nirvana", "Lithium", "Nevermind", "Grunge")
	require.NoError(t, cached.Save(ctx, song))
	id := song.ID.Hex()

	_, err := cached.FindByID(ctx, id)
	require.NoError(t, err)

	require.NoError(t, cached.DeleteByID(ctx, id))

	got, err := cached.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCachedSongRepository_DeleteAllAbandonsCache(t *testing.T) {
	fake := newFakeSongRepository()
	cached := NewCachedSongRepository(fake, cache.NewMemoryCache())
	ctx := context.Background()

	song := models.NewSong("Daft Punk", "One More Time", "Discovery", "House")
	require.NoError(t, cached.Save(ctx, song))
	id := song.ID.Hex()

	_, err := cached.FindByID(ctx, id)
	require.NoError(t, err)

	require.NoError(t, cached.DeleteAll(ctx))

	got, err := cached.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got, "entries cached before the reset must not resurface")
}
