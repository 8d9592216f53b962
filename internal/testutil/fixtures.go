package testutil

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"songvault/internal/models"
)

// SongBuilder provides a fluent interface for creating test songs
type SongBuilder struct {
	song *models.Song
}

// NewSongBuilder creates a new song builder with default values
func NewSongBuilder() *SongBuilder {
	song := models.NewSong("Test Artist", "Test Song", "Test Album", "Test Genre")
	song.ID = primitive.NewObjectID()
	return &SongBuilder{song: song}
}

// WithID sets the song ID from its hex form
func (b *SongBuilder) WithID(id string) *SongBuilder {
	objID, _ := primitive.ObjectIDFromHex(id)
	b.song.ID = objID
	return b
}

// WithArtist sets the artist
func (b *SongBuilder) WithArtist(artist string) *SongBuilder {
	b.song.Artist = artist
	return b
}

// WithSongName sets the song name
func (b *SongBuilder) WithSongName(songName string) *SongBuilder {
	b.song.SongName = songName
	return b
}

// WithAlbum sets the album
func (b *SongBuilder) WithAlbum(album string) *SongBuilder {
	b.song.Album = album
	return b
}

// WithGenre sets the genre
func (b *SongBuilder) WithGenre(genre string) *SongBuilder {
	b.song.Genre = genre
	return b
}

// WithFavorite marks the song as a favorite
func (b *SongBuilder) WithFavorite(favorite bool) *SongBuilder {
	b.song.Favorite = favorite
	return b
}

// WithLastModified sets the modification timestamp
func (b *SongBuilder) WithLastModified(t time.Time) *SongBuilder {
	b.song.LastModified = t
	return b
}

// Build returns the constructed song
func (b *SongBuilder) Build() *models.Song {
	return b.song
}

// CreateTestSong creates a basic test song with default values
func CreateTestSong() *models.Song {
	return NewSongBuilder().Build()
}

// CreateTestSongs creates n distinct test songs
func CreateTestSongs(n int) []*models.Song {
	songs := make([]*models.Song, n)
	for i := range songs {
		songs[i] = NewSongBuilder().
			WithArtist("Artist " + string(rune('A'+i%26))).
			WithSongName("Song " + string(rune('A'+i%26))).
			Build()
	}
	return songs
}
