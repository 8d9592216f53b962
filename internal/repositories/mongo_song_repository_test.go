package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCompileFilter_MatchAll(t *testing.T) {
	filter := compileFilter(SongFilter{})
	assert.Empty(t, filter)
}

func TestCompileFilter_Search(t *testing.T) {
	filter := compileFilter(SongFilter{Search: "floyd"})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)

	artist, ok := or[0]["artist"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "floyd", artist.Pattern)
	assert.Equal(t, "i", artist.Options)

	songName, ok := or[1]["songName"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "floyd", songName.Pattern)

	_, hasFavorite := filter["favorite"]
	assert.False(t, hasFavorite)
}

func TestCompileFilter_SearchEscapesMetacharacters(t *testing.T) {
	filter := compileFilter(SongFilter{Search: "a+b (live)"})

	or := filter["$or"].([]bson.M)
	artist := or[0]["artist"].(primitive.Regex)
	assert.Equal(t, `a\+b \(live\)`, artist.Pattern)
}

func TestCompileFilter_FavoritesOnly(t *testing.T) {
	filter := compileFilter(SongFilter{FavoritesOnly: true})

	assert.Equal(t, true, filter["favorite"])
	_, hasOr := filter["$or"]
	assert.False(t, hasOr)
}

func TestCompileFilter_SearchAndFavorites(t *testing.T) {
	filter := compileFilter(SongFilter{Search: "pop", FavoritesOnly: true})

	assert.Equal(t, true, filter["favorite"])
	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, or, 2)
}

func TestSongFilter_IsZero(t *testing.T) {
	assert.True(t, SongFilter{}.IsZero())
	assert.False(t, SongFilter{Search: "x"}.IsZero())
	assert.False(t, SongFilter{FavoritesOnly: true}.IsZero())
}
