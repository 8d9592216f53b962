package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CurrentSchemaVersion = 1

// Song represents a single song record persisted in the collection.
// SchemaVersion is internal bookkeeping and must never appear in a
// response body, which is why it carries no json tag worth exposing;
// the wire representation is built in handlers/render.
type Song struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	SchemaVersion int                `bson:"schema_version"`

	Artist   string `bson:"artist"`
	SongName string `bson:"songName"`
	Album    string `bson:"album"`
	Genre    string `bson:"genre"`
	Favorite bool   `bson:"favorite"`

	// Timestamps are store-assigned: CreatedAt once on insert,
	// LastModified on every mutation.
	CreatedAt    time.Time `bson:"created_at"`
	LastModified time.Time `bson:"last_modified"`
}

// NewSong creates a new Song with the four content fields set
func NewSong(artist, songName, album, genre string) *Song {
	now := time.Now()
	return &Song{
		SchemaVersion: CurrentSchemaVersion,
		Artist:        artist,
		SongName:      songName,
		Album:         album,
		Genre:         genre,
		CreatedAt:     now,
		LastModified:  now,
	}
}

// SongPatch is the subset of fields to merge into an existing record.
// Every field is a pointer so "not provided" (nil) is distinguishable
// from an intentional empty string or false; only non-nil fields are
// applied.
type SongPatch struct {
	Artist   *string `json:"artist" form:"artist"`
	SongName *string `json:"songName" form:"songName"`
	Album    *string `json:"album" form:"album"`
	Genre    *string `json:"genre" form:"genre"`
	Favorite *bool   `json:"favorite" form:"favorite"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *SongPatch) IsEmpty() bool {
	return p.Artist == nil && p.SongName == nil && p.Album == nil &&
		p.Genre == nil && p.Favorite == nil
}

// ApplyTo merges the provided fields into song, leaving absent fields
// untouched.
func (p *SongPatch) ApplyTo(song *Song) {
	if p.Artist != nil {
		song.Artist = *p.Artist
	}
	if p.SongName != nil {
		song.SongName = *p.SongName
	}
	if p.Album != nil {
		song.Album = *p.Album
	}
	if p.Genre != nil {
		song.Genre = *p.Genre
	}
	if p.Favorite != nil {
		song.Favorite = *p.Favorite
	}
}
