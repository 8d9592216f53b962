// Package render shapes stored songs into their wire representations:
// hyperlinked single resources, collection pages and the pagination
// metadata that lets a client walk a filtered collection.
package render

import (
	"time"

	"songvault/internal/models"
)

// ResourceLink is a single hyperlink in a response body
type ResourceLink struct {
	Href string `json:"href"`
}

// ResourceLinks is the _links block attached to every resource
type ResourceLinks struct {
	Self       ResourceLink `json:"self"`
	Collection ResourceLink `json:"collection"`
}

// SongResource is the wire representation of a single song. The raw
// store identifier only appears inside the self link, and internal
// schema metadata is never emitted.
type SongResource struct {
	Artist       string        `json:"artist"`
	SongName     string        `json:"songName"`
	Album        string        `json:"album"`
	Genre        string        `json:"genre"`
	Favorite     bool          `json:"favorite"`
	LastModified time.Time     `json:"lastModified"`
	Links        ResourceLinks `json:"_links"`
}

// CollectionResource is the wire representation of a collection page
type CollectionResource struct {
	Items      []SongResource `json:"items"`
	Links      ResourceLinks  `json:"_links"`
	Pagination Pagination     `json:"pagination"`
}

// SongRenderer builds wire representations rooted at a configured
// service base URL
type SongRenderer struct {
	collectionURL string
}

// NewSongRenderer creates a new song renderer. baseURL is the service
// root, without a trailing slash.
func NewSongRenderer(baseURL string) *SongRenderer {
	return &SongRenderer{
		collectionURL: baseURL + "/songs",
	}
}

// CollectionURL returns the absolute URL of the collection root
func (r *SongRenderer) CollectionURL() string {
	return r.collectionURL
}

// Song renders a single stored song
func (r *SongRenderer) Song(song *models.Song) SongResource {
	return SongResource{
		Artist:       song.Artist,
		SongName:     song.SongName,
		Album:        song.Album,
		Genre:        song.Genre,
		Favorite:     song.Favorite,
		LastModified: song.LastModified,
		Links: ResourceLinks{
			Self:       ResourceLink{Href: r.collectionURL + "/" + song.ID.Hex()},
			Collection: ResourceLink{Href: r.collectionURL},
		},
	}
}

// Collection renders a page of songs. The collection's own self and
// collection links point at the collection root regardless of the
// current query; per-query state lives in the pagination links.
func (r *SongRenderer) Collection(songs []*models.Song, pagination Pagination) CollectionResource {
	items := make([]SongResource, len(songs))
	for i, song := range songs {
		items[i] = r.Song(song)
	}

	return CollectionResource{
		Items: items,
		Links: ResourceLinks{
			Self:       ResourceLink{Href: r.collectionURL},
			Collection: ResourceLink{Href: r.collectionURL},
		},
		Pagination: pagination,
	}
}
