// Package seed generates synthetic song records for bulk test-data
// seeding.
package seed

import (
	"github.com/brianvoe/gofakeit/v7"

	"songvault/internal/models"
)

// Generator produces random songs. Safe for concurrent use with a
// nonzero source seed of 0 (gofakeit then seeds from crypto/rand and
// locks internally).
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator creates a new song generator
func NewGenerator() *Generator {
	return &Generator{faker: gofakeit.New(0)}
}

// Song generates one unsaved song with random field values. There is
// no album faker, so a book title stands in; it reads close enough.
func (g *Generator) Song() *models.Song {
	return models.NewSong(
		g.faker.SongArtist(),
		g.faker.SongName(),
		g.faker.BookTitle(),
		g.faker.SongGenre(),
	)
}
