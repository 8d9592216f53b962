package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"songvault/internal/models"
)

// mongoSongRepository implements SongRepository using MongoDB
type mongoSongRepository struct {
	collection *mongo.Collection
}

// NewMongoSongRepository creates a new MongoDB-backed song repository
func NewMongoSongRepository(db *models.Database) SongRepository {
	return &mongoSongRepository{
		collection: db.DB.Collection("songs"),
	}
}

// compileFilter turns a SongFilter into a store-level predicate.
// The search term is escaped before it becomes a regex fragment, so a
// term like "a+b" matches literally instead of being interpreted.
func compileFilter(f SongFilter) bson.M {
	filter := bson.M{}

	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = []bson.M{
			{"artist": pattern},
			{"songName": pattern},
		}
	}

	if f.FavoritesOnly {
		filter["favorite"] = true
	}

	return filter
}

// Save inserts a new song, assigning identifier and timestamps
func (r *mongoSongRepository) Save(ctx context.Context, song *models.Song) error {
	now := time.Now()
	song.SchemaVersion = models.CurrentSchemaVersion
	if song.CreatedAt.IsZero() {
		song.CreatedAt = now
	}
	song.LastModified = now

	result, err := r.collection.InsertOne(ctx, song)
	if err != nil {
		return fmt.Errorf("failed to insert song: %w", err)
	}
	song.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces the stored document with song and refreshes LastModified
func (r *mongoSongRepository) Update(ctx context.Context, song *models.Song) error {
	if song.ID.IsZero() {
		return fmt.Errorf("song ID is required for update")
	}

	song.SchemaVersion = models.CurrentSchemaVersion
	song.LastModified = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": song.ID}, song)
	if err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrSongNotFound
	}
	return nil
}

// ApplyPatch merges the non-nil patch fields into the stored song and
// returns the document as it looks after the merge.
func (r *mongoSongRepository) ApplyPatch(ctx context.Context, id string, patch *models.SongPatch) (*models.Song, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a stored song.
		return nil, ErrSongNotFound
	}

	set := bson.M{"last_modified": time.Now()}
	if patch.Artist != nil {
		set["artist"] = *patch.Artist
	}
	if patch.SongName != nil {
		set["songName"] = *patch.SongName
	}
	if patch.Album != nil {
		set["album"] = *patch.Album
	}
	if patch.Genre != nil {
		set["genre"] = *patch.Genre
	}
	if patch.Favorite != nil {
		set["favorite"] = *patch.Favorite
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var song models.Song
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&song)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSongNotFound
		}
		return nil, fmt.Errorf("failed to patch song: %w", err)
	}

	return &song, nil
}

// FindByID finds a song by its ObjectID hex
func (r *mongoSongRepository) FindByID(ctx context.Context, id string) (*models.Song, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var song models.Song
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&song)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find song by ID: %w", err)
	}

	return &song, nil
}

// Find returns the matching window in store-native order
func (r *mongoSongRepository) Find(ctx context.Context, filter SongFilter, skip, limit int64) ([]*models.Song, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetSkip(skip).SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, compileFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find songs: %w", err)
	}
	defer cursor.Close(ctx)

	songs := make([]*models.Song, 0)
	for cursor.Next(ctx) {
		var song models.Song
		if err := cursor.Decode(&song); err != nil {
			slog.Error("Failed to decode song", "error", err)
			continue
		}
		songs = append(songs, &song)
	}

	return songs, cursor.Err()
}

// Count returns the number of songs matching the filter
func (r *mongoSongRepository) Count(ctx context.Context, filter SongFilter) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, compileFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count songs: %w", err)
	}
	return count, nil
}

// DeleteByID deletes a song by its ID
func (r *mongoSongRepository) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrSongNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrSongNotFound
	}

	return nil
}

// DeleteAll clears the whole collection
func (r *mongoSongRepository) DeleteAll(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to clear songs: %w", err)
	}
	return nil
}
