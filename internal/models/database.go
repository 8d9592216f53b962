package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database represents the database connection
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewDatabase creates a new database connection
func NewDatabase(ctx context.Context, mongoURL, dbName string) (*Database, error) {
	clientOptions := options.Client().
		ApplyURI(mongoURL).
		SetMaxPoolSize(20).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(30 * time.Second).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping the database to verify connection
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &Database{
		Client: client,
		DB:     client.Database(dbName),
	}, nil
}

// Close closes the database connection
func (d *Database) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}

// CreateIndexes creates necessary indexes for optimal performance
func (d *Database) CreateIndexes(ctx context.Context) error {
	songsCollection := d.DB.Collection("songs")

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "artist", Value: 1}, {Key: "songName", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "favorite", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "last_modified", Value: 1}},
		},
	}

	_, err := songsCollection.Indexes().CreateMany(ctx, indexes)
	return err
}
