package mongodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/topi314/tint"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionIndex struct {
	collection string
	models     []mongo.IndexModel
	// optional indexes may fail on legacy data; startup continues with a warning.
	optional bool
}

var collectionIndexes = []collectionIndex{
	{collection: "sermons", models: []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "order", Value: 1}, {Key: "date", Value: -1}}},
	}},
	{collection: "sermons", optional: true, models: []mongo.IndexModel{
		{Keys: bson.D{{Key: "youtubeId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}},
	{collection: "bulletins", models: []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}},
	{collection: "events", models: []mongo.IndexModel{
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "order", Value: 1}}},
	}},
	{collection: "galleryposts", models: []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}},
	{collection: "popups", models: []mongo.IndexModel{
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "startDate", Value: 1}, {Key: "endDate", Value: 1}}},
	}},
	{collection: "pastorschedules", models: []mongo.IndexModel{
		{Keys: bson.D{{Key: "startDate", Value: 1}, {Key: "endDate", Value: 1}}},
	}},
	{collection: "donationreceipts", models: []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}},
}

// EnsureIndexes creates the indexes the content queries rely on. Creating
// an index that already exists is a no-op. The unique youtubeId index is
// skipped with a warning when existing sermons share a video; the sermon
// service still rejects new duplicates.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	for _, ix := range collectionIndexes {
		if _, err := db.Collection(ix.collection).Indexes().CreateMany(ctx, ix.models); err != nil {
			if !ix.optional {
				return fmt.Errorf("failed to create indexes on %s: %w", ix.collection, err)
			}
			logger.WarnContext(ctx, "Skipping optional index",
				slog.String("collection", ix.collection),
				tint.Err(err),
			)
		}
	}
	return nil
}
