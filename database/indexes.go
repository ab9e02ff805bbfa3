package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the handlers rely on: one login key
// per user, one external id per menu item, and no duplicated order numbers
// even if two submissions race.
func EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := []struct {
		collection string
		keys       bson.D
	}{
		{"user", bson.D{{Key: "userid", Value: 1}}},
		{"menu", bson.D{{Key: "item_id", Value: 1}}},
		{"order", bson.D{{Key: "order_number", Value: 1}}},
	}

	for _, index := range indexes {
		coll := OpenCollection(Client, index.collection)
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    index.keys,
			Options: unique,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
