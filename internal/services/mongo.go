package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/markjakearzadon/urbanoasis-gobackend/internal/models"
)

// findAll runs a find and decodes every document. It never returns a nil
// slice so empty results encode as [].
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// findOne returns nil, nil when nothing matches.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) (*T, error) {
	var doc T
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func insertedHex(res *mongo.InsertOneResult) string {
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		return id.Hex()
	}
	return ""
}

func updateResult(res *mongo.UpdateResult) models.UpdateResult {
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}

func deleteResult(res *mongo.DeleteResult) models.DeleteResult {
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

func updateByID(ctx context.Context, coll *mongo.Collection, hex string, set bson.M) (models.UpdateResult, error) {
	id, err := objectID(hex)
	if err != nil {
		return models.UpdateResult{}, err
	}
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return updateResult(res), nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, hex string) (models.DeleteResult, error) {
	id, err := objectID(hex)
	if err != nil {
		return models.DeleteResult{}, err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return deleteResult(res), nil
}

func findByID[T any](ctx context.Context, coll *mongo.Collection, hex string) (*T, error) {
	id, err := objectID(hex)
	if err != nil {
		return nil, err
	}
	return findOne[T](ctx, coll, bson.M{"_id": id})
}
