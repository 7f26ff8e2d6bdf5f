package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	Users      = "users"
	Properties = "properties"
	Wishes     = "wishes"
	Offers     = "offers"
	Reviews    = "reviews"
)

// Connect opens a client with the stable server API and pings the primary.
// The returned client is shared by every request; the driver pools
// connections.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	// Nested documents in user profiles decode as maps so they encode back to
	// JSON objects.
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	log.Println("Pinged your deployment. You successfully connected to MongoDB!")
	return client, nil
}

// EnsureIndexes creates the indexes the listing queries rely on. The unique
// email index backs the idempotent signup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		Users: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		Properties: {
			{Keys: bson.D{{Key: "agentEmail", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "minPrice", Value: 1}}},
			{Keys: bson.D{{Key: "advertise", Value: 1}}},
		},
		Wishes:  {{Keys: bson.D{{Key: "userEmail", Value: 1}}}},
		Offers:  {{Keys: bson.D{{Key: "propertyId", Value: 1}, {Key: "status", Value: 1}}}, {Keys: bson.D{{Key: "buyerEmail", Value: 1}}}, {Keys: bson.D{{Key: "agentEmail", Value: 1}}}},
		Reviews: {{Keys: bson.D{{Key: "reviewerEmail", Value: 1}}}, {Keys: bson.D{{Key: "propertyId", Value: 1}}}},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			log.Printf("Failed to create indexes on %s: %v", name, err)
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// Disconnect closes the client, waiting at most ten seconds.
func Disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}
}
