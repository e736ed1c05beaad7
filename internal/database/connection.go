// internal/database/connection.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/config"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/store"
)

// Connect establishes the MongoDB connection and verifies it with a ping.
// An unreachable server is fatal at process start; there is no retry.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	opts := options.Client().
		ApplyURI(cfg.URI()).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logrus.Info("Database connection established successfully")
	return client.Database(cfg.Database), nil
}

func Close(ctx context.Context, db *mongo.Database) {
	if db == nil {
		return
	}
	if err := db.Client().Disconnect(ctx); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

// EnsureIndexes creates the collection indexes the application relies on.
// Idempotent: running it repeatedly produces no errors or duplicates.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	productIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}
	if _, err := db.Collection(store.CollectionProducts).Indexes().CreateMany(ctx, productIndexes); err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}

	unique := true
	warehouseIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: &options.IndexOptions{Unique: &unique},
		},
	}
	if _, err := db.Collection(store.CollectionWarehouses).Indexes().CreateMany(ctx, warehouseIndexes); err != nil {
		return fmt.Errorf("failed to create warehouse indexes: %w", err)
	}

	pairName := "warehouse_product_unique"
	inventoryIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "warehouse_id", Value: 1},
				{Key: "product_id", Value: 1},
			},
			Options: &options.IndexOptions{Unique: &unique, Name: &pairName},
		},
	}
	if _, err := db.Collection(store.CollectionInventory).Indexes().CreateMany(ctx, inventoryIndexes); err != nil {
		return fmt.Errorf("failed to create inventory indexes: %w", err)
	}

	eventIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	}
	if _, err := db.Collection(store.CollectionEvents).Indexes().CreateMany(ctx, eventIndexes); err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}

	logrus.Info("Database indexes ensured")
	return nil
}
