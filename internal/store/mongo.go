// internal/store/mongo.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/models"
)

// MongoStore implements Store on top of a MongoDB database. Identifiers are
// generated by the store as UUID strings so they stay opaque to callers and
// round-trip cleanly through the typed entity structs.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", fmt.Errorf("failed to decode document: %w", err)
	}

	id := uuid.New().String()
	m["_id"] = id

	if _, err := s.db.Collection(collection).InsertOne(ctx, m); err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	return id, nil
}

func (s *MongoStore) FindByID(ctx context.Context, collection, id string, out interface{}) (bool, error) {
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to find document in %s: %w", collection, err)
	}
	return true, nil
}

func (s *MongoStore) FindAll(ctx context.Context, collection string, out interface{}) error {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s documents: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) Update(ctx context.Context, collection, id string, changes map[string]interface{}) (bool, error) {
	if len(changes) == 0 {
		// Nothing to set; report whether the document exists.
		count, err := s.db.Collection(collection).CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return false, fmt.Errorf("failed to check document in %s: %w", collection, err)
		}
		return count > 0, nil
	}

	result, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": changes})
	if err != nil {
		return false, fmt.Errorf("failed to update document in %s: %w", collection, err)
	}
	return result.MatchedCount > 0, nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) (bool, error) {
	result, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete document in %s: %w", collection, err)
	}
	return result.DeletedCount > 0, nil
}

func (s *MongoStore) FindInventoryByWarehouse(ctx context.Context, warehouseID string) ([]models.InventoryEntry, error) {
	cursor, err := s.db.Collection(CollectionInventory).Find(ctx, bson.M{"warehouse_id": warehouseID})
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}

	var entries []models.InventoryEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode inventory entries: %w", err)
	}
	return entries, nil
}

func (s *MongoStore) FindInventoryEntry(ctx context.Context, warehouseID, productID string) (*models.InventoryEntry, error) {
	var entry models.InventoryEntry
	err := s.db.Collection(CollectionInventory).
		FindOne(ctx, bson.M{"warehouse_id": warehouseID, "product_id": productID}).
		Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory entry: %w", err)
	}
	return &entry, nil
}

func (s *MongoStore) DeleteInventoryByWarehouse(ctx context.Context, warehouseID string) (int64, error) {
	result, err := s.db.Collection(CollectionInventory).DeleteMany(ctx, bson.M{"warehouse_id": warehouseID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete inventory for warehouse %s: %w", warehouseID, err)
	}
	return result.DeletedCount, nil
}

func (s *MongoStore) DeleteInventoryByProduct(ctx context.Context, productID string) (int64, error) {
	result, err := s.db.Collection(CollectionInventory).DeleteMany(ctx, bson.M{"product_id": productID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete inventory for product %s: %w", productID, err)
	}
	return result.DeletedCount, nil
}

func (s *MongoStore) FindWarehouseByName(ctx context.Context, name string) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	err := s.db.Collection(CollectionWarehouses).FindOne(ctx, bson.M{"name": name}).Decode(&warehouse)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find warehouse by name: %w", err)
	}
	return &warehouse, nil
}

func (s *MongoStore) FindEventsNewestFirst(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := s.db.Collection(CollectionEvents).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}
