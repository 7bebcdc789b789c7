package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nujjum/accessibility-api/internal/core/domain"
	"github.com/nujjum/accessibility-api/internal/core/ports"
)

// DocumentStore implements ports.DocumentStore on a MongoDB database. One
// instance serves every logical collection; callers pass the collection name
// per operation.
type DocumentStore struct {
	db *mongo.Database
}

func NewDocumentStore(db *mongo.Database) *DocumentStore {
	return &DocumentStore{db: db}
}

// Create inserts doc into the named collection and returns the store-assigned
// id as its hex string.
func (s *DocumentStore) Create(ctx context.Context, collection string, doc ports.Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", fmt.Errorf("%w: insert into %s: %v", domain.ErrStorage, collection, err)
	}
	return idString(res.InsertedID), nil
}

// List returns up to limit documents matching filter. The internal _id of
// each document is replaced by the public "id" string field.
func (s *DocumentStore) List(ctx context.Context, collection string, filter ports.Document, limit int64) ([]ports.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if filter == nil {
		filter = ports.Document{}
	}

	cur, err := s.db.Collection(collection).Find(ctx, bson.M(filter), options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%w: find in %s: %v", domain.ErrStorage, collection, err)
	}
	defer cur.Close(ctx)

	var docs []ports.Document
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: decode from %s: %v", domain.ErrStorage, collection, err)
		}
		docs = append(docs, normalizeID(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: cursor on %s: %v", domain.ErrStorage, collection, err)
	}
	return docs, nil
}

// Ping verifies connectivity for the diagnostic endpoint.
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// Collections lists collection names for the diagnostic endpoint.
func (s *DocumentStore) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

// normalizeID converts a decoded document to driver-agnostic plain values
// and moves the internal _id into the public "id" field.
func normalizeID(raw bson.M) ports.Document {
	doc := make(ports.Document, len(raw))
	for k, v := range raw {
		doc[k] = plainValue(v)
	}
	if internal, ok := doc["_id"]; ok {
		doc["id"] = idString(internal)
		delete(doc, "_id")
	}
	return doc
}

// plainValue strips bson container types so the service layer never sees
// driver-specific representations.
func plainValue(v any) any {
	switch t := v.(type) {
	case bson.M:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = plainValue(e)
		}
		return m
	case bson.A:
		a := make([]any, len(t))
		for i, e := range t {
			a[i] = plainValue(e)
		}
		return a
	default:
		return v
	}
}

func idString(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", id)
}
