package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/movieflix/movieflix-api/internal/core/domain"
)

const kvCollection = "kv"

// KV adapts a MongoDB collection to the ports.KVStore capability: one
// document per key, upserted on Set.
type KV struct {
	coll *mongo.Collection
}

func NewKV(db *mongo.Database) *KV {
	return &KV{coll: db.Collection(kvCollection)}
}

type kvDoc struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var doc kvDoc
	if err := k.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("mongo get %q: %w", key, err)
	}
	return doc.Value, nil
}

func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	doc := kvDoc{Key: key, Value: value}
	_, err := k.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo set %q: %w", key, err)
	}
	return nil
}

func (k *KV) Remove(ctx context.Context, key string) error {
	if _, err := k.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo del %q: %w", key, err)
	}
	return nil
}
