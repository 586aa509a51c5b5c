package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/movieflix/movieflix-api/internal/core/ports"
)

const searchCountCollection = "search_counts"

// SearchCounter tracks search popularity in MongoDB: one document per
// query, count incremented and top result replaced on each hit.
type SearchCounter struct {
	coll *mongo.Collection
}

func NewSearchCounter(db *mongo.Database) *SearchCounter {
	return &SearchCounter{coll: db.Collection(searchCountCollection)}
}

func (c *SearchCounter) Record(ctx context.Context, hit ports.SearchHit) error {
	update := bson.M{
		"$inc": bson.M{"count": 1},
		"$set": bson.M{
			"movie_id":    hit.Movie.ID,
			"title":       hit.Movie.Title,
			"poster_path": hit.Movie.PosterPath,
		},
	}
	_, err := c.coll.UpdateOne(ctx, bson.M{"_id": hit.Query}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("record search hit: %w", err)
	}
	return nil
}
