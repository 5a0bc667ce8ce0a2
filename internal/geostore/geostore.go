// Package geostore wraps a MongoDB collection so that documents written
// through it can be queried by proximity. Documents must carry a GeoJSON
// point in the "coordinates" field; the wrapper owns the 2dsphere index.
package geostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const coordinatesField = "coordinates"

type Collection struct {
	col *mongo.Collection
}

func Wrap(col *mongo.Collection) *Collection {
	return &Collection{col: col}
}

// EnsureIndex creates the 2dsphere index backing Near. Idempotent.
func (g *Collection) EnsureIndex(ctx context.Context) error {
	_, err := g.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: coordinatesField, Value: "2dsphere"}},
		Options: options.Index().SetName("geo_" + coordinatesField),
	})
	return err
}

// Set writes doc under the given id, replacing any existing document.
func (g *Collection) Set(ctx context.Context, id bson.ObjectID, doc any) error {
	_, err := g.col.ReplaceOne(ctx, bson.M{"_id": id}, doc,
		options.Replace().SetUpsert(true))
	return err
}

// FindByID decodes the document with the given id into out.
func (g *Collection) FindByID(ctx context.Context, id bson.ObjectID, out any) error {
	return g.col.FindOne(ctx, bson.M{"_id": id}).Decode(out)
}

// NearFilter builds the $nearSphere filter for a point and radius in meters.
func NearFilter(lat, lng, maxMeters float64) bson.M {
	return bson.M{
		coordinatesField: bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{lng, lat},
				},
				"$maxDistance": maxMeters,
			},
		},
	}
}

// Near decodes all documents within maxMeters of the point into out, closest
// first (the index orders $nearSphere results by distance).
func (g *Collection) Near(ctx context.Context, lat, lng, maxMeters float64, limit int64, out any) error {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := g.col.Find(ctx, NearFilter(lat, lng, maxMeters), opts)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}
