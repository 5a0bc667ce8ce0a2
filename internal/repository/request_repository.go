package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"assist-backend/internal/geostore"
	"assist-backend/internal/models"
)

// RequestRepository owns the four request collections. The public projection
// goes through the geostore wrapper so it lands in the 2dsphere index.
type RequestRepository struct {
	private *mongo.Collection
	public  *geostore.Collection
	contact *mongo.Collection
	actions *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{
		private: db.Collection(RequestsCollection),
		public:  geostore.Wrap(db.Collection(RequestsPublicCollection)),
		contact: db.Collection(RequestsContactInfoCollection),
		actions: db.Collection(RequestsActionsCollection),
	}
}

// InsertPrivate writes the private record and returns its generated id,
// which seeds the sibling records.
func (r *RequestRepository) InsertPrivate(ctx context.Context, req *models.RequestPrivate) (bson.ObjectID, error) {
	res, err := r.private.InsertOne(ctx, req)
	if err != nil {
		return bson.NilObjectID, err
	}
	req.ID = res.InsertedID.(bson.ObjectID)
	return req.ID, nil
}

func (r *RequestRepository) SetPublic(ctx context.Context, id bson.ObjectID, pub *models.RequestPublic) error {
	pub.ID = id
	return r.public.Set(ctx, id, pub)
}

func (r *RequestRepository) SetContactInfo(ctx context.Context, id bson.ObjectID, info *models.RequestContactInfo) error {
	info.ID = id
	_, err := r.contact.ReplaceOne(ctx, bson.M{"_id": id}, info,
		options.Replace().SetUpsert(true))
	return err
}

func (r *RequestRepository) SetAction(ctx context.Context, id bson.ObjectID, action *models.RequestAction) error {
	action.ID = id
	_, err := r.actions.ReplaceOne(ctx, bson.M{"_id": id}, action,
		options.Replace().SetUpsert(true))
	return err
}

func (r *RequestRepository) FindPublicByID(ctx context.Context, id bson.ObjectID) (*models.RequestPublic, error) {
	var pub models.RequestPublic
	if err := r.public.FindByID(ctx, id, &pub); err != nil {
		return nil, err
	}
	return &pub, nil
}

// FindPublicNear returns public requests within maxMeters of the point,
// closest first.
func (r *RequestRepository) FindPublicNear(ctx context.Context, lat, lng, maxMeters float64, limit int64) ([]models.RequestPublic, error) {
	var results []models.RequestPublic
	if err := r.public.Near(ctx, lat, lng, maxMeters, limit, &results); err != nil {
		return nil, err
	}
	return results, nil
}
