package repository

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"assist-backend/internal/models"
)

type UserRepository struct {
	users      *mongo.Collection
	privileged *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		users:      db.Collection(UsersCollection),
		privileged: db.Collection(UsersPrivilegedCollection),
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	filter := bson.M{"email": strings.ToLower(email)}
	if err := r.users.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	res, err := r.users.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

// FindPrivileged reads the restricted profile record used only for public
// attribution of a request.
func (r *UserRepository) FindPrivileged(ctx context.Context, id bson.ObjectID) (*models.UserPrivileged, error) {
	var profile models.UserPrivileged
	if err := r.privileged.FindOne(ctx, bson.M{"_id": id}).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SetPrivileged writes the restricted profile record under the user's id.
func (r *UserRepository) SetPrivileged(ctx context.Context, profile *models.UserPrivileged) error {
	_, err := r.privileged.ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile,
		options.Replace().SetUpsert(true))
	return err
}

// MergeLocation persists a chosen map location onto the profile with a
// partial update, leaving all other profile fields untouched.
func (r *UserRepository) MergeLocation(ctx context.Context, id bson.ObjectID, loc models.GeoPoint, name string) error {
	update := bson.M{"$set": bson.M{
		"preciseLocation":     loc,
		"preciseLocationName": name,
		"updatedAt":           time.Now().UTC(),
	}}
	_, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, update,
		options.UpdateOne().SetUpsert(true))
	return err
}
