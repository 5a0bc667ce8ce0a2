package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"assist-backend/internal/geostore"
	"assist-backend/internal/repository"
)

// EnsureIndexes creates the indexes the workflow depends on: the 2dsphere
// index serving proximity reads of public requests, the audit-trail lookup
// by request id, and the unread-notification fetch per user.
func EnsureIndexes(db *mongo.Database) error {
	ctx := context.Background()

	if err := geostore.Wrap(db.Collection(repository.RequestsPublicCollection)).EnsureIndex(ctx); err != nil {
		return err
	}

	_, err := db.Collection(repository.RequestsActionsCollection).Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "requestId", Value: 1}},
			Options: options.Index().SetName("by_request"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection(repository.NotificationsCollection).Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "read", Value: 1}},
			Options: options.Index().SetName("unread_by_user"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection(repository.UsersCollection).Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
	)
	return err
}
