package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"assist-backend/internal/models"
	"assist-backend/internal/repository"
)

const (
	NotiRequestSubmitted models.NotiType = "REQUEST_SUBMITTED"
	NotiRequestFailed    models.NotiType = "REQUEST_FAILED"
)

// NotificationSink is the show-success / show-error collaborator of the
// submission workflow. Fire-and-forget: implementations report nothing back.
type NotificationSink interface {
	ShowSuccess(ctx context.Context, userID bson.ObjectID, ref models.Ref, message string)
	ShowError(ctx context.Context, userID bson.ObjectID, ref models.Ref, message string)
}

// MongoNotifier writes notification documents for the user to consume via
// GET /notifications. Write failures are logged, never surfaced.
type MongoNotifier struct {
	col *mongo.Collection
}

func NewMongoNotifier(db *mongo.Database) *MongoNotifier {
	return &MongoNotifier{col: db.Collection(repository.NotificationsCollection)}
}

func (n *MongoNotifier) ShowSuccess(ctx context.Context, userID bson.ObjectID, ref models.Ref, message string) {
	n.insert(ctx, userID, NotiRequestSubmitted, ref, message)
}

func (n *MongoNotifier) ShowError(ctx context.Context, userID bson.ObjectID, ref models.Ref, message string) {
	n.insert(ctx, userID, NotiRequestFailed, ref, message)
}

func (n *MongoNotifier) insert(ctx context.Context, userID bson.ObjectID, typ models.NotiType, ref models.Ref, message string) {
	_, err := n.col.InsertOne(ctx, models.Notification{
		UserID:    userID,
		Type:      typ,
		Title:     message,
		Body:      message,
		Ref:       ref,
		CreatedAt: time.Now().UTC(),
		Read:      false,
	})
	if err != nil {
		log.Error().Err(err).Str("type", string(typ)).Msg("failed to write notification")
	}
}
