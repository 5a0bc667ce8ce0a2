package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type NotiType string

// Ref points a notification at the entity it is about.
type Ref struct {
	Entity string        `bson:"entity" json:"entity"` // "request"
	ID     bson.ObjectID `bson:"id" json:"id"`
}

// Notification is the per-user notification document (collection
// "notifications"). The submission workflow writes these fire-and-forget.
type Notification struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    bson.ObjectID `bson:"user_id" json:"userId"`
	Type      NotiType      `bson:"type" json:"type"`
	Title     string        `bson:"title" json:"title"`
	Body      string        `bson:"body" json:"body"`
	Ref       Ref           `bson:"ref" json:"ref"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
	Read      bool          `bson:"read" json:"read"`
}
