package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the profile document (collection "users"). The submission
// workflow reads preciseLocation/preciseLocationName for form pre-fill and
// merge-updates them when a location is picked on the map.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password_hash,omitempty" json:"-"`
	DisplayName  string        `bson:"displayName,omitempty" json:"displayName,omitempty"`

	PreciseLocation     *GeoPoint `bson:"preciseLocation,omitempty" json:"preciseLocation,omitempty"`
	PreciseLocationName string    `bson:"preciseLocationName,omitempty" json:"preciseLocationName,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// UserPrivileged is the restricted profile record (collection
// "users_privileged"). It is read during submission only to build the public
// attribution info.
type UserPrivileged struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName   string        `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName    string        `bson:"lastName,omitempty" json:"lastName,omitempty"`
	DisplayName string        `bson:"displayName,omitempty" json:"displayName,omitempty"`
}
