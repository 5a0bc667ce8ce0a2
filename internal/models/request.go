package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Immediacy priority codes declared by the requester.
const (
	ImmediacyLow    = 1
	ImmediacyMedium = 5
	ImmediacyHigh   = 10
)

// Request lifecycle status codes (requests_public.status).
const (
	RequestStatusCreated = 1
)

// Request action codes (requests_actions.action).
const (
	RequestActionCreated = 1
)

// CreatedByInfo is the public attribution attached to a request. It carries
// only what may be shown to volunteers, never contact details.
type CreatedByInfo struct {
	UserProfileID bson.ObjectID `bson:"userProfileId" json:"userProfileId"`
	FirstName     string        `bson:"firstName" json:"firstName"`
	DisplayName   string        `bson:"displayName" json:"displayName"`
}

// RequestPrivate is the full request record (collection "requests").
// Write-once: never mutated by the submission workflow after creation.
type RequestPrivate struct {
	ID                      bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName               string        `bson:"firstName" json:"firstName"`
	LastName                string        `bson:"lastName" json:"lastName"`
	Immediacy               int           `bson:"immediacy" json:"immediacy"`
	Needs                   []string      `bson:"needs" json:"needs"`
	OtherDetails            string        `bson:"otherDetails,omitempty" json:"otherDetails,omitempty"`
	NeedFinancialAssistance bool          `bson:"needFinancialAssistance" json:"needFinancialAssistance"`
	CreatedBy               bson.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt               time.Time     `bson:"createdAt" json:"createdAt"`
	PreciseLocation         GeoPoint      `bson:"preciseLocation" json:"preciseLocation"`
}

// RequestPublic is the volunteer-facing projection (collection
// "requests_public"). It shares the private record's id, must never carry
// lastName, phone or email, and holds only the generalized location.
type RequestPublic struct {
	ID                      bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	FirstName               string         `bson:"firstName" json:"firstName"`
	Immediacy               int            `bson:"immediacy" json:"immediacy"`
	Needs                   []string       `bson:"needs" json:"needs"`
	OtherDetails            string         `bson:"otherDetails,omitempty" json:"otherDetails,omitempty"`
	NeedFinancialAssistance bool           `bson:"needFinancialAssistance" json:"needFinancialAssistance"`
	CreatedBy               bson.ObjectID  `bson:"createdBy" json:"createdBy"`
	CreatedByInfo           *CreatedByInfo `bson:"createdByInfo,omitempty" json:"createdByInfo,omitempty"`
	CreatedAt               time.Time      `bson:"createdAt" json:"createdAt"`
	LastUpdatedAt           time.Time      `bson:"lastUpdatedAt" json:"lastUpdatedAt"`
	Status                  int            `bson:"status" json:"status"`
	Coordinates             GeoPoint       `bson:"coordinates" json:"coordinates"`
	GeneralLocationName     string         `bson:"generalLocationName,omitempty" json:"generalLocationName,omitempty"`
}

// RequestContactInfo holds the requester's contact details (collection
// "requests_contact_info"), keyed by the shared request id. Write-once.
type RequestContactInfo struct {
	ID    bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Phone string        `bson:"phone" json:"phone"`
	Email string        `bson:"email,omitempty" json:"email,omitempty"`
}

// RequestAction is an append-only audit event (collection
// "requests_actions"), keyed by the shared request id for the creation event.
type RequestAction struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID bson.ObjectID `bson:"requestId" json:"requestId"`
	Action    int           `bson:"action" json:"action"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`

	CreatedByInfo `bson:",inline"`
}
