package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"assist-backend/dto"
	"assist-backend/internal/models"
	"assist-backend/internal/utils"
)

var ErrInvalidLocation = errors.New("invalid coordinates")

// ProfileService serves the location pre-fill read and the map-selection
// merge-write.
type ProfileService struct {
	profiles ProfileStore
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// LoadLocation reads the profile once and exposes the saved location, or
// "no location yet" when the profile is missing or has none. Loaded is
// always true on a successful read so clients can stop their spinner.
func (s *ProfileService) LoadLocation(ctx context.Context, userID bson.ObjectID) (*dto.ProfileLocation, error) {
	user, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &dto.ProfileLocation{Loaded: true}, nil
		}
		return nil, err
	}

	out := &dto.ProfileLocation{Loaded: true}
	if user.PreciseLocation != nil && !user.PreciseLocation.IsZero() {
		out.Location = &dto.LatLng{
			Latitude:  user.PreciseLocation.Lat(),
			Longitude: user.PreciseLocation.Lng(),
		}
		out.GeneralLocationName = user.PreciseLocationName
	}
	return out, nil
}

// SaveLocation merges a newly chosen map location into the profile.
func (s *ProfileService) SaveLocation(ctx context.Context, userID bson.ObjectID, change *dto.LocationChange) error {
	if userID.IsZero() {
		return ErrNotAuthenticated
	}
	p := change.PreciseLocation
	if !utils.ValidLatLng(p.Latitude, p.Longitude) {
		return ErrInvalidLocation
	}
	return s.profiles.MergeLocation(ctx, userID,
		models.NewGeoPoint(p.Latitude, p.Longitude), change.GeneralLocationName)
}
