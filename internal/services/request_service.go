package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/sync/errgroup"

	"assist-backend/dto"
	"assist-backend/internal/models"
	"assist-backend/internal/utils"
	"assist-backend/internal/validation"
)

// RequestSuccessfulPath is where the client navigates after a successful
// submission.
const RequestSuccessfulPath = "/request-successful"

var (
	ErrNotAuthenticated = errors.New("You must be logged in to create a request")
	ErrNoLocation       = errors.New("Please select a location by clicking on the map above.")
)

// ProfileStore is the profile-management collaborator: location pre-fill
// reads, privileged attribution reads, and location merge-writes.
type ProfileStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindPrivileged(ctx context.Context, id bson.ObjectID) (*models.UserPrivileged, error)
	MergeLocation(ctx context.Context, id bson.ObjectID, loc models.GeoPoint, name string) error
}

// RequestStore persists the four request records sharing one generated id.
type RequestStore interface {
	InsertPrivate(ctx context.Context, req *models.RequestPrivate) (bson.ObjectID, error)
	SetPublic(ctx context.Context, id bson.ObjectID, pub *models.RequestPublic) error
	SetContactInfo(ctx context.Context, id bson.ObjectID, info *models.RequestContactInfo) error
	SetAction(ctx context.Context, id bson.ObjectID, action *models.RequestAction) error
}

// RequestService orchestrates help-request submission.
type RequestService struct {
	profiles ProfileStore
	requests RequestStore
	sink     NotificationSink
	events   EventPublisher

	now func() time.Time
}

// NewRequestService wires the orchestrator. events may be nil when no
// broker is configured.
func NewRequestService(profiles ProfileStore, requests RequestStore, sink NotificationSink, events EventPublisher) *RequestService {
	return &RequestService{
		profiles: profiles,
		requests: requests,
		sink:     sink,
		events:   events,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates the form, checks preconditions, splits the values into
// private/public/contact payloads and persists them: private record first
// (its generated id keys the rest), then the three siblings together. The
// sibling writes are not transactional; a partial failure leaves completed
// writes persisted and is only surfaced, never rolled back.
func (s *RequestService) Submit(ctx context.Context, userID bson.ObjectID, form *dto.NewRequest) (*dto.NewRequestResponse, error) {
	if userID.IsZero() {
		return nil, ErrNotAuthenticated
	}
	if err := validation.ValidateNewRequest(form); err != nil {
		return nil, err
	}

	loc := form.Location
	if loc == nil || !utils.ValidLatLng(loc.PreciseLocation.Latitude, loc.PreciseLocation.Longitude) {
		return nil, ErrNoLocation
	}

	precise := models.NewGeoPoint(loc.PreciseLocation.Latitude, loc.PreciseLocation.Longitude)
	general := generalizedPoint(loc, precise)

	// Save the chosen location onto the profile up front; this side effect
	// stands regardless of how the request writes turn out.
	if err := s.profiles.MergeLocation(ctx, userID, precise, loc.GeneralLocationName); err != nil {
		log.Warn().Err(err).Str("user", userID.Hex()).Msg("failed to save location to profile")
	}

	createdByInfo, err := s.attribution(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	needs := form.SelectedNeeds()

	private := &models.RequestPrivate{
		FirstName:               form.FirstName,
		LastName:                form.LastName,
		Immediacy:               form.ParsedImmediacy(),
		Needs:                   needs,
		OtherDetails:            form.OtherDetails,
		NeedFinancialAssistance: form.ParsedFinancialAssistance(),
		CreatedBy:               userID,
		CreatedAt:               now,
		PreciseLocation:         precise,
	}

	id, err := s.requests.InsertPrivate(ctx, private)
	if err != nil {
		s.sink.ShowError(ctx, userID, models.Ref{Entity: "request"}, err.Error())
		return nil, fmt.Errorf("insert private request: %w", err)
	}
	ref := models.Ref{Entity: "request", ID: id}

	pub := &models.RequestPublic{
		FirstName:               form.FirstName,
		Immediacy:               private.Immediacy,
		Needs:                   needs,
		OtherDetails:            form.OtherDetails,
		NeedFinancialAssistance: private.NeedFinancialAssistance,
		CreatedBy:               userID,
		CreatedByInfo:           createdByInfo,
		CreatedAt:               now,
		LastUpdatedAt:           now,
		Status:                  models.RequestStatusCreated,
		Coordinates:             general,
		GeneralLocationName:     loc.GeneralLocationName,
	}
	contact := &models.RequestContactInfo{
		Phone: form.Phone,
		Email: form.Email,
	}
	action := &models.RequestAction{
		RequestID: id,
		Action:    models.RequestActionCreated,
		CreatedAt: now,
	}
	if createdByInfo != nil {
		action.CreatedByInfo = *createdByInfo
	}

	// Fan-out await: issue the sibling writes together and wait for all.
	// A plain group (no shared cancel) so a failing write never cancels an
	// in-flight sibling; whatever completed stays written.
	var g errgroup.Group
	g.Go(func() error { return s.requests.SetPublic(ctx, id, pub) })
	g.Go(func() error { return s.requests.SetContactInfo(ctx, id, contact) })
	g.Go(func() error { return s.requests.SetAction(ctx, id, action) })
	if err := g.Wait(); err != nil {
		s.sink.ShowError(ctx, userID, ref, err.Error())
		return nil, fmt.Errorf("write request records: %w", err)
	}

	s.sink.ShowSuccess(ctx, userID, ref, "Request submitted!")

	if s.events != nil {
		event := RequestCreatedEvent{
			RequestID: id.Hex(),
			CreatedBy: userID.Hex(),
			Immediacy: private.Immediacy,
			Needs:     needs,
			CreatedAt: now,
		}
		if err := s.events.PublishRequestCreated(ctx, event); err != nil {
			log.Warn().Err(err).Str("request", id.Hex()).Msg("failed to publish request.created")
		}
	}

	return &dto.NewRequestResponse{ID: id.Hex(), Redirect: RequestSuccessfulPath}, nil
}

// attribution builds the public creator info from the privileged profile.
// A missing privileged record means the request goes out unattributed; a
// display name that cannot be split into first/last parts aborts the
// submission before any write.
func (s *RequestService) attribution(ctx context.Context, userID bson.ObjectID) (*models.CreatedByInfo, error) {
	profile, err := s.profiles.FindPrivileged(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup privileged profile: %w", err)
	}
	first, _, err := utils.SplitDisplayName(profile.DisplayName)
	if err != nil {
		return nil, err
	}
	return &models.CreatedByInfo{
		UserProfileID: userID,
		FirstName:     first,
		DisplayName:   profile.DisplayName,
	}, nil
}

// generalizedPoint prefers the coarse point supplied by the map client and
// falls back to rounding the precise one.
func generalizedPoint(loc *dto.LocationChange, precise models.GeoPoint) models.GeoPoint {
	if g := loc.GeneralLocation; g != nil && utils.ValidLatLng(g.Latitude, g.Longitude) {
		return models.NewGeoPoint(g.Latitude, g.Longitude)
	}
	lat, lng := utils.GeneralizeLatLng(precise.Lat(), precise.Lng())
	return models.NewGeoPoint(lat, lng)
}
