package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"assist-backend/dto"
	"assist-backend/internal/services"
	"assist-backend/internal/utils"
	"assist-backend/internal/validation"
)

type fakeSubmitter struct {
	gotUser bson.ObjectID
	gotForm *dto.NewRequest
	resp    *dto.NewRequestResponse
	err     error
}

func (f *fakeSubmitter) Submit(ctx context.Context, userID bson.ObjectID, form *dto.NewRequest) (*dto.NewRequestResponse, error) {
	f.gotUser = userID
	f.gotForm = form
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func createApp(sub RequestSubmitter, uid string) *fiber.App {
	app := fiber.New()
	h := NewRequestHandler(sub, nil)
	app.Post("/requests", func(c *fiber.Ctx) error {
		if uid != "" {
			c.Locals("user_id", uid)
		}
		return h.Create(c)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode body %q: %v", raw, err)
		}
	}
	return resp.StatusCode, decoded
}

const formBody = `{
	"firstName": "Jane",
	"lastName": "Doe",
	"phone": "555-0100",
	"immediacy": "5",
	"needs": {"grocery-pickup": true},
	"location": {"preciseLocation": {"latitude": 42.12, "longitude": -87.65}}
}`

func TestCreateReturnsCreated(t *testing.T) {
	userID := bson.NewObjectID()
	sub := &fakeSubmitter{resp: &dto.NewRequestResponse{
		ID:       bson.NewObjectID().Hex(),
		Redirect: "/request-successful",
	}}
	app := createApp(sub, userID.Hex())

	status, body := postJSON(t, app, formBody)
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", status)
	}
	if body["redirect"] != "/request-successful" {
		t.Errorf("body = %v", body)
	}

	if sub.gotUser != userID {
		t.Errorf("submitter received user %v, want %v", sub.gotUser, userID)
	}
	if sub.gotForm.FirstName != "Jane" || sub.gotForm.Location == nil {
		t.Errorf("submitter received form %+v", sub.gotForm)
	}
}

func TestCreatePassesAnonymousThrough(t *testing.T) {
	sub := &fakeSubmitter{err: services.ErrNotAuthenticated}
	app := createApp(sub, "")

	status, _ := postJSON(t, app, formBody)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
	if !sub.gotUser.IsZero() {
		t.Errorf("anonymous request must reach the submitter with a nil id, got %v", sub.gotUser)
	}
}

func TestCreateErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not authenticated", err: services.ErrNotAuthenticated, status: fiber.StatusUnauthorized},
		{name: "no location", err: services.ErrNoLocation, status: fiber.StatusPreconditionFailed},
		{name: "unsplittable display name", err: utils.ErrNameSplit, status: fiber.StatusUnprocessableEntity},
		{name: "wrapped name split", err: errors.Join(errors.New("attribution"), utils.ErrNameSplit), status: fiber.StatusUnprocessableEntity},
		{name: "store failure", err: errors.New("write denied"), status: fiber.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := createApp(&fakeSubmitter{err: tt.err}, bson.NewObjectID().Hex())
			status, body := postJSON(t, app, formBody)
			if status != tt.status {
				t.Errorf("status = %d, want %d", status, tt.status)
			}
			if msg, ok := body["error"].(string); !ok || msg == "" {
				t.Error("expected an error message in the body")
			}
		})
	}
}

func TestCreateValidationErrorCarriesFields(t *testing.T) {
	sub := &fakeSubmitter{err: &validation.ValidationError{
		Fields: map[string]string{"firstName": "Required"},
	}}
	app := createApp(sub, bson.NewObjectID().Hex())

	status, body := postJSON(t, app, formBody)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	fields, ok := body["fields"].(map[string]any)
	if !ok || fields["firstName"] != "Required" {
		t.Errorf("body = %v, want per-field messages", body)
	}
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	sub := &fakeSubmitter{}
	app := createApp(sub, bson.NewObjectID().Hex())

	status, _ := postJSON(t, app, `{"firstName": `)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if sub.gotForm != nil {
		t.Error("malformed body must not reach the submitter")
	}
}
