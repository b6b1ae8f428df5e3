package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gaoqi7/familyCalendar/internal/errs"
	"github.com/gaoqi7/familyCalendar/internal/model"
)

type stubEventService struct {
	createdIn  *model.EventInput
	createdHH  int64
	createOut  *model.Event
	createErr  error
	listOut    []model.Event
	deletedID  int64
	deletedSer int64
}

func (s *stubEventService) Create(_ context.Context, householdID int64, in model.EventInput) (*model.Event, error) {
	s.createdHH, s.createdIn = householdID, &in
	return s.createOut, s.createErr
}

func (s *stubEventService) Update(_ context.Context, _, _ int64, _ model.EventPatch) (*model.Event, error) {
	return s.createOut, s.createErr
}

func (s *stubEventService) DeleteOccurrence(_ context.Context, _, id int64) error {
	s.deletedID = id
	return nil
}

func (s *stubEventService) DeleteSeries(_ context.Context, _, id int64) error {
	s.deletedSer = id
	return nil
}

func (s *stubEventService) Get(_ context.Context, _, _ int64) (*model.Event, error) {
	return s.createOut, s.createErr
}

func (s *stubEventService) List(_ context.Context, _ int64) ([]model.Event, error) {
	return s.listOut, nil
}

type stubHouseholdService struct{ out *model.Household }

func (s *stubHouseholdService) Get(_ context.Context, _ int64) (*model.Household, error) {
	if s.out == nil {
		return nil, errs.ErrNotFound
	}
	return s.out, nil
}

func (s *stubHouseholdService) UpdateProfile(_ context.Context, _ int64, _, _ *string) (*model.Household, error) {
	return s.out, nil
}

var testSignKey = []byte("test-sign-key")

func signedToken(t *testing.T, householdID string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   householdID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSignKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return tok
}

func newTestServer(events *stubEventService) *Server {
	return New(Config{
		Events:     events,
		Households: &stubHouseholdService{out: &model.Household{ID: 7, Name: "Smith"}},
		SignKey:    testSignKey,
		UploadDir:  ".",
	})
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	t.Parallel()
	app := newTestServer(&stubEventService{}).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", resp.StatusCode)
	}
}

func TestRouter_RejectsExpiredToken(t *testing.T) {
	t.Parallel()
	app := newTestServer(&stubEventService{}).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "7", -time.Hour))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", resp.StatusCode)
	}
}

func TestRouter_ListEvents_OK(t *testing.T) {
	t.Parallel()
	events := &stubEventService{listOut: []model.Event{
		{ID: 1, Title: "Yoga", StartAt: time.Now(), CreatedAt: time.Now()},
	}}
	app := newTestServer(events).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "7", time.Hour))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	var out []map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode: %v (%s)", err, body)
	}
	if len(out) != 1 || out[0]["title"] != "Yoga" {
		t.Fatalf("unexpected payload: %s", body)
	}
}

func TestRouter_CreateEvent_ScopesToTokenHousehold(t *testing.T) {
	t.Parallel()
	events := &stubEventService{createOut: &model.Event{ID: 9, Title: "Yoga", StartAt: time.Now(), CreatedAt: time.Now()}}
	app := newTestServer(events).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/events",
		strings.NewReader(`{"title":"Yoga","startAt":"2024-06-01T09:00"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "7", time.Hour))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("want 201, got %d: %s", resp.StatusCode, body)
	}
	if events.createdHH != 7 {
		t.Fatalf("household must come from the token, got %d", events.createdHH)
	}
	if events.createdIn.Title != "Yoga" {
		t.Fatalf("input not converted: %+v", events.createdIn)
	}
}

func TestRouter_CreateEvent_MissingTitle(t *testing.T) {
	t.Parallel()
	app := newTestServer(&stubEventService{}).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/events",
		strings.NewReader(`{"startAt":"2024-06-01T09:00"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "7", time.Hour))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}

func TestRouter_ValidationErrorMapsTo400(t *testing.T) {
	t.Parallel()
	events := &stubEventService{createErr: errs.ErrValidation}
	app := newTestServer(events).Router()

	req := httptest.NewRequest(http.MethodPost, "/api/events",
		strings.NewReader(`{"title":"x","startAt":"2024-06-01T09:00"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "7", time.Hour))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}

func TestRouter_DeleteRoutes(t *testing.T) {
	t.Parallel()
	events := &stubEventService{}
	app := newTestServer(events).Router()

	req := httptest.NewRequest(http.MethodDelete, "/api/events/42", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "7", time.Hour))
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("delete occurrence: status=%d err=%v", resp.StatusCode, err)
	}
	if events.deletedID != 42 {
		t.Fatalf("wrong occurrence deleted: %d", events.deletedID)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/events/42/series", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "7", time.Hour))
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("delete series: status=%d err=%v", resp.StatusCode, err)
	}
	if events.deletedSer != 42 {
		t.Fatalf("wrong series target: %d", events.deletedSer)
	}
}

func TestRouter_ExportICS(t *testing.T) {
	t.Parallel()
	events := &stubEventService{listOut: []model.Event{
		{ID: 1, Title: "Yoga", StartAt: time.Now(), CreatedAt: time.Now()},
	}}
	app := newTestServer(events).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/events.ics", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "7", time.Hour))
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("want text/calendar, got %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "BEGIN:VCALENDAR") {
		t.Fatalf("not an ICS document: %s", body)
	}
}

func TestRouter_CookieFallbackAuth(t *testing.T) {
	t.Parallel()
	app := newTestServer(&stubEventService{}).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signedToken(t, "7", time.Hour)})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cookie token must authenticate, got %d", resp.StatusCode)
	}
}
