package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-site/internal/content"
	"wedding-site/internal/models"
	"wedding-site/internal/storage"
)

type stubWisher struct {
	message string
}

func (s *stubWisher) Generate(ctx context.Context, relationship, tone string) string {
	return fmt.Sprintf("%s for the %s %s", s.message, relationship, tone)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "guests.json"))
	require.NoError(t, err)
	return NewRouter(store, content.Default(), &stubWisher{message: "best wishes"}, zerolog.Nop())
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRaw(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeGuest(t *testing.T, data []byte) models.Guest {
	t.Helper()
	var g models.Guest
	require.NoError(t, json.Unmarshal(data, &g))
	return g
}

func rsvpBody(members ...models.GuestMember) map[string]interface{} {
	return map[string]interface{}{
		"members": members,
		"rsvp":    map[string]interface{}{},
	}
}

func TestGetGuestFamily(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/guest/FAMILY", nil)
	require.Equal(t, http.StatusOK, w.Code)

	guest := decodeGuest(t, w.Body.Bytes())
	assert.Equal(t, "FAMILY", guest.Code)
	assert.Equal(t, "The Patel Family", guest.GroupName)
	require.Len(t, guest.Members, 2)
	for _, m := range guest.Members {
		assert.Equal(t, models.AttendanceAttending, m.Attendance)
	}
}

func TestGetGuestCaseInsensitive(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/guest/family", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "FAMILY", decodeGuest(t, w.Body.Bytes()).Code)
}

func TestGetGuestUnknown(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/guest/NOBODY", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid invitation code", body["error"])
}

func TestSubmitRSVPLowercaseCode(t *testing.T) {
	r := newTestRouter(t)

	members := []models.GuestMember{
		{Name: "Rahul", Attendance: models.AttendanceAttending, DietaryPreference: models.DietaryNone, Allergies: []string{}},
		{Name: "Anjali", Attendance: models.AttendancePending, DietaryPreference: models.DietaryNone, Allergies: []string{}},
	}
	w := do(t, r, http.MethodPost, "/api/guest/guest002/rsvp", rsvpBody(members...))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool         `json:"success"`
		Guest   models.Guest `json:"guest"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, models.AttendanceAttending, resp.Guest.Members[0].Attendance)

	// The uppercase GET must reflect the lowercase POST.
	w = do(t, r, http.MethodGet, "/api/guest/GUEST002", nil)
	require.Equal(t, http.StatusOK, w.Code)
	guest := decodeGuest(t, w.Body.Bytes())
	assert.Equal(t, models.AttendanceAttending, guest.Members[0].Attendance)
	assert.Equal(t, models.AttendancePending, guest.Members[1].Attendance)
}

func TestSubmitRSVPSanitizesRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/guest/GUEST001/rsvp", rsvpBody(models.GuestMember{
		Name:              "  Priya Sharma  ",
		Attendance:        models.AttendanceAttending,
		DietaryPreference: models.DietaryVegan,
		Allergies:         []string{" Dairy ", "", "Other"},
		OtherAllergies:    "  kiwi  ",
	}))
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/guest/GUEST001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	guest := decodeGuest(t, w.Body.Bytes())
	require.Len(t, guest.Members, 1)
	assert.Equal(t, "Priya Sharma", guest.Members[0].Name)
	assert.Equal(t, []string{"Dairy", "Other"}, guest.Members[0].Allergies)
	assert.Equal(t, "kiwi", guest.Members[0].OtherAllergies)
	require.NotNil(t, guest.RSVP)
	assert.NotEmpty(t, guest.RSVP.UpdatedAt)
}

func TestSubmitRSVPIdempotent(t *testing.T) {
	r := newTestRouter(t)

	body := rsvpBody(models.GuestMember{
		Name:       "Priya Sharma",
		Attendance: models.AttendanceDeclining,
		Allergies:  []string{},
	})
	w := do(t, r, http.MethodPost, "/api/guest/GUEST001/rsvp", body)
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeGuest(t, do(t, r, http.MethodGet, "/api/guest/GUEST001", nil).Body.Bytes())

	w = do(t, r, http.MethodPost, "/api/guest/GUEST001/rsvp", body)
	require.Equal(t, http.StatusOK, w.Code)
	second := decodeGuest(t, do(t, r, http.MethodGet, "/api/guest/GUEST001", nil).Body.Bytes())

	assert.Equal(t, first.Members, second.Members)
}

func TestSubmitRSVPUnknownCode(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/guest/UNKNOWN/rsvp", rsvpBody(models.GuestMember{
		Name:       "Nobody",
		Attendance: models.AttendancePending,
		Allergies:  []string{},
	}))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitRSVPValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"members": [`},
		{"empty members", `{"members": []}`},
		{"blank name", `{"members": [{"name": "  ", "attendance": "attending"}]}`},
		{"bad attendance", `{"members": [{"name": "Priya", "attendance": "perhaps"}]}`},
		{"non-string allergy", `{"members": [{"name": "Priya", "attendance": "attending", "allergies": [42]}]}`},
		{"rsvp not an object", `{"members": [{"name": "Priya", "attendance": "attending"}], "rsvp": "hello"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t)
			w := doRaw(t, r, http.MethodPost, "/api/guest/GUEST001/rsvp", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestLegacyRSVPAlwaysSucceeds(t *testing.T) {
	r := newTestRouter(t)

	w := doRaw(t, r, http.MethodPost, "/api/rsvp", `{"anything": ["at", "all"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body["success"])
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/healthz", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
