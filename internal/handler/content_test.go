package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-site/internal/models"
)

func TestGetContent(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/content", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var site models.SiteContent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &site))
	assert.Len(t, site.Sections, 4)
	assert.Len(t, site.Schedule, 5)
	assert.Len(t, site.Faqs, 3)
	assert.Len(t, site.Registry, 3)
}

func TestGetSchedule(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/content/schedule", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var schedule []models.ScheduleEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schedule))
	require.NotEmpty(t, schedule)
	assert.Equal(t, "Welcome Cocktail", schedule[0].Title)
	assert.Equal(t, "Cocktail Chic", schedule[0].DressCode)
}

func TestGetFaqs(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/content/faqs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var faqs []models.FaqItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &faqs))
	assert.Len(t, faqs, 3)
}

func TestGetRegistry(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/content/registry", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var registry []models.RegistryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registry))
	assert.Len(t, registry, 3)
}

func TestGenerateWish(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/wish", map[string]string{
		"relationship": "College Friend",
		"tone":         "Playful",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "best wishes for the College Friend Playful", body["message"])
}

func TestGenerateWishMalformedBody(t *testing.T) {
	r := newTestRouter(t)

	w := doRaw(t, r, http.MethodPost, "/api/wish", `{"relationship":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
