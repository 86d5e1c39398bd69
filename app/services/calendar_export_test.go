package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleCalendarURL(t *testing.T) {
	svc := NewCalendarExportService()

	t.Run("PlaceholderWindow", func(t *testing.T) {
		event := &models.Event{Title: "Fireworks", Date: "2025-08-15"}

		link, err := svc.GoogleCalendarURL(event)
		require.NoError(t, err)

		parsed, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "calendar.google.com", parsed.Host)

		q := parsed.Query()
		assert.Equal(t, "TEMPLATE", q.Get("action"))
		assert.Equal(t, "Fireworks", q.Get("text"))
		assert.Equal(t, "20250815T090000/20250815T100000", q.Get("dates"))
		assert.Empty(t, q.Get("details"))
	})

	t.Run("DescriptionIncluded", func(t *testing.T) {
		event := &models.Event{Title: "Fireworks", Date: "2025-08-15", Description: utils.ToPtr("Big show")}

		link, err := svc.GoogleCalendarURL(event)
		require.NoError(t, err)

		parsed, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, "Big show", parsed.Query().Get("details"))
	})

	t.Run("BadDateRejected", func(t *testing.T) {
		event := &models.Event{Title: "Broken", Date: "2025-02-30"}

		_, err := svc.GoogleCalendarURL(event)
		assert.Error(t, err)
	})
}

func TestBuildICS(t *testing.T) {
	svc := NewCalendarExportService()

	t.Run("SerializesEvent", func(t *testing.T) {
		event := &models.Event{
			ID:           "e1",
			Title:        "Fireworks",
			Date:         "2025-08-15",
			Description:  utils.ToPtr("Big show"),
			ExternalLink: utils.ToPtr("https://example.com"),
		}

		payload, err := svc.BuildICS(event)
		require.NoError(t, err)

		assert.True(t, strings.Contains(payload, "BEGIN:VCALENDAR"))
		assert.Contains(t, payload, "METHOD:PUBLISH")
		assert.Contains(t, payload, "UID:e1")
		assert.Contains(t, payload, "SUMMARY:Fireworks")
		assert.Contains(t, payload, "DESCRIPTION:Big show")
		assert.Contains(t, payload, "DTSTART:20250815T090000")
		assert.Contains(t, payload, "DTEND:20250815T100000")
		assert.Contains(t, payload, "URL:https://example.com")
		assert.Contains(t, payload, "END:VCALENDAR")
	})

	t.Run("BadDateRejected", func(t *testing.T) {
		event := &models.Event{ID: "e2", Title: "Broken", Date: "not-a-date"}

		_, err := svc.BuildICS(event)
		assert.Error(t, err)
	})
}
