package services

import (
	"fmt"
	"net/url"

	ics "github.com/arran4/golang-ical"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
)

// CalendarExportService turns events into external-calendar handoffs
type CalendarExportService interface {
	GoogleCalendarURL(event *models.Event) (string, error)
	BuildICS(event *models.Event) (string, error)
}

// CalendarExportServiceImpl implements the calendar export service
type CalendarExportServiceImpl struct{}

// NewCalendarExportService creates a new calendar export service instance
func NewCalendarExportService() CalendarExportService {
	return &CalendarExportServiceImpl{}
}

// compactStamp renders a date plus hour as a floating YYYYMMDDTHHMMSS stamp.
// Exports carry no timezone: the event happens at local wall time wherever
// the reader is.
func compactStamp(date string, hour int) (string, error) {
	t, err := utils.ParseCalendarDate(date)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d%02d%02dT%02d0000", t.Year(), int(t.Month()), t.Day(), hour), nil
}

// GoogleCalendarURL builds a Google Calendar event-creation deep link with a
// placeholder 09:00-10:00 window on the event's date
func (s *CalendarExportServiceImpl) GoogleCalendarURL(event *models.Event) (string, error) {
	start, err := compactStamp(event.Date, utils.ExportStartHour)
	if err != nil {
		return "", fmt.Errorf("failed to build export window: %w", err)
	}
	end, err := compactStamp(event.Date, utils.ExportEndHour)
	if err != nil {
		return "", fmt.Errorf("failed to build export window: %w", err)
	}

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", event.Title)
	q.Set("dates", start+"/"+end)
	if event.Description != nil && *event.Description != "" {
		q.Set("details", *event.Description)
	}

	return "https://calendar.google.com/calendar/render?" + q.Encode(), nil
}

// BuildICS serializes one event as an iCalendar file with the same
// placeholder 09:00-10:00 window used for the Google link
func (s *CalendarExportServiceImpl) BuildICS(event *models.Event) (string, error) {
	start, err := utils.ParseCalendarDate(event.Date)
	if err != nil {
		return "", fmt.Errorf("failed to parse event date: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//OdekakeEventCalendar//JP")

	vevent := cal.AddEvent(event.ID)
	vevent.SetProperty(ics.ComponentPropertyDtStart, fmt.Sprintf("%04d%02d%02dT%02d0000",
		start.Year(), int(start.Month()), start.Day(), utils.ExportStartHour))
	vevent.SetProperty(ics.ComponentPropertyDtEnd, fmt.Sprintf("%04d%02d%02dT%02d0000",
		start.Year(), int(start.Month()), start.Day(), utils.ExportEndHour))
	vevent.SetSummary(event.Title)
	if event.Description != nil && *event.Description != "" {
		vevent.SetDescription(*event.Description)
	}
	if event.ExternalLink != nil && *event.ExternalLink != "" {
		vevent.SetURL(*event.ExternalLink)
	}
	vevent.SetDtStampTime(utils.UTCNow())

	return cal.Serialize(), nil
}
