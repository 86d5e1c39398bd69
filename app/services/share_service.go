// Package services contains reusable domain services used by business flows
package services

import (
	"fmt"
	"strings"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
)

// ShareService formats events into shareable plain text
type ShareService interface {
	ShareText(event *models.Event) string
}

// ShareServiceImpl implements the share text service
type ShareServiceImpl struct{}

// NewShareService creates a new share service instance
func NewShareService() ShareService {
	return &ShareServiceImpl{}
}

// FormatDateJapanese renders a YYYY-MM-DD date as 2006年1月2日. Unparseable
// dates fall back to the raw string.
func FormatDateJapanese(date string) string {
	t, err := utils.ParseCalendarDate(date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}

// ShareText builds the share block for one event. Description and link lines
// are omitted when the event has none.
func (s *ShareServiceImpl) ShareText(event *models.Event) string {
	var b strings.Builder

	b.WriteString("🎉 " + event.Title + "\n")
	b.WriteString("📅 " + FormatDateJapanese(event.Date))

	if event.Description != nil && *event.Description != "" {
		b.WriteString("\n" + *event.Description)
	}
	if event.ExternalLink != nil && *event.ExternalLink != "" {
		b.WriteString("\n🔗 " + *event.ExternalLink)
	}

	return b.String()
}
