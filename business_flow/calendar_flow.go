package businessflow

import (
	"context"
	"fmt"
	"time"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/repository"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
)

// CalendarFlow renders month grids and reports the calendar-wide last update
type CalendarFlow interface {
	MonthView(ctx context.Context, year, month int, selection []string, today, selectedDate string) (*dto.MonthViewResponse, error)
	LastUpdated(ctx context.Context) (*dto.LastUpdatedResponse, error)
}

// CalendarFlowImpl implements the calendar business flow
type CalendarFlowImpl struct {
	eventRepo    repository.EventRepository
	tagRepo      repository.LocationTagRepository
	metadataRepo repository.CalendarMetadataRepository
}

// NewCalendarFlow creates a new calendar flow instance
func NewCalendarFlow(
	eventRepo repository.EventRepository,
	tagRepo repository.LocationTagRepository,
	metadataRepo repository.CalendarMetadataRepository,
) CalendarFlow {
	return &CalendarFlowImpl{
		eventRepo:    eventRepo,
		tagRepo:      tagRepo,
		metadataRepo: metadataRepo,
	}
}

// AddMonths shifts a year/month pair by delta months, normalizing across
// year boundaries. The arithmetic is anchored on the first of the month so
// day overflow never occurs.
func AddMonths(year, month, delta int) (int, int) {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	t = t.AddDate(0, delta, 0)
	return t.Year(), int(t.Month())
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks returns the number of pad cells before day 1 in a
// Sunday-first week layout
func LeadingBlanks(year, month int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return int(first.Weekday())
}

// MonthView renders the month grid for the given year/month under the given
// location selection. Cells run from the leading blanks through the last day
// of the month, with no trailing padding. today and selectedDate are
// YYYY-MM-DD strings; cells matching them are marked, empty means no match.
func (cf *CalendarFlowImpl) MonthView(ctx context.Context, year, month int, selection []string, today, selectedDate string) (*dto.MonthViewResponse, error) {
	if month < 1 || month > 12 {
		return nil, NewBusinessError("INVALID_MONTH", "Month must be between 1 and 12", ErrInvalidMonth)
	}
	if year < 1 || year > 9999 {
		return nil, NewBusinessError("INVALID_YEAR", "Year is out of range", ErrInvalidYear)
	}

	events, err := cf.eventRepo.List(ctx)
	if err != nil {
		return nil, NewBusinessError("MONTH_VIEW_FAILED", "Failed to load events", err)
	}
	events = FilterEvents(events, selection)

	tags, err := cf.tagRepo.List(ctx)
	if err != nil {
		return nil, NewBusinessError("MONTH_VIEW_FAILED", "Failed to load location tags", err)
	}
	tagColors := make(map[string]string, len(tags))
	for _, tag := range tags {
		tagColors[tag.ID] = tag.Color
	}

	byDate := make(map[string][]*models.Event)
	for _, ev := range events {
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}

	blanks := LeadingBlanks(year, month)
	days := DaysInMonth(year, month)
	cells := make([]dto.DayCell, 0, blanks+days)

	for i := 0; i < blanks; i++ {
		cells = append(cells, dto.DayCell{Blank: true})
	}

	total := 0
	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		dayEvents := byDate[date]
		total += len(dayEvents)

		cell := dto.DayCell{
			Day:        day,
			Date:       date,
			IsToday:    date == today,
			IsSelected: selectedDate != "" && date == selectedDate,
		}
		for i, ev := range dayEvents {
			if i >= utils.MaxBadgesPerDay {
				cell.MoreCount = len(dayEvents) - utils.MaxBadgesPerDay
				break
			}
			badge := dto.EventBadge{
				ID:    ev.ID,
				Title: ev.Title,
			}
			// Events pointing at a deleted tag render untagged
			if ev.LocationTagID != nil {
				if color, ok := tagColors[*ev.LocationTagID]; ok {
					badge.TagColor = utils.ToPtr(color)
				}
			}
			cell.Badges = append(cell.Badges, badge)
		}
		cells = append(cells, cell)
	}

	return &dto.MonthViewResponse{
		Year:        year,
		Month:       month,
		Cells:       cells,
		TotalEvents: total,
	}, nil
}

// LastUpdated returns the calendar-wide last content change, nil when no
// content mutation has been recorded
func (cf *CalendarFlowImpl) LastUpdated(ctx context.Context) (*dto.LastUpdatedResponse, error) {
	ts, err := cf.metadataRepo.LastUpdated(ctx)
	if err != nil {
		return nil, NewBusinessError("LAST_UPDATED_FAILED", "Failed to read last updated timestamp", err)
	}

	resp := &dto.LastUpdatedResponse{}
	if ts != nil {
		resp.LastUpdated = utils.ToPtr(ts.UTC().Format(time.RFC3339))
	}
	return resp, nil
}

// EventsOn returns the events whose date matches the given YYYY-MM-DD string,
// after applying the location selection, in repository order
func EventsOn(events []*models.Event, selection []string, date string) []*models.Event {
	visible := FilterEvents(events, selection)
	matched := make([]*models.Event, 0, len(visible))
	for _, ev := range visible {
		if ev.Date == date {
			matched = append(matched, ev)
		}
	}
	return matched
}
