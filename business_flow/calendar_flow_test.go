package businessflow

import (
	"context"
	"testing"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMonths(t *testing.T) {
	t.Run("ForwardAcrossYearBoundary", func(t *testing.T) {
		y, m := AddMonths(2025, 12, 1)
		assert.Equal(t, 2026, y)
		assert.Equal(t, 1, m)
	})

	t.Run("BackwardAcrossYearBoundary", func(t *testing.T) {
		y, m := AddMonths(2025, 1, -1)
		assert.Equal(t, 2024, y)
		assert.Equal(t, 12, m)
	})

	t.Run("NextThenPrevIsIdentity", func(t *testing.T) {
		for month := 1; month <= 12; month++ {
			y, m := AddMonths(2025, month, 1)
			y, m = AddMonths(y, m, -1)
			assert.Equal(t, 2025, y)
			assert.Equal(t, month, m)
		}
	})
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, 1))
	assert.Equal(t, 28, DaysInMonth(2025, 2))
	assert.Equal(t, 29, DaysInMonth(2024, 2)) // leap year
	assert.Equal(t, 28, DaysInMonth(2100, 2)) // century, not leap
	assert.Equal(t, 29, DaysInMonth(2000, 2)) // 400-year rule
	assert.Equal(t, 30, DaysInMonth(2025, 4))
}

func TestLeadingBlanks(t *testing.T) {
	// 2025-08-01 is a Friday
	assert.Equal(t, 5, LeadingBlanks(2025, 8))
	// 2025-06-01 is a Sunday
	assert.Equal(t, 0, LeadingBlanks(2025, 6))
	// 2025-09-01 is a Monday
	assert.Equal(t, 1, LeadingBlanks(2025, 9))
}

func TestMonthView(t *testing.T) {
	tagID := "tag-1"
	eventRepo := &fakeEventRepo{events: []*models.Event{
		{ID: "e1", Title: "Fireworks", Date: "2025-08-15", LocationTagID: &tagID},
		{ID: "e2", Title: "Market", Date: "2025-08-15"},
		{ID: "e3", Title: "Parade", Date: "2025-08-15"},
		{ID: "e4", Title: "Concert", Date: "2025-08-20"},
		{ID: "e5", Title: "Outside", Date: "2025-09-01"},
	}}
	tagRepo := &fakeTagRepo{tags: []*models.LocationTag{
		{ID: tagID, Name: "中央区", Color: "#3B82F6"},
	}}
	flow := NewCalendarFlow(eventRepo, tagRepo, &fakeMetadataRepo{})
	ctx := context.Background()

	t.Run("GridShape", func(t *testing.T) {
		view, err := flow.MonthView(ctx, 2025, 8, []string{AllLocations}, "", "")
		require.NoError(t, err)
		assert.Equal(t, 2025, view.Year)
		assert.Equal(t, 8, view.Month)
		// 5 leading blanks + 31 days, no trailing padding
		require.Len(t, view.Cells, 36)
		for i := 0; i < 5; i++ {
			assert.True(t, view.Cells[i].Blank)
		}
		assert.False(t, view.Cells[5].Blank)
		assert.Equal(t, 1, view.Cells[5].Day)
		assert.Equal(t, 31, view.Cells[35].Day)
	})

	t.Run("BadgeOverflow", func(t *testing.T) {
		view, err := flow.MonthView(ctx, 2025, 8, []string{AllLocations}, "", "")
		require.NoError(t, err)
		// Aug 15 is cell index 5+14
		cell := view.Cells[19]
		assert.Equal(t, 15, cell.Day)
		assert.Len(t, cell.Badges, 2)
		assert.Equal(t, 1, cell.MoreCount)
	})

	t.Run("TagColorResolved", func(t *testing.T) {
		view, err := flow.MonthView(ctx, 2025, 8, []string{AllLocations}, "", "")
		require.NoError(t, err)
		cell := view.Cells[19]
		require.NotNil(t, cell.Badges[0].TagColor)
		assert.Equal(t, "#3B82F6", *cell.Badges[0].TagColor)
		assert.Nil(t, cell.Badges[1].TagColor)
	})

	t.Run("OutOfMonthEventsExcluded", func(t *testing.T) {
		view, err := flow.MonthView(ctx, 2025, 8, []string{AllLocations}, "", "")
		require.NoError(t, err)
		assert.Equal(t, 4, view.TotalEvents)
	})

	t.Run("SelectionApplied", func(t *testing.T) {
		view, err := flow.MonthView(ctx, 2025, 8, []string{tagID}, "", "")
		require.NoError(t, err)
		assert.Equal(t, 1, view.TotalEvents)
	})

	t.Run("TodayAndSelectedMarked", func(t *testing.T) {
		view, err := flow.MonthView(ctx, 2025, 8, []string{AllLocations}, "2025-08-15", "2025-08-20")
		require.NoError(t, err)

		assert.True(t, view.Cells[19].IsToday)
		assert.False(t, view.Cells[19].IsSelected)
		assert.True(t, view.Cells[24].IsSelected)
		assert.False(t, view.Cells[24].IsToday)
	})

	t.Run("InvalidMonthRejected", func(t *testing.T) {
		_, err := flow.MonthView(ctx, 2025, 13, []string{AllLocations}, "", "")
		assert.True(t, IsInvalidMonth(err))

		_, err = flow.MonthView(ctx, 2025, 0, []string{AllLocations}, "", "")
		assert.True(t, IsInvalidMonth(err))
	})
}

func TestEventsOn(t *testing.T) {
	tagID := "tag-1"
	events := []*models.Event{
		{ID: "e1", Title: "Fireworks", Date: "2025-08-15", LocationTagID: &tagID},
		{ID: "e2", Title: "Market", Date: "2025-08-15"},
		{ID: "e3", Title: "Concert", Date: "2025-08-20"},
	}

	t.Run("ExactDateMatch", func(t *testing.T) {
		got := EventsOn(events, []string{AllLocations}, "2025-08-15")
		assert.Len(t, got, 2)
	})

	t.Run("SelectionApplied", func(t *testing.T) {
		got := EventsOn(events, []string{tagID}, "2025-08-15")
		require.Len(t, got, 1)
		assert.Equal(t, "e1", got[0].ID)
	})

	t.Run("NoMatch", func(t *testing.T) {
		got := EventsOn(events, []string{AllLocations}, "2025-08-16")
		assert.Empty(t, got)
	})
}
