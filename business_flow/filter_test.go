package businessflow

import (
	"testing"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
	"github.com/stretchr/testify/assert"
)

func TestApplyToggle(t *testing.T) {
	t.Run("CheckingAllClearsSpecificTags", func(t *testing.T) {
		got := ApplyToggle([]string{"tag-1", "tag-2"}, AllLocations, true)
		assert.Equal(t, []string{AllLocations}, got)
	})

	t.Run("UncheckingAllStaysAll", func(t *testing.T) {
		got := ApplyToggle([]string{AllLocations}, AllLocations, false)
		assert.Equal(t, []string{AllLocations}, got)
	})

	t.Run("CheckingTagLeavesAllMode", func(t *testing.T) {
		got := ApplyToggle([]string{AllLocations}, "tag-1", true)
		assert.Equal(t, []string{"tag-1"}, got)
	})

	t.Run("CheckThenUncheckRestoresAll", func(t *testing.T) {
		got := ApplyToggle([]string{AllLocations}, "tag-1", true)
		got = ApplyToggle(got, "tag-1", false)
		assert.Equal(t, []string{AllLocations}, got)
	})

	t.Run("CheckingSecondTagAppends", func(t *testing.T) {
		got := ApplyToggle([]string{"tag-1"}, "tag-2", true)
		assert.Equal(t, []string{"tag-1", "tag-2"}, got)
	})

	t.Run("CheckingPresentTagIsNoOp", func(t *testing.T) {
		got := ApplyToggle([]string{"tag-1", "tag-2"}, "tag-1", true)
		assert.Equal(t, []string{"tag-1", "tag-2"}, got)
	})

	t.Run("UncheckingOneOfTwoKeepsOther", func(t *testing.T) {
		got := ApplyToggle([]string{"tag-1", "tag-2"}, "tag-1", false)
		assert.Equal(t, []string{"tag-2"}, got)
	})

	t.Run("UncheckingAbsentTagIsNoOp", func(t *testing.T) {
		got := ApplyToggle([]string{"tag-1"}, "tag-2", false)
		assert.Equal(t, []string{"tag-1"}, got)
	})

	t.Run("UncheckingLastTagCollapsesToAll", func(t *testing.T) {
		got := ApplyToggle([]string{"tag-1"}, "tag-1", false)
		assert.Equal(t, []string{AllLocations}, got)
	})

	t.Run("NeverEmpty", func(t *testing.T) {
		selections := [][]string{
			{},
			{AllLocations},
			{"tag-1"},
			{"tag-1", "tag-2", "tag-3"},
		}
		toggles := []string{AllLocations, "tag-1", "tag-2", "tag-9"}
		for _, sel := range selections {
			for _, tg := range toggles {
				for _, checked := range []bool{true, false} {
					got := ApplyToggle(sel, tg, checked)
					assert.NotEmpty(t, got)
				}
			}
		}
	})
}

func TestNormalizeSelection(t *testing.T) {
	assert.Equal(t, []string{AllLocations}, NormalizeSelection(nil))
	assert.Equal(t, []string{AllLocations}, NormalizeSelection([]string{}))
	assert.Equal(t, []string{AllLocations}, NormalizeSelection([]string{"tag-1", AllLocations}))
	assert.Equal(t, []string{"tag-1", "tag-2"}, NormalizeSelection([]string{"tag-1", "tag-2", "tag-1"}))
}

func TestFilterEvents(t *testing.T) {
	tag1 := "tag-1"
	tag2 := "tag-2"
	events := []*models.Event{
		{ID: "e1", Title: "Fireworks", Date: "2025-08-15", LocationTagID: &tag1},
		{ID: "e2", Title: "Market", Date: "2025-08-15"},
		{ID: "e3", Title: "Parade", Date: "2025-08-16", LocationTagID: &tag2},
		{ID: "e4", Title: "Concert", Date: "2025-08-17", LocationTagID: &tag1},
	}

	t.Run("AllPassesEverything", func(t *testing.T) {
		got := FilterEvents(events, []string{AllLocations})
		assert.Len(t, got, 4)
	})

	t.Run("SpecificTagMatchesOnlyTagged", func(t *testing.T) {
		got := FilterEvents(events, []string{tag1})
		assert.Len(t, got, 2)
		assert.Equal(t, "e1", got[0].ID)
		assert.Equal(t, "e4", got[1].ID)
	})

	t.Run("UntaggedNeverMatchesSpecificSelection", func(t *testing.T) {
		got := FilterEvents(events, []string{tag1, tag2})
		for _, ev := range got {
			assert.NotNil(t, ev.LocationTagID)
		}
	})

	t.Run("OrderPreserved", func(t *testing.T) {
		got := FilterEvents(events, []string{tag1, tag2})
		assert.Equal(t, []string{"e1", "e3", "e4"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("DanglingTagExcluded", func(t *testing.T) {
		dangling := utils.ToPtr("deleted-tag")
		evs := []*models.Event{{ID: "e9", Title: "Ghost", Date: "2025-09-01", LocationTagID: dangling}}
		got := FilterEvents(evs, []string{tag1})
		assert.Empty(t, got)
	})
}
