package businessflow

import (
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
)

// AllLocations is the sentinel selection meaning "no location filtering".
// It is mutually exclusive with specific tag IDs: selecting it clears every
// specific tag, and selecting a specific tag removes it.
const AllLocations = "all"

// ApplyToggle returns the selection after one checkbox change: checked
// inserts the target, unchecked removes it. Unchecking a tag that is not
// selected leaves the selection as it was. The result is never empty:
// removing the last specific tag collapses the selection back to
// AllLocations, as does any toggle of AllLocations itself. This is the
// reducer behind the calendar's tag checkboxes; it lives next to
// FilterEvents so both sides of the API agree on the selection invariants.
func ApplyToggle(selection []string, target string, checked bool) []string {
	if target == AllLocations {
		return []string{AllLocations}
	}

	present := false
	next := make([]string, 0, len(selection)+1)
	for _, id := range selection {
		if id == AllLocations {
			continue
		}
		if id == target {
			present = true
			if !checked {
				continue
			}
		}
		next = append(next, id)
	}

	if checked && !present {
		next = append(next, target)
	}
	if len(next) == 0 {
		return []string{AllLocations}
	}
	return next
}

// NormalizeSelection repairs a selection that violates the reducer invariants:
// an empty selection or one containing AllLocations collapses to just
// AllLocations, duplicates are dropped, order is preserved otherwise.
func NormalizeSelection(selection []string) []string {
	if len(selection) == 0 {
		return []string{AllLocations}
	}

	seen := make(map[string]bool, len(selection))
	next := make([]string, 0, len(selection))
	for _, id := range selection {
		if id == AllLocations {
			return []string{AllLocations}
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		next = append(next, id)
	}

	if len(next) == 0 {
		return []string{AllLocations}
	}
	return next
}

// FilterEvents returns the events visible under the given selection,
// preserving input order. With AllLocations selected every event passes,
// tagged or not; otherwise an event passes only when its tag ID is selected.
// Untagged events never match a specific selection.
func FilterEvents(events []*models.Event, selection []string) []*models.Event {
	selection = NormalizeSelection(selection)
	if selection[0] == AllLocations {
		return events
	}

	selected := make(map[string]bool, len(selection))
	for _, id := range selection {
		selected[id] = true
	}

	visible := make([]*models.Event, 0, len(events))
	for _, ev := range events {
		if ev.LocationTagID != nil && selected[*ev.LocationTagID] {
			visible = append(visible, ev)
		}
	}
	return visible
}
