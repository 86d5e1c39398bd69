package dto

// EventBadge is a compact event reference shown inside a day cell
type EventBadge struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	TagColor *string `json:"tagColor"`
}

// DayCell is one cell of the month grid. Blank cells pad the first week so
// day 1 lands on its weekday column; they carry no date and no events.
type DayCell struct {
	Blank      bool         `json:"blank"`
	Day        int          `json:"day,omitempty"`
	Date       string       `json:"date,omitempty"`
	IsToday    bool         `json:"isToday,omitempty"`
	IsSelected bool         `json:"isSelected,omitempty"`
	Badges     []EventBadge `json:"badges,omitempty"`
	MoreCount  int          `json:"moreCount,omitempty"`
}

// MonthViewResponse represents the rendered month grid
type MonthViewResponse struct {
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Cells       []DayCell `json:"cells"`
	TotalEvents int       `json:"totalEvents"`
}

// LastUpdatedResponse carries the calendar-wide last content change timestamp
type LastUpdatedResponse struct {
	LastUpdated *string `json:"lastUpdated"`
}
