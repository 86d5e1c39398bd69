package utils

import (
	"time"
)

// Session constants
const (
	// AdminSessionTTL is the default lifetime of an admin session (24 hours)
	AdminSessionTTL = 24 * time.Hour

	// SessionCookieName carries the opaque session identifier
	SessionCookieName = "odekake_session"

	// AnonymousSessionTTL is the lifetime of a lazily minted visitor session
	// (30 days), long enough to keep interest bookmarks across visits
	AnonymousSessionTTL = 30 * 24 * time.Hour
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Calendar constants
const (
	// MaxBadgesPerDay is the number of event badges shown on a day cell
	// before collapsing the remainder into a "+N more" indicator
	MaxBadgesPerDay = 2

	// ExportStartHour and ExportEndHour bound the placeholder time window
	// used when exporting a dateless event to an external calendar
	ExportStartHour = 9
	ExportEndHour   = 10
)
