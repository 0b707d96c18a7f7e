package constants

const (
	AppName           = "punchlog"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/punchlog/config.json"
	DefaultCachePath  = "~/.config/punchlog/cache"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// TagDelimiter joins the tag list into the single spreadsheet cell.
	// Tags containing the delimiter are not escaped; the upstream sheet
	// format has always been delimiter-joined and stays that way.
	TagDelimiter = ";"

	// RecentActivitiesCap bounds the cached most-recent-first activity list.
	RecentActivitiesCap = 10

	// PrioritizationNA is recorded when the Personal scope makes the
	// prioritization field optional and it was left empty.
	PrioritizationNA = "N/A"

	// Cache keys. Each is an independent value in the key-value cache.
	CacheKeySavedTags        = "savedTags"
	CacheKeyRecentActivities = "recentActivities"
	CacheKeyLastClockOut     = "lastClockOut"

	// Keyring identifiers for the stored OAuth token.
	KeyringService = "punchlog"
	KeyringUser    = "sheets-oauth-token"

	// SaveFailedPrefix prefixes the surfaced reason when the remote append
	// step rejects an entry.
	SaveFailedPrefix = "Failed to save to spreadsheet: "
)
