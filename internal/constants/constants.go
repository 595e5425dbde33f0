package constants

const (
	// AppName is used for config paths, the keyring service name and the
	// logger prefix.
	AppName = "prashikshan"

	// DefaultKeyringUser is the keyring account the refresh token is
	// stored under.
	DefaultKeyringUser = "refresh-token"

	// DraftsStorageKey is the namespace the draft collection is persisted
	// under. Kept identical to the mobile client so a future shared
	// backend migration stays trivial.
	DraftsStorageKey = "prashikshan-logbook-drafts"

	// SessionStorageKey is the namespace for the persisted auth session.
	SessionStorageKey = "prashikshan-auth"
)

const (
	// DateFormat is the calendar date layout used for entry dates.
	DateFormat = "2006-01-02"
)
