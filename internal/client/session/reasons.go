package session

// Logout reasons shown to the user
const (
	ReasonSessionClosed        = "Session closed"
	ReasonManualLogout         = "Session closed successfully"
	ReasonNoSession            = "No active session"
	ReasonExpired              = "Your session has expired"
	ReasonExpiredRelogin       = "Your session has expired. Please log in again"
	ReasonExpiredAutomatically = "Your session expired automatically"
	ReasonLoginRequired        = "Please log in to continue"
	ReasonBackupRestored       = "Backup restored. Please log in again"
)

// AuthCheck is the result of a pre-flight session check.
// Reason is empty when Authenticated is true.
type AuthCheck struct {
	Reason        string
	Authenticated bool
}

// LogoutEvent is emitted after the token has been cleared.
// The UI boundary reacts to it instead of the guard navigating itself.
type LogoutEvent struct {
	Reason   string
	LoginURL string
}

// LogoutHandler receives logout events
type LogoutHandler func(LogoutEvent)
