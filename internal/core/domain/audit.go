package domain

import "time"

// AuthEventKind labels an entry in the auth audit trail.
type AuthEventKind string

const (
	AuthEventRegister AuthEventKind = "register"
	AuthEventLogin    AuthEventKind = "login"
	AuthEventRefresh  AuthEventKind = "refresh"
	AuthEventLogout   AuthEventKind = "logout"
)

// AuthEvent records a single credential-lifecycle action for auditing.
type AuthEvent struct {
	AccountID string
	Kind      AuthEventKind
	Timestamp time.Time
	RemoteIP  string // optional
}
