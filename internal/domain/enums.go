package domain

import "strings"

// SessionType classifies a learning session.
type SessionType string

const (
	SessionRegular SessionType = "regular"
	SessionCatchup SessionType = "catchup"
	SessionDrill   SessionType = "drill"
)

// DefaultSessionType is used whenever a session type is missing or unrecognized.
const DefaultSessionType = SessionRegular

// SessionTypes lists the accepted session types in display order.
var SessionTypes = []SessionType{SessionRegular, SessionDrill, SessionCatchup}

// ParseSessionType matches s case-insensitively against the known session types.
func ParseSessionType(s string) (SessionType, bool) {
	candidate := SessionType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range SessionTypes {
		if t == candidate {
			return t, true
		}
	}
	return "", false
}

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)
