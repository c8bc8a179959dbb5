package domain

import "time"

type User struct {
	ID                   string
	Email                string
	DisplayName          string
	PasswordHash         string
	DailyGoalMinutes     int
	PreferredSessionType SessionType
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Name returns the display name, falling back to the email address.
func (u *User) Name() string {
	return CoalesceStr(u.DisplayName, u.Email)
}
