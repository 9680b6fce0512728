package domain

import "time"

// User represents an account holder.
type User struct {
	ID             string
	Username       string
	HashedPassword string
	FirstName      string
	LastName       string
	DateOfBirth    time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
