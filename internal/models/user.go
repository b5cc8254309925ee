package models

import "time"

// UserProfile is a row of user_profiles. UserID is the identity provider subject.
type UserProfile struct {
	UserID    string    `db:"user_id"`
	FullName  string    `db:"full_name"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
