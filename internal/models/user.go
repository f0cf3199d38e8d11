package models

// UserDB represents a user record in the database
type UserDB struct {
	ID       int64  `json:"id" db:"id"`             // Primary key, assigned by the store
	Username string `json:"username" db:"username"` // Display name
	Email    string `json:"email" db:"email"`       // Unique email
}
