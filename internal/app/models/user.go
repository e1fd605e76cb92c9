package models

// Role gates which operations a session may perform.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	// Any other stored role value is treated as the default student role.
	RoleStudent Role = "student"
)

// User defines the user model based on the 'users' table
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"` // hashed, excluded from JSON
	Role     Role   `json:"role" db:"role"`
}
