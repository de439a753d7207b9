package auth

import "time"

// Role tags the capacity a user acts in. It is used for filtering only.
type Role string

const (
	RoleNurse   Role = "nurse"
	RolePatient Role = "patient"
)

// Known reports whether r is one of the recognized roles.
func (r Role) Known() bool {
	return r == RoleNurse || r == RolePatient
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is what a successful register or login hands back.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
