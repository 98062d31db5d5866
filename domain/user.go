package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "user"
)

// User is the identity recognized by the client for gated actions
// (checkout, admin panel). There is at most one current user, owned
// by the session service.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
