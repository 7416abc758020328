package model

// Role distinguishes console identities.
// "admin" covers internal staff; "dealer" is a financed dealer's self-service login.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDealer Role = "dealer"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool { return r == RoleAdmin || r == RoleDealer }

// DashboardPath returns the landing route for the role. Unknown roles fall
// back to the login route so a corrupt session can never land on a protected view.
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleDealer:
		return "/dealer/dashboard"
	default:
		return "/login"
	}
}

// User is the signed-in identity carried by a session.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
