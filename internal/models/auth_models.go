package models

// User is an authenticated operator of the CRM. Users come from a static
// demo allow-list, not from the database; there is no registration flow.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"` // admin, manager or staff
	Avatar      string `json:"avatar,omitempty"`
}

// User roles.
const (
	UserRoleAdmin   = "admin"
	UserRoleManager = "manager"
	UserRoleStaff   = "staff"
)
