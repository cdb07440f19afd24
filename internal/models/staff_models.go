package models

import "time"

// Staff roles.
const (
	StaffRolePT      = "PT"
	StaffRoleStaff   = "Staff"
	StaffRoleManager = "Manager"
)

// StaffMember represents an employee.
// ActiveCustomers is maintained manually, not derived.
type StaffMember struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name" binding:"required"`
	Role            string    `json:"role" db:"role"` // PT, Staff or Manager; defaults to Staff
	Phone           string    `json:"phone" db:"phone" binding:"required"`
	Specialty       *string   `json:"specialty,omitempty" db:"specialty"`
	Shift           *string   `json:"shift,omitempty" db:"shift"`
	ActiveCustomers int       `json:"active_customers" db:"active_customers"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
