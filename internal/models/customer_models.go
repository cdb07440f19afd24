package models

import "time"

// Customer represents a gym member.
//
// Membership fields (PackageType, Price, RemainingSessions, EndDate) are
// snapshots taken when a package is assigned. Editing or deleting the
// referenced package later never rewrites them.
type Customer struct {
	ID    int64  `json:"id" db:"id"`
	Code  string `json:"code" db:"code"` // KH##### - unique, immutable after creation
	Name  string `json:"name" db:"name" binding:"required"`
	Phone string `json:"phone" db:"phone" binding:"required"`

	DateOfBirth *time.Time `json:"dob,omitempty" db:"date_of_birth"`
	Gender      *string    `json:"gender,omitempty" db:"gender"`
	Address     *string    `json:"address,omitempty" db:"address"`
	Email       *string    `json:"email,omitempty" db:"email"`
	Avatar      string     `json:"avatar" db:"avatar"`
	HealthNote  *string    `json:"health_note,omitempty" db:"health_note"`

	PackageType       *string    `json:"package_type,omitempty" db:"package_type"` // package name, not a foreign key
	StartDate         *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate           *time.Time `json:"end_date,omitempty" db:"end_date"`
	Price             float64    `json:"price" db:"price"`
	RemainingSessions int        `json:"remaining_sessions" db:"remaining_sessions"`

	Trainer   *string `json:"trainer,omitempty" db:"trainer"`
	HasLocker bool    `json:"has_locker" db:"has_locker"`
	HasWater  bool    `json:"has_water" db:"has_water"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultAvatar is assigned when a customer is created without one.
const DefaultAvatar = "👤"
