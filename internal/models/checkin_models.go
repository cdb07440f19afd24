package models

import "time"

// CheckIn is a timestamped visit record. It is append-only and keeps
// denormalized customer fields captured at check-in time, so the row stays
// meaningful even if the customer is later edited or deleted.
type CheckIn struct {
	ID           int64     `json:"id" db:"id"`
	CustomerID   int64     `json:"customer_id" db:"customer_id"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	CustomerCode string    `json:"customer_code" db:"customer_code"`
	PackageType  *string   `json:"package_type,omitempty" db:"package_type"`
	Time         time.Time `json:"time" db:"checkin_time"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// CheckInListCap is the default maximum number of records returned when
// listing check-ins, newest first.
const CheckInListCap = 100
