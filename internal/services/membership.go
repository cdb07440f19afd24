package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gym_crm_backend/internal/models"
)

// MembershipStatus classifies a customer's membership relative to a
// reference date.
type MembershipStatus string

const (
	StatusActive   MembershipStatus = "active"
	StatusExpiring MembershipStatus = "expiring"
	StatusExpired  MembershipStatus = "expired"
	StatusUnknown  MembershipStatus = "unknown"
)

// StatusInfo is the result of classifying a membership end date.
type StatusInfo struct {
	Status   MembershipStatus `json:"status"`
	Label    string           `json:"label"`
	DaysLeft int              `json:"days_left"`
}

// DefaultExpiringThresholdDays is the fallback "expiring soon" window.
const DefaultExpiringThresholdDays = 7

// CustomerCodePrefix is the literal prefix of every customer code.
const CustomerCodePrefix = "KH"

// CodePlaceholder marks a create request asking for an auto-assigned code.
const CodePlaceholder = "auto"

// ClassifyStatus derives the membership status from an end date.
//
// Both dates are normalized to midnight before differencing, so the result
// is purely a function of calendar days: daysLeft < 0 is expired,
// 0 <= daysLeft <= expiringDays is expiring, anything later is active.
// A nil end date means no expiry constraint and classifies as unknown.
func ClassifyStatus(endDate *time.Time, ref time.Time, expiringDays int) StatusInfo {
	if expiringDays <= 0 {
		expiringDays = DefaultExpiringThresholdDays
	}
	if endDate == nil || endDate.IsZero() {
		return StatusInfo{Status: StatusUnknown, Label: "Unknown", DaysLeft: 0}
	}

	end := atMidnight(*endDate)
	today := atMidnight(ref)
	daysLeft := int(math.Ceil(end.Sub(today).Hours() / 24))

	switch {
	case daysLeft < 0:
		return StatusInfo{Status: StatusExpired, Label: "Expired", DaysLeft: daysLeft}
	case daysLeft <= expiringDays:
		return StatusInfo{Status: StatusExpiring, Label: "Expiring soon", DaysLeft: daysLeft}
	default:
		return StatusInfo{Status: StatusActive, Label: "Active", DaysLeft: daysLeft}
	}
}

// NextCustomerCode derives the next sequential code from the code of the
// most-recently-created customer. An empty or unparseable code counts as
// sequence zero. The result is KH plus a 5-digit zero-padded number.
//
// Generation and commit are not atomic; callers must re-check uniqueness
// against the store before inserting.
func NextCustomerCode(lastCode string) string {
	suffix := strings.TrimPrefix(lastCode, CustomerCodePrefix)
	lastNumber, err := strconv.Atoi(suffix)
	if err != nil || lastNumber < 0 {
		lastNumber = 0
	}
	return fmt.Sprintf("%s%05d", CustomerCodePrefix, lastNumber+1)
}

// MembershipTerms are the customer fields derived from a package selection.
type MembershipTerms struct {
	EndDate           time.Time
	Price             float64
	RemainingSessions int
}

// ApplyPackage computes the membership terms for a package selected at a
// given start date. Price and sessions are snapshots; the package defining
// its own session count takes precedence over the 1-day-=-1-session rule.
func ApplyPackage(pkg *models.Package, startDate time.Time) MembershipTerms {
	sessions := pkg.DurationDays
	if pkg.Sessions != nil {
		sessions = *pkg.Sessions
	}
	return MembershipTerms{
		EndDate:           startDate.AddDate(0, 0, pkg.DurationDays),
		Price:             pkg.Price,
		RemainingSessions: sessions,
	}
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
