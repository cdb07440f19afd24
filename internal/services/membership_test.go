package services

import (
	"testing"
	"time"

	"gym_crm_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

// Shared test helpers.

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestClassifyStatus(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		endDate      *time.Time
		wantStatus   MembershipStatus
		wantDaysLeft int
	}{
		{"nil end date is unknown", nil, StatusUnknown, 0},
		{"ended yesterday is expired", timePtr(date(2024, time.March, 14)), StatusExpired, -1},
		{"ends today is expiring", timePtr(date(2024, time.March, 15)), StatusExpiring, 0},
		{"ends at threshold is expiring", timePtr(date(2024, time.March, 22)), StatusExpiring, 7},
		{"ends past threshold is active", timePtr(date(2024, time.March, 23)), StatusActive, 8},
		{"ends far out is active", timePtr(date(2024, time.June, 1)), StatusActive, 78},
		{"long expired", timePtr(date(2023, time.December, 31)), StatusExpired, -75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ClassifyStatus(tt.endDate, ref, 7)
			assert.Equal(t, tt.wantStatus, info.Status)
			assert.Equal(t, tt.wantDaysLeft, info.DaysLeft)
		})
	}
}

func TestClassifyStatus_TimeOfDayIrrelevant(t *testing.T) {
	// Classification is a function of calendar days only. An end date late
	// today must classify identically whether checked at 00:01 or 23:59.
	end := time.Date(2024, time.March, 15, 23, 0, 0, 0, time.UTC)

	morning := time.Date(2024, time.March, 15, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2024, time.March, 15, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, ClassifyStatus(&end, morning, 7), ClassifyStatus(&end, evening, 7))
	assert.Equal(t, StatusExpiring, ClassifyStatus(&end, evening, 7).Status)
}

func TestClassifyStatus_CustomThreshold(t *testing.T) {
	ref := date(2024, time.March, 1)
	end := timePtr(date(2024, time.March, 6)) // 5 days out

	assert.Equal(t, StatusExpiring, ClassifyStatus(end, ref, 5).Status)
	assert.Equal(t, StatusActive, ClassifyStatus(end, ref, 3).Status)

	// Non-positive threshold falls back to the default.
	assert.Equal(t, StatusExpiring, ClassifyStatus(end, ref, 0).Status)
}

func TestNextCustomerCode(t *testing.T) {
	tests := []struct {
		name     string
		lastCode string
		want     string
	}{
		{"increments last code", "KH00003", "KH00004"},
		{"empty store starts at one", "", "KH00001"},
		{"unparseable code restarts", "LEGACY-42", "KH00001"},
		{"rolls past padding width", "KH99999", "KH100000"},
		{"preserves zero padding", "KH00019", "KH00020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextCustomerCode(tt.lastCode))
		})
	}
}

func TestApplyPackage(t *testing.T) {
	start := date(2024, time.January, 1)

	t.Run("derives end date, price and sessions from duration", func(t *testing.T) {
		pkg := &models.Package{Name: "Monthly", DurationDays: 30, Price: 500000}
		terms := ApplyPackage(pkg, start)

		assert.Equal(t, date(2024, time.January, 31), terms.EndDate)
		assert.Equal(t, 500000.0, terms.Price)
		assert.Equal(t, 30, terms.RemainingSessions)
	})

	t.Run("explicit session count wins over duration", func(t *testing.T) {
		pkg := &models.Package{Name: "PT Pack", DurationDays: 90, Price: 2000000, Sessions: intPtr(12)}
		terms := ApplyPackage(pkg, start)

		assert.Equal(t, date(2024, time.March, 31), terms.EndDate)
		assert.Equal(t, 12, terms.RemainingSessions)
	})

	t.Run("crosses month boundaries by calendar days", func(t *testing.T) {
		pkg := &models.Package{Name: "Monthly", DurationDays: 30}
		terms := ApplyPackage(pkg, date(2024, time.February, 1))

		// 2024 is a leap year; 30 days from Feb 1 lands on Mar 2.
		assert.Equal(t, date(2024, time.March, 2), terms.EndDate)
	})
}
