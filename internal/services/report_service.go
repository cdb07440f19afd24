package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
)

// --- Custom Service Errors for Reports ---
var (
	ErrInvalidPeriod = errors.New("invalid report period")
	ErrInvalidRange  = errors.New("invalid date range")
)

// Report period presets.
const (
	PeriodToday     = "today"
	PeriodYesterday = "yesterday"
	PeriodThisWeek  = "this_week"
	PeriodThisMonth = "this_month"
	PeriodLastMonth = "last_month"
	PeriodCustom    = "custom"
)

// Attendance histogram display window, inclusive hours.
const (
	PeakWindowStartHour = 6
	PeakWindowEndHour   = 22
)

// DefaultTopCustomersLimit bounds the leaderboard when no limit is given.
const DefaultTopCustomersLimit = 5

// --- ReportService Interface ---
type ReportService interface {
	GetSummary(params models.ReportRequestParams) (*models.SummaryReport, error)
	GetPeakHours(params models.ReportRequestParams) ([]models.HourBucket, error)
	GetTopCustomers(params models.ReportRequestParams) ([]models.TopCustomer, error)
}

// --- reportService Implementation ---
type reportService struct {
	checkInRepo  repositories.CheckInRepository
	customerRepo repositories.CustomerRepository
	expiringDays int
	revenueRate  float64
}

// NewReportService creates a new instance of ReportService. revenueRate is
// the flat per-visit amount used for revenue estimation.
func NewReportService(checkInRepo repositories.CheckInRepository, customerRepo repositories.CustomerRepository, expiringDays int, revenueRate float64) ReportService {
	return &reportService{
		checkInRepo:  checkInRepo,
		customerRepo: customerRepo,
		expiringDays: expiringDays,
		revenueRate:  revenueRate,
	}
}

// ResolveDateRange turns a period preset (or a custom start/end pair) into
// an inclusive [start of day, end of day] interval. Weeks start on Monday.
// An empty period means today.
func ResolveDateRange(period, startStr, endStr string, now time.Time) (time.Time, time.Time, error) {
	today := atMidnight(now)

	switch period {
	case "", PeriodToday:
		return today, endOfDay(today), nil
	case PeriodYesterday:
		yesterday := today.AddDate(0, 0, -1)
		return yesterday, endOfDay(yesterday), nil
	case PeriodThisWeek:
		offset := (int(today.Weekday()) + 6) % 7 // Monday-based
		monday := today.AddDate(0, 0, -offset)
		return monday, endOfDay(today), nil
	case PeriodThisMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return first, endOfDay(today), nil
	case PeriodLastMonth:
		firstOfThis := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		first := firstOfThis.AddDate(0, -1, 0)
		last := firstOfThis.AddDate(0, 0, -1)
		return first, endOfDay(last), nil
	case PeriodCustom:
		if startStr == "" || endStr == "" {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: custom period requires start_date and end_date", ErrInvalidRange)
		}
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return time.Time{}, time.Time{}, ErrDateFormat
		}
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return time.Time{}, time.Time{}, ErrDateFormat
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date precedes start_date", ErrInvalidRange)
		}
		return atMidnight(start), endOfDay(end), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: '%s'", ErrInvalidPeriod, period)
	}
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// GetSummary combines membership counts (evaluated as of now, independent
// of the range) with check-in volume and estimated revenue for the range.
func (s *reportService) GetSummary(params models.ReportRequestParams) (*models.SummaryReport, error) {
	start, end, err := ResolveDateRange(params.Period, params.StartDate, params.EndDate, time.Now())
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.GetCustomers()
	if err != nil {
		return nil, fmt.Errorf("failed to load customers for summary: %w", err)
	}

	report := &models.SummaryReport{
		TotalCustomers: len(customers),
		RangeStart:     start,
		RangeEnd:       end,
	}
	now := time.Now()
	for i := range customers {
		info := ClassifyStatus(customers[i].EndDate, now, s.expiringDays)
		switch info.Status {
		case StatusActive:
			report.ActiveCustomers++
		case StatusExpiring:
			report.ExpiringCustomers++
		}
	}

	checkIns, err := s.checkInRepo.GetCheckInsBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-ins for summary: %w", err)
	}
	report.CheckInCount = len(checkIns)
	report.EstimatedRevenue = float64(report.CheckInCount) * s.revenueRate
	return report, nil
}

// GetPeakHours buckets the range's check-ins by hour of day and returns
// the opening-hours window with the busiest hours flagged.
func (s *reportService) GetPeakHours(params models.ReportRequestParams) ([]models.HourBucket, error) {
	start, end, err := ResolveDateRange(params.Period, params.StartDate, params.EndDate, time.Now())
	if err != nil {
		return nil, err
	}

	checkIns, err := s.checkInRepo.GetCheckInsBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-ins for peak hours: %w", err)
	}

	var counts [24]int
	for i := range checkIns {
		counts[checkIns[i].Time.Hour()]++
	}

	maxCount := 0
	for hour := PeakWindowStartHour; hour <= PeakWindowEndHour; hour++ {
		if counts[hour] > maxCount {
			maxCount = counts[hour]
		}
	}

	buckets := make([]models.HourBucket, 0, PeakWindowEndHour-PeakWindowStartHour+1)
	for hour := PeakWindowStartHour; hour <= PeakWindowEndHour; hour++ {
		buckets = append(buckets, models.HourBucket{
			Hour:   hour,
			Count:  counts[hour],
			IsPeak: maxCount > 0 && counts[hour] == maxCount,
		})
	}
	return buckets, nil
}

// GetTopCustomers ranks customers by check-in count within the range,
// grouped by the name snapshot carried on each record.
func (s *reportService) GetTopCustomers(params models.ReportRequestParams) ([]models.TopCustomer, error) {
	start, end, err := ResolveDateRange(params.Period, params.StartDate, params.EndDate, time.Now())
	if err != nil {
		return nil, err
	}

	checkIns, err := s.checkInRepo.GetCheckInsBetween(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-ins for top customers: %w", err)
	}

	counts := make(map[string]int)
	for i := range checkIns {
		counts[checkIns[i].CustomerName]++
	}

	top := make([]models.TopCustomer, 0, len(counts))
	for name, count := range counts {
		top = append(top, models.TopCustomer{CustomerName: name, CheckInCount: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].CheckInCount != top[j].CheckInCount {
			return top[i].CheckInCount > top[j].CheckInCount
		}
		return top[i].CustomerName < top[j].CustomerName
	})

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultTopCustomersLimit
	}
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}
