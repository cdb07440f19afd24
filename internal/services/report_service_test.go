package services

import (
	"testing"
	"time"

	"gym_crm_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateRange_Presets(t *testing.T) {
	// Wednesday afternoon.
	now := time.Date(2024, time.March, 13, 15, 45, 0, 0, time.UTC)

	tests := []struct {
		name      string
		period    string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"empty defaults to today", "", date(2024, time.March, 13), endOfDay(date(2024, time.March, 13))},
		{"today", PeriodToday, date(2024, time.March, 13), endOfDay(date(2024, time.March, 13))},
		{"yesterday", PeriodYesterday, date(2024, time.March, 12), endOfDay(date(2024, time.March, 12))},
		{"this week starts Monday", PeriodThisWeek, date(2024, time.March, 11), endOfDay(date(2024, time.March, 13))},
		{"this month", PeriodThisMonth, date(2024, time.March, 1), endOfDay(date(2024, time.March, 13))},
		{"last month covers whole month", PeriodLastMonth, date(2024, time.February, 1), endOfDay(date(2024, time.February, 29))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ResolveDateRange(tt.period, "", "", now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestResolveDateRange_WeekStartsOnMondayFromSunday(t *testing.T) {
	// On a Sunday, "this week" must reach back to the previous Monday.
	sunday := time.Date(2024, time.March, 17, 10, 0, 0, 0, time.UTC)

	start, end, err := ResolveDateRange(PeriodThisWeek, "", "", sunday)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 11), start)
	assert.Equal(t, endOfDay(date(2024, time.March, 17)), end)
}

func TestResolveDateRange_Custom(t *testing.T) {
	now := time.Date(2024, time.March, 13, 15, 45, 0, 0, time.UTC)

	start, end, err := ResolveDateRange(PeriodCustom, "2024-01-15", "2024-02-10", now)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 15), start)
	assert.Equal(t, endOfDay(date(2024, time.February, 10)), end)

	_, _, err = ResolveDateRange(PeriodCustom, "", "2024-02-10", now)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, _, err = ResolveDateRange(PeriodCustom, "2024-02-10", "2024-01-15", now)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, _, err = ResolveDateRange(PeriodCustom, "15/01/2024", "2024-02-10", now)
	assert.ErrorIs(t, err, ErrDateFormat)
}

func TestResolveDateRange_UnknownPeriod(t *testing.T) {
	_, _, err := ResolveDateRange("fortnight", "", "", time.Now())
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func newReportServiceForTest(rate float64) (ReportService, *fakeCheckInRepo, *fakeCustomerRepo) {
	checkInRepo := newFakeCheckInRepo()
	customerRepo := newFakeCustomerRepo()
	svc := NewReportService(checkInRepo, customerRepo, DefaultExpiringThresholdDays, rate)
	return svc, checkInRepo, customerRepo
}

func addCheckInAt(t *testing.T, repo *fakeCheckInRepo, name string, at time.Time) {
	t.Helper()
	_, err := repo.CreateCheckIn(nil, &models.CheckIn{
		CustomerID: 1, CustomerName: name, CustomerCode: "KH00001", Time: at,
	})
	require.NoError(t, err)
}

func TestGetSummary(t *testing.T) {
	svc, checkInRepo, customerRepo := newReportServiceForTest(25000)

	now := time.Now()
	seedCustomer(t, customerRepo, models.Customer{Code: "KH00001", Name: "Active", Phone: "1", EndDate: timePtr(now.AddDate(0, 2, 0))})
	seedCustomer(t, customerRepo, models.Customer{Code: "KH00002", Name: "Expiring", Phone: "2", EndDate: timePtr(now.AddDate(0, 0, 3))})
	seedCustomer(t, customerRepo, models.Customer{Code: "KH00003", Name: "Expired", Phone: "3", EndDate: timePtr(now.AddDate(0, 0, -5))})
	seedCustomer(t, customerRepo, models.Customer{Code: "KH00004", Name: "NoEnd", Phone: "4"})

	noon := atMidnight(now).Add(12 * time.Hour)
	for i := 0; i < 10; i++ {
		addCheckInAt(t, checkInRepo, "Active", noon.Add(time.Duration(i)*time.Minute))
	}
	// Outside today's range, must not count.
	addCheckInAt(t, checkInRepo, "Active", noon.AddDate(0, 0, -2))

	report, err := svc.GetSummary(models.ReportRequestParams{Period: PeriodToday})
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalCustomers)
	assert.Equal(t, 1, report.ActiveCustomers)
	assert.Equal(t, 1, report.ExpiringCustomers)
	assert.Equal(t, 10, report.CheckInCount)
	assert.Equal(t, 250000.0, report.EstimatedRevenue)
}

func TestGetPeakHours(t *testing.T) {
	svc, checkInRepo, _ := newReportServiceForTest(25000)

	today := atMidnight(time.Now())
	at := func(hour, n int) {
		for i := 0; i < n; i++ {
			addCheckInAt(t, checkInRepo, "Visitor", today.Add(time.Duration(hour)*time.Hour+time.Duration(i)*time.Minute))
		}
	}
	at(7, 2)
	at(18, 5)
	at(21, 5)
	at(3, 9) // before opening, excluded from the window

	buckets, err := svc.GetPeakHours(models.ReportRequestParams{Period: PeriodToday})
	require.NoError(t, err)
	require.Len(t, buckets, PeakWindowEndHour-PeakWindowStartHour+1)

	byHour := make(map[int]models.HourBucket, len(buckets))
	for _, b := range buckets {
		byHour[b.Hour] = b
	}

	assert.Equal(t, PeakWindowStartHour, buckets[0].Hour)
	assert.Equal(t, PeakWindowEndHour, buckets[len(buckets)-1].Hour)

	assert.Equal(t, 2, byHour[7].Count)
	assert.False(t, byHour[7].IsPeak)
	assert.Equal(t, 5, byHour[18].Count)
	assert.True(t, byHour[18].IsPeak)
	assert.True(t, byHour[21].IsPeak)

	_, hasThree := byHour[3]
	assert.False(t, hasThree)
}

func TestGetPeakHours_EmptyRangeHasNoPeak(t *testing.T) {
	svc, _, _ := newReportServiceForTest(25000)

	buckets, err := svc.GetPeakHours(models.ReportRequestParams{Period: PeriodToday})
	require.NoError(t, err)
	for _, b := range buckets {
		assert.Zero(t, b.Count)
		assert.False(t, b.IsPeak)
	}
}

func TestGetTopCustomers(t *testing.T) {
	svc, checkInRepo, _ := newReportServiceForTest(25000)

	noon := atMidnight(time.Now()).Add(12 * time.Hour)
	visits := map[string]int{
		"Alice": 6, "Bob": 4, "Carol": 4, "Dave": 3, "Erin": 2, "Frank": 1, "Grace": 1,
	}
	for name, n := range visits {
		for i := 0; i < n; i++ {
			addCheckInAt(t, checkInRepo, name, noon.Add(time.Duration(i)*time.Minute))
		}
	}

	top, err := svc.GetTopCustomers(models.ReportRequestParams{Period: PeriodToday})
	require.NoError(t, err)
	require.Len(t, top, DefaultTopCustomersLimit)

	assert.Equal(t, models.TopCustomer{CustomerName: "Alice", CheckInCount: 6}, top[0])
	// Equal counts break ties by name for a stable order.
	assert.Equal(t, "Bob", top[1].CustomerName)
	assert.Equal(t, "Carol", top[2].CustomerName)
	assert.Equal(t, "Dave", top[3].CustomerName)
	assert.Equal(t, "Erin", top[4].CustomerName)
}

func TestGetTopCustomers_CustomLimit(t *testing.T) {
	svc, checkInRepo, _ := newReportServiceForTest(25000)

	noon := atMidnight(time.Now()).Add(12 * time.Hour)
	addCheckInAt(t, checkInRepo, "Alice", noon)
	addCheckInAt(t, checkInRepo, "Bob", noon)

	top, err := svc.GetTopCustomers(models.ReportRequestParams{Period: PeriodToday, Limit: 1})
	require.NoError(t, err)
	require.Len(t, top, 1)
}
