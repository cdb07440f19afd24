package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"gym_crm_backend/internal/models"
)

// CheckInRepository defines the interface for the append-only check-in log.
// Records are never updated or deleted through normal flow.
type CheckInRepository interface {
	CreateCheckIn(executor SQLExecutor, checkIn *models.CheckIn) (int64, error)
	// GetCheckIns returns up to limit records, newest first.
	GetCheckIns(limit int) ([]models.CheckIn, error)
	// GetCheckInsBetween returns records whose time falls within the
	// inclusive [start, end] interval, newest first.
	GetCheckInsBetween(start, end time.Time) ([]models.CheckIn, error)
}

type checkInRepository struct {
	db *sql.DB
}

// NewCheckInRepository creates a new instance of CheckInRepository.
func NewCheckInRepository(db *sql.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

// CreateCheckIn appends a new check-in record.
func (r *checkInRepository) CreateCheckIn(executor SQLExecutor, checkIn *models.CheckIn) (int64, error) {
	query := `INSERT INTO checkins (customer_id, customer_name, customer_code, package_type, checkin_time, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	currentTime := time.Now()
	if checkIn.Time.IsZero() {
		checkIn.Time = currentTime
	}
	if checkIn.CreatedAt.IsZero() {
		checkIn.CreatedAt = currentTime
	}

	err := executor.QueryRow(query,
		checkIn.CustomerID, checkIn.CustomerName, checkIn.CustomerCode,
		checkIn.PackageType, checkIn.Time, checkIn.CreatedAt,
	).Scan(&checkIn.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating check-in: %v", ErrDatabaseError, err)
	}
	return checkIn.ID, nil
}

// GetCheckIns retrieves up to limit check-ins, newest first.
func (r *checkInRepository) GetCheckIns(limit int) ([]models.CheckIn, error) {
	query := `SELECT id, customer_id, customer_name, customer_code, package_type, checkin_time, created_at
	          FROM checkins ORDER BY checkin_time DESC, id DESC LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying check-ins: %v", ErrDatabaseError, err)
	}
	defer rows.Close()
	return scanCheckIns(rows)
}

// GetCheckInsBetween retrieves check-ins within the inclusive interval.
func (r *checkInRepository) GetCheckInsBetween(start, end time.Time) ([]models.CheckIn, error) {
	query := `SELECT id, customer_id, customer_name, customer_code, package_type, checkin_time, created_at
	          FROM checkins WHERE checkin_time BETWEEN $1 AND $2
	          ORDER BY checkin_time DESC, id DESC`

	rows, err := r.db.Query(query, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: querying check-ins in range: %v", ErrDatabaseError, err)
	}
	defer rows.Close()
	return scanCheckIns(rows)
}

func scanCheckIns(rows *sql.Rows) ([]models.CheckIn, error) {
	checkIns := []models.CheckIn{}
	for rows.Next() {
		var checkIn models.CheckIn
		if err := rows.Scan(
			&checkIn.ID, &checkIn.CustomerID, &checkIn.CustomerName, &checkIn.CustomerCode,
			&checkIn.PackageType, &checkIn.Time, &checkIn.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning check-in: %v", ErrDatabaseError, err)
		}
		checkIns = append(checkIns, checkIn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating check-in rows: %v", ErrDatabaseError, err)
	}
	return checkIns, nil
}
