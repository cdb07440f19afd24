package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
)

// --- Custom Service Errors for CheckIn ---
var (
	ErrCheckInDenied = errors.New("membership expired")
)

// --- CheckIn DTOs ---

type CreateCheckInRequest struct {
	CustomerID int64 `json:"customer_id" binding:"required"`
}

// --- CheckInService Interface ---
type CheckInService interface {
	// CreateCheckIn records a gym entry for the customer after verifying
	// membership eligibility.
	CreateCheckIn(req CreateCheckInRequest) (*models.CheckIn, error)
	// GetCheckIns returns up to limit recent records; limit is clamped
	// to the list cap, and non-positive values mean the cap.
	GetCheckIns(limit int) ([]models.CheckIn, error)
}

// --- checkInService Implementation ---
type checkInService struct {
	checkInRepo  repositories.CheckInRepository
	customerRepo repositories.CustomerRepository
	expiringDays int
	db           *sql.DB
}

// NewCheckInService creates a new instance of CheckInService.
func NewCheckInService(checkInRepo repositories.CheckInRepository, customerRepo repositories.CustomerRepository, expiringDays int, db *sql.DB) CheckInService {
	return &checkInService{
		checkInRepo:  checkInRepo,
		customerRepo: customerRepo,
		expiringDays: expiringDays,
		db:           db,
	}
}

// CreateCheckIn verifies the customer exists and their membership has not
// expired, then appends a check-in carrying a snapshot of the customer's
// identity fields. Expiring-soon and unknown memberships are still allowed
// through the gate; only a past end date denies entry.
func (s *checkInService) CreateCheckIn(req CreateCheckInRequest) (*models.CheckIn, error) {
	customer, err := s.customerRepo.GetCustomerByID(req.CustomerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to load customer for check-in: %w", err)
	}

	info := ClassifyStatus(customer.EndDate, time.Now(), s.expiringDays)
	if info.Status == StatusExpired {
		return nil, ErrCheckInDenied
	}

	checkIn := &models.CheckIn{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		CustomerCode: customer.Code,
		PackageType:  customer.PackageType,
		Time:         time.Now(),
	}
	if _, err := s.checkInRepo.CreateCheckIn(s.db, checkIn); err != nil {
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}
	return checkIn, nil
}

// GetCheckIns returns the most recent check-ins, newest first, capped so
// the front desk view stays bounded.
func (s *checkInService) GetCheckIns(limit int) ([]models.CheckIn, error) {
	if limit <= 0 || limit > models.CheckInListCap {
		limit = models.CheckInListCap
	}
	checkIns, err := s.checkInRepo.GetCheckIns(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get check-ins: %w", err)
	}
	return checkIns, nil
}
