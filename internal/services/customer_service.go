package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
)

// --- Custom Service Errors for Customer ---
var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCodeExists         = errors.New("customer code already exists")
	ErrCustomerValidation = errors.New("customer data validation error")
	ErrDateFormat         = errors.New("invalid date format, please use YYYY-MM-DD")
)

const dateLayout = "2006-01-02"

// --- Customer DTOs ---

type CreateCustomerRequest struct {
	Code  string `json:"code"` // empty or "auto" requests an auto-assigned code
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`

	DateOfBirth *string `json:"dob"` // YYYY-MM-DD
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
	Email       *string `json:"email"`
	Avatar      *string `json:"avatar"`
	HealthNote  *string `json:"health_note"`

	PackageType *string  `json:"package_type"`
	StartDate   *string  `json:"start_date"` // YYYY-MM-DD, defaults to today
	EndDate     *string  `json:"end_date"`   // YYYY-MM-DD, derived from the package when absent
	Price       *float64 `json:"price"`
	Sessions    *int     `json:"remaining_sessions"`

	Trainer   *string `json:"trainer"`
	HasLocker *bool   `json:"has_locker"`
	HasWater  *bool   `json:"has_water"`
}

type UpdateCustomerRequest struct {
	// Code is accepted in payloads for caller convenience but always
	// ignored: customer codes are immutable.
	Code *string `json:"code"`

	Name  *string `json:"name"`
	Phone *string `json:"phone"`

	DateOfBirth *string `json:"dob"`
	Gender      *string `json:"gender"`
	Address     *string `json:"address"`
	Email       *string `json:"email"`
	Avatar      *string `json:"avatar"`
	HealthNote  *string `json:"health_note"`

	PackageType *string  `json:"package_type"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Price       *float64 `json:"price"`
	Sessions    *int     `json:"remaining_sessions"`

	Trainer   *string `json:"trainer"`
	HasLocker *bool   `json:"has_locker"`
	HasWater  *bool   `json:"has_water"`
}

// --- CustomerService Interface ---
type CustomerService interface {
	CreateCustomer(req CreateCustomerRequest) (*models.Customer, error)
	GetCustomerByID(customerID int64) (*models.Customer, error)
	GetCustomers() ([]models.Customer, error)
	UpdateCustomer(customerID int64, req UpdateCustomerRequest) (*models.Customer, error)
	DeleteCustomer(customerID int64) error
}

// --- customerService Implementation ---
type customerService struct {
	customerRepo repositories.CustomerRepository
	packageRepo  repositories.PackageRepository
	db           *sql.DB
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(customerRepo repositories.CustomerRepository, packageRepo repositories.PackageRepository, db *sql.DB) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		packageRepo:  packageRepo,
		db:           db,
	}
}

func parseDate(dateStr *string) (*time.Time, error) {
	if dateStr == nil || strings.TrimSpace(*dateStr) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *dateStr)
	if err != nil {
		return nil, ErrDateFormat
	}
	return &t, nil
}

func (s *customerService) CreateCustomer(req CreateCustomerRequest) (*models.Customer, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrCustomerValidation)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, fmt.Errorf("%w: phone cannot be empty", ErrCustomerValidation)
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if startDate == nil {
		today := time.Now()
		startDate = &today
	}

	code, err := s.resolveCode(req.Code)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Code:        code,
		Name:        req.Name,
		Phone:       req.Phone,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Address:     req.Address,
		Email:       req.Email,
		HealthNote:  req.HealthNote,
		PackageType: req.PackageType,
		StartDate:   startDate,
		EndDate:     endDate,
		Trainer:     req.Trainer,
	}
	if req.Avatar != nil && *req.Avatar != "" {
		customer.Avatar = *req.Avatar
	}
	if req.Price != nil {
		customer.Price = *req.Price
	}
	if req.Sessions != nil {
		customer.RemainingSessions = *req.Sessions
	}
	if req.HasLocker != nil {
		customer.HasLocker = *req.HasLocker
	}
	if req.HasWater != nil {
		customer.HasWater = *req.HasWater
	}

	if err := s.resolveMembership(customer, req.EndDate != nil, req.Price != nil, req.Sessions != nil); err != nil {
		return nil, err
	}

	id, err := s.customerRepo.CreateCustomer(s.db, customer)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			// The unique index catches the loser of the generate/commit race.
			return nil, ErrCodeExists
		}
		return nil, fmt.Errorf("failed to create customer in repository: %w", err)
	}
	return s.customerRepo.GetCustomerByID(id)
}

// resolveCode produces the customer code for a create request: an explicit
// code is taken as-is, otherwise the next sequential code is derived from
// the most-recently-created customer. Either way uniqueness is re-checked
// against the store, since generation and commit are not atomic.
func (s *customerService) resolveCode(requested string) (string, error) {
	code := strings.TrimSpace(requested)
	if code == "" || strings.EqualFold(code, CodePlaceholder) {
		latest, err := s.customerRepo.GetLatestCustomer()
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return "", fmt.Errorf("failed to determine next customer code: %w", err)
		}
		lastCode := ""
		if latest != nil {
			lastCode = latest.Code
		}
		code = NextCustomerCode(lastCode)
	}

	existing, err := s.customerRepo.GetCustomerByCode(code)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return "", fmt.Errorf("failed to check customer code uniqueness: %w", err)
	}
	if existing != nil {
		return "", ErrCodeExists
	}
	return code, nil
}

// resolveMembership fills the membership snapshot fields from the selected
// package when they were not supplied explicitly. With no package selected
// it is a no-op.
func (s *customerService) resolveMembership(customer *models.Customer, hasEndDate, hasPrice, hasSessions bool) error {
	if customer.PackageType == nil || strings.TrimSpace(*customer.PackageType) == "" {
		return nil
	}

	pkg, err := s.packageRepo.GetPackageByName(*customer.PackageType)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			if hasEndDate {
				// Historical name reference; the snapshot already carries
				// the derived fields.
				return nil
			}
			return fmt.Errorf("%w: package '%s' not found, cannot derive membership dates", ErrPackageNotFound, *customer.PackageType)
		}
		return fmt.Errorf("failed to resolve package '%s': %w", *customer.PackageType, err)
	}

	terms := ApplyPackage(pkg, *customer.StartDate)
	if !hasEndDate {
		customer.EndDate = &terms.EndDate
	}
	if !hasPrice {
		customer.Price = terms.Price
	}
	if !hasSessions {
		customer.RemainingSessions = terms.RemainingSessions
	}
	return nil
}

func (s *customerService) GetCustomerByID(customerID int64) (*models.Customer, error) {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}
	return customer, nil
}

func (s *customerService) GetCustomers() ([]models.Customer, error) {
	customers, err := s.customerRepo.GetCustomers()
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(customerID int64, req UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer for update: %w", err)
	}

	// req.Code is deliberately ignored: codes never change.

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrCustomerValidation)
		}
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		if strings.TrimSpace(*req.Phone) == "" {
			return nil, fmt.Errorf("%w: phone cannot be empty", ErrCustomerValidation)
		}
		customer.Phone = *req.Phone
	}
	if req.DateOfBirth != nil {
		dob, parseErr := parseDate(req.DateOfBirth)
		if parseErr != nil {
			return nil, parseErr
		}
		customer.DateOfBirth = dob
	}
	if req.Gender != nil {
		customer.Gender = req.Gender
	}
	if req.Address != nil {
		customer.Address = req.Address
	}
	if req.Email != nil {
		customer.Email = req.Email
	}
	if req.Avatar != nil && *req.Avatar != "" {
		customer.Avatar = *req.Avatar
	}
	if req.HealthNote != nil {
		customer.HealthNote = req.HealthNote
	}
	if req.Trainer != nil {
		customer.Trainer = req.Trainer
	}
	if req.HasLocker != nil {
		customer.HasLocker = *req.HasLocker
	}
	if req.HasWater != nil {
		customer.HasWater = *req.HasWater
	}

	packageChanged := false
	if req.PackageType != nil {
		if customer.PackageType == nil || *customer.PackageType != *req.PackageType {
			packageChanged = true
		}
		customer.PackageType = req.PackageType
	}

	startChanged := false
	if req.StartDate != nil {
		startDate, parseErr := parseDate(req.StartDate)
		if parseErr != nil {
			return nil, parseErr
		}
		if startDate != nil {
			if customer.StartDate == nil || !customer.StartDate.Equal(*startDate) {
				startChanged = true
			}
			customer.StartDate = startDate
		}
	}

	if req.EndDate != nil {
		endDate, parseErr := parseDate(req.EndDate)
		if parseErr != nil {
			return nil, parseErr
		}
		customer.EndDate = endDate
	} else if err := s.recomputeOnChange(customer, packageChanged, startChanged, req.Price != nil, req.Sessions != nil); err != nil {
		return nil, err
	}

	if req.Price != nil {
		customer.Price = *req.Price
	}
	if req.Sessions != nil {
		customer.RemainingSessions = *req.Sessions
	}

	err = s.customerRepo.UpdateCustomer(s.db, customer)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to update customer in repository: %w", err)
	}
	return s.customerRepo.GetCustomerByID(customerID)
}

// recomputeOnChange re-runs package resolution after an update changed the
// selection. A fresh package selection re-derives the full snapshot; a
// start-date change alone recomputes the end date from the currently
// selected package and leaves price and sessions untouched.
func (s *customerService) recomputeOnChange(customer *models.Customer, packageChanged, startChanged, hasPrice, hasSessions bool) error {
	if customer.PackageType == nil || strings.TrimSpace(*customer.PackageType) == "" || customer.StartDate == nil {
		return nil
	}
	if !packageChanged && !startChanged {
		return nil
	}

	pkg, err := s.packageRepo.GetPackageByName(*customer.PackageType)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			if packageChanged {
				return fmt.Errorf("%w: package '%s' not found, cannot derive membership dates", ErrPackageNotFound, *customer.PackageType)
			}
			// Stale name reference after a package deletion; the existing
			// snapshot stays as-is.
			return nil
		}
		return fmt.Errorf("failed to resolve package '%s': %w", *customer.PackageType, err)
	}

	terms := ApplyPackage(pkg, *customer.StartDate)
	customer.EndDate = &terms.EndDate
	if packageChanged {
		if !hasPrice {
			customer.Price = terms.Price
		}
		if !hasSessions {
			customer.RemainingSessions = terms.RemainingSessions
		}
	}
	return nil
}

func (s *customerService) DeleteCustomer(customerID int64) error {
	_, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to find customer for deletion: %w", err)
	}

	err = s.customerRepo.DeleteCustomer(s.db, customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
