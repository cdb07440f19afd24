package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_crm_backend/internal/models"

	"github.com/lib/pq"
)

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	CreateCustomer(executor SQLExecutor, customer *models.Customer) (int64, error)
	GetCustomerByID(id int64) (*models.Customer, error)
	GetCustomerByCode(code string) (*models.Customer, error)
	// GetLatestCustomer returns the most-recently-created customer, or
	// ErrNotFound when the table is empty. Used for code generation.
	GetLatestCustomer() (*models.Customer, error)
	// GetCustomers returns all customers, newest first.
	GetCustomers() ([]models.Customer, error)
	UpdateCustomer(executor SQLExecutor, customer *models.Customer) error
	DeleteCustomer(executor SQLExecutor, id int64) error
}

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new instance of CustomerRepository.
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, code, name, phone, date_of_birth, gender, address, email, avatar, health_note,
	package_type, start_date, end_date, price, remaining_sessions,
	trainer, has_locker, has_water, created_at, updated_at`

// CreateCustomer inserts a new customer into the database.
func (r *customerRepository) CreateCustomer(executor SQLExecutor, customer *models.Customer) (int64, error) {
	query := `INSERT INTO customers (code, name, phone, date_of_birth, gender, address, email, avatar, health_note,
	            package_type, start_date, end_date, price, remaining_sessions,
	            trainer, has_locker, has_water, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	          RETURNING id`

	currentTime := time.Now()
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = currentTime
	}
	if customer.UpdatedAt.IsZero() {
		customer.UpdatedAt = currentTime
	}
	if customer.Avatar == "" {
		customer.Avatar = models.DefaultAvatar
	}

	err := executor.QueryRow(query,
		customer.Code, customer.Name, customer.Phone,
		nullTime(customer.DateOfBirth), customer.Gender, customer.Address, customer.Email,
		customer.Avatar, customer.HealthNote,
		customer.PackageType, nullTime(customer.StartDate), nullTime(customer.EndDate),
		customer.Price, customer.RemainingSessions,
		customer.Trainer, customer.HasLocker, customer.HasWater,
		customer.CreatedAt, customer.UpdatedAt,
	).Scan(&customer.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return 0, fmt.Errorf("%w: creating customer: %v", ErrDatabaseError, err)
	}
	return customer.ID, nil
}

// GetCustomerByID retrieves a customer by their ID.
func (r *customerRepository) GetCustomerByID(id int64) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	customer, err := scanCustomer(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting customer by ID %d: %v", ErrDatabaseError, id, err)
	}
	return customer, nil
}

// GetCustomerByCode retrieves a customer by their human-readable code.
func (r *customerRepository) GetCustomerByCode(code string) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE code = $1`
	customer, err := scanCustomer(r.db.QueryRow(query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting customer by code %s: %v", ErrDatabaseError, code, err)
	}
	return customer, nil
}

// GetLatestCustomer retrieves the most-recently-created customer.
func (r *customerRepository) GetLatestCustomer() (*models.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC, id DESC LIMIT 1`
	customer, err := scanCustomer(r.db.QueryRow(query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting latest customer: %v", ErrDatabaseError, err)
	}
	return customer, nil
}

// GetCustomers retrieves all customers, newest first.
func (r *customerRepository) GetCustomers() ([]models.Customer, error) {
	customers := []models.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying customers: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning customer: %v", ErrDatabaseError, err)
		}
		customers = append(customers, *customer)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating customer rows: %v", ErrDatabaseError, err)
	}
	return customers, nil
}

// UpdateCustomer updates an existing customer. The code column is never
// touched; codes are immutable after creation.
func (r *customerRepository) UpdateCustomer(executor SQLExecutor, customer *models.Customer) error {
	query := `UPDATE customers SET
	            name = $1, phone = $2, date_of_birth = $3, gender = $4, address = $5, email = $6,
	            avatar = $7, health_note = $8, package_type = $9, start_date = $10, end_date = $11,
	            price = $12, remaining_sessions = $13, trainer = $14, has_locker = $15, has_water = $16,
	            updated_at = $17
	          WHERE id = $18`

	customer.UpdatedAt = time.Now()
	result, err := executor.Exec(query,
		customer.Name, customer.Phone,
		nullTime(customer.DateOfBirth), customer.Gender, customer.Address, customer.Email,
		customer.Avatar, customer.HealthNote,
		customer.PackageType, nullTime(customer.StartDate), nullTime(customer.EndDate),
		customer.Price, customer.RemainingSessions,
		customer.Trainer, customer.HasLocker, customer.HasWater,
		customer.UpdatedAt, customer.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return fmt.Errorf("%w: updating customer ID %d: %v", ErrDatabaseError, customer.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating customer ID %d: %v", ErrDatabaseError, customer.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCustomer removes a customer. Check-in history keeps its own
// denormalized snapshot, so no cascade is needed.
func (r *customerRepository) DeleteCustomer(executor SQLExecutor, id int64) error {
	query := `DELETE FROM customers WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting customer ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting customer ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomer(row rowScanner) (*models.Customer, error) {
	customer := &models.Customer{}
	var dob, startDate, endDate sql.NullTime
	err := row.Scan(
		&customer.ID, &customer.Code, &customer.Name, &customer.Phone,
		&dob, &customer.Gender, &customer.Address, &customer.Email,
		&customer.Avatar, &customer.HealthNote,
		&customer.PackageType, &startDate, &endDate,
		&customer.Price, &customer.RemainingSessions,
		&customer.Trainer, &customer.HasLocker, &customer.HasWater,
		&customer.CreatedAt, &customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dob.Valid {
		customer.DateOfBirth = &dob.Time
	}
	if startDate.Valid {
		customer.StartDate = &startDate.Time
	}
	if endDate.Valid {
		customer.EndDate = &endDate.Time
	}
	return customer, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t != nil && !t.IsZero() {
		return sql.NullTime{Time: *t, Valid: true}
	}
	return sql.NullTime{}
}
