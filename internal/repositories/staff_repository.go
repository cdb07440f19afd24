package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_crm_backend/internal/models"
)

// StaffRepository defines the interface for staff-related database operations.
type StaffRepository interface {
	CreateStaffMember(executor SQLExecutor, staff *models.StaffMember) (int64, error)
	GetStaffMemberByID(id int64) (*models.StaffMember, error)
	// GetStaffMembers returns all staff members, newest first.
	GetStaffMembers() ([]models.StaffMember, error)
	UpdateStaffMember(executor SQLExecutor, staff *models.StaffMember) error
	DeleteStaffMember(executor SQLExecutor, id int64) error
}

type staffRepository struct {
	db *sql.DB
}

// NewStaffRepository creates a new instance of StaffRepository.
func NewStaffRepository(db *sql.DB) StaffRepository {
	return &staffRepository{db: db}
}

// CreateStaffMember inserts a new staff member into the database.
func (r *staffRepository) CreateStaffMember(executor SQLExecutor, staff *models.StaffMember) (int64, error) {
	query := `INSERT INTO staff (name, role, phone, specialty, shift, active_customers, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`

	currentTime := time.Now()
	err := executor.QueryRow(query,
		staff.Name, staff.Role, staff.Phone, staff.Specialty, staff.Shift,
		staff.ActiveCustomers, currentTime, currentTime,
	).Scan(&staff.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating staff member: %v", ErrDatabaseError, err)
	}
	staff.CreatedAt = currentTime
	staff.UpdatedAt = currentTime
	return staff.ID, nil
}

// GetStaffMemberByID retrieves a staff member by their ID.
func (r *staffRepository) GetStaffMemberByID(id int64) (*models.StaffMember, error) {
	staff := &models.StaffMember{}
	query := `SELECT id, name, role, phone, specialty, shift, active_customers, created_at, updated_at
	          FROM staff WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&staff.ID, &staff.Name, &staff.Role, &staff.Phone, &staff.Specialty, &staff.Shift,
		&staff.ActiveCustomers, &staff.CreatedAt, &staff.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting staff member by ID %d: %v", ErrDatabaseError, id, err)
	}
	return staff, nil
}

// GetStaffMembers retrieves all staff members, newest first.
func (r *staffRepository) GetStaffMembers() ([]models.StaffMember, error) {
	staffList := []models.StaffMember{}
	query := `SELECT id, name, role, phone, specialty, shift, active_customers, created_at, updated_at
	          FROM staff ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying staff: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var staff models.StaffMember
		if err := rows.Scan(
			&staff.ID, &staff.Name, &staff.Role, &staff.Phone, &staff.Specialty, &staff.Shift,
			&staff.ActiveCustomers, &staff.CreatedAt, &staff.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning staff member: %v", ErrDatabaseError, err)
		}
		staffList = append(staffList, staff)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating staff rows: %v", ErrDatabaseError, err)
	}
	return staffList, nil
}

// UpdateStaffMember updates an existing staff member.
func (r *staffRepository) UpdateStaffMember(executor SQLExecutor, staff *models.StaffMember) error {
	query := `UPDATE staff SET name = $1, role = $2, phone = $3, specialty = $4, shift = $5,
	            active_customers = $6, updated_at = $7
	          WHERE id = $8`

	staff.UpdatedAt = time.Now()
	result, err := executor.Exec(query,
		staff.Name, staff.Role, staff.Phone, staff.Specialty, staff.Shift,
		staff.ActiveCustomers, staff.UpdatedAt, staff.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating staff member ID %d: %v", ErrDatabaseError, staff.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating staff member ID %d: %v", ErrDatabaseError, staff.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteStaffMember removes a staff member.
func (r *staffRepository) DeleteStaffMember(executor SQLExecutor, id int64) error {
	query := `DELETE FROM staff WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting staff member ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting staff member ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
