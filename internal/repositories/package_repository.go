package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gym_crm_backend/internal/models"

	"github.com/lib/pq"
)

// PackageRepository defines the interface for membership package operations.
type PackageRepository interface {
	CreatePackage(executor SQLExecutor, pkg *models.Package) (int64, error)
	GetPackageByID(id int64) (*models.Package, error)
	// GetPackageByName resolves a package by its (denormalized) name
	// reference, as stored on customers.
	GetPackageByName(name string) (*models.Package, error)
	// GetPackages returns all packages, newest first.
	GetPackages() ([]models.Package, error)
	UpdatePackage(executor SQLExecutor, pkg *models.Package) error
	DeletePackage(executor SQLExecutor, id int64) error
}

type packageRepository struct {
	db *sql.DB
}

// NewPackageRepository creates a new instance of PackageRepository.
func NewPackageRepository(db *sql.DB) PackageRepository {
	return &packageRepository{db: db}
}

// CreatePackage inserts a new package into the database.
func (r *packageRepository) CreatePackage(executor SQLExecutor, pkg *models.Package) (int64, error) {
	query := `INSERT INTO packages (name, duration_days, price, sessions, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	currentTime := time.Now()
	err := executor.QueryRow(query,
		pkg.Name, pkg.DurationDays, pkg.Price, pkg.Sessions, currentTime, currentTime,
	).Scan(&pkg.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: package name '%s' already exists (constraint: %s)", ErrDuplicateKey, pkg.Name, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating package: %v", ErrDatabaseError, err)
	}
	pkg.CreatedAt = currentTime
	pkg.UpdatedAt = currentTime
	return pkg.ID, nil
}

// GetPackageByID retrieves a package by its ID.
func (r *packageRepository) GetPackageByID(id int64) (*models.Package, error) {
	pkg := &models.Package{}
	query := `SELECT id, name, duration_days, price, sessions, created_at, updated_at
	          FROM packages WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&pkg.ID, &pkg.Name, &pkg.DurationDays, &pkg.Price, &pkg.Sessions, &pkg.CreatedAt, &pkg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting package by ID %d: %v", ErrDatabaseError, id, err)
	}
	return pkg, nil
}

// GetPackageByName retrieves a package by its name.
func (r *packageRepository) GetPackageByName(name string) (*models.Package, error) {
	pkg := &models.Package{}
	query := `SELECT id, name, duration_days, price, sessions, created_at, updated_at
	          FROM packages WHERE name = $1`
	err := r.db.QueryRow(query, name).Scan(
		&pkg.ID, &pkg.Name, &pkg.DurationDays, &pkg.Price, &pkg.Sessions, &pkg.CreatedAt, &pkg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting package by name %s: %v", ErrDatabaseError, name, err)
	}
	return pkg, nil
}

// GetPackages retrieves all packages, newest first.
func (r *packageRepository) GetPackages() ([]models.Package, error) {
	packages := []models.Package{}
	query := `SELECT id, name, duration_days, price, sessions, created_at, updated_at
	          FROM packages ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying packages: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var pkg models.Package
		if err := rows.Scan(&pkg.ID, &pkg.Name, &pkg.DurationDays, &pkg.Price, &pkg.Sessions, &pkg.CreatedAt, &pkg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning package: %v", ErrDatabaseError, err)
		}
		packages = append(packages, pkg)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating package rows: %v", ErrDatabaseError, err)
	}
	return packages, nil
}

// UpdatePackage updates an existing package. Customers referencing the
// package keep their snapshots; nothing cascades.
func (r *packageRepository) UpdatePackage(executor SQLExecutor, pkg *models.Package) error {
	query := `UPDATE packages SET name = $1, duration_days = $2, price = $3, sessions = $4, updated_at = $5
	          WHERE id = $6`

	pkg.UpdatedAt = time.Now()
	result, err := executor.Exec(query, pkg.Name, pkg.DurationDays, pkg.Price, pkg.Sessions, pkg.UpdatedAt, pkg.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: package name '%s' already exists (constraint: %s)", ErrDuplicateKey, pkg.Name, pqErr.Constraint)
		}
		return fmt.Errorf("%w: updating package ID %d: %v", ErrDatabaseError, pkg.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating package ID %d: %v", ErrDatabaseError, pkg.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePackage removes a package.
func (r *packageRepository) DeletePackage(executor SQLExecutor, id int64) error {
	query := `DELETE FROM packages WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting package ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting package ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
