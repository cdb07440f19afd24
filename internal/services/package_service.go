package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
)

// --- Custom Service Errors for Package ---
var (
	ErrPackageNotFound   = errors.New("package not found")
	ErrPackageNameExists = errors.New("package name already exists")
	ErrPackageValidation = errors.New("package data validation error")
)

// --- Package DTOs ---

type CreatePackageRequest struct {
	Name     string  `json:"name" binding:"required"`
	Duration int     `json:"duration" binding:"required"` // days
	Price    float64 `json:"price"`
	Sessions *int    `json:"sessions"` // nil means one session per day
}

type UpdatePackageRequest struct {
	Name     *string  `json:"name"`
	Duration *int     `json:"duration"`
	Price    *float64 `json:"price"`
	Sessions *int     `json:"sessions"`
}

// --- PackageService Interface ---
type PackageService interface {
	CreatePackage(req CreatePackageRequest) (*models.Package, error)
	GetPackageByID(packageID int64) (*models.Package, error)
	GetPackages() ([]models.Package, error)
	UpdatePackage(packageID int64, req UpdatePackageRequest) (*models.Package, error)
	DeletePackage(packageID int64) error
}

// --- packageService Implementation ---
type packageService struct {
	packageRepo repositories.PackageRepository
	db          *sql.DB
}

// NewPackageService creates a new instance of PackageService.
func NewPackageService(packageRepo repositories.PackageRepository, db *sql.DB) PackageService {
	return &packageService{packageRepo: packageRepo, db: db}
}

func (s *packageService) CreatePackage(req CreatePackageRequest) (*models.Package, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrPackageValidation)
	}
	if req.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be a positive number of days", ErrPackageValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrPackageValidation)
	}
	if req.Sessions != nil && *req.Sessions < 0 {
		return nil, fmt.Errorf("%w: sessions cannot be negative", ErrPackageValidation)
	}

	pkg := &models.Package{
		Name:         req.Name,
		DurationDays: req.Duration,
		Price:        req.Price,
		Sessions:     req.Sessions,
	}

	id, err := s.packageRepo.CreatePackage(s.db, pkg)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrPackageNameExists
		}
		return nil, fmt.Errorf("failed to create package in repository: %w", err)
	}
	return s.packageRepo.GetPackageByID(id)
}

func (s *packageService) GetPackageByID(packageID int64) (*models.Package, error) {
	pkg, err := s.packageRepo.GetPackageByID(packageID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to get package by ID: %w", err)
	}
	return pkg, nil
}

func (s *packageService) GetPackages() ([]models.Package, error) {
	packages, err := s.packageRepo.GetPackages()
	if err != nil {
		return nil, fmt.Errorf("failed to get packages: %w", err)
	}
	return packages, nil
}

func (s *packageService) UpdatePackage(packageID int64, req UpdatePackageRequest) (*models.Package, error) {
	pkg, err := s.packageRepo.GetPackageByID(packageID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to find package for update: %w", err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrPackageValidation)
		}
		pkg.Name = *req.Name
	}
	if req.Duration != nil {
		if *req.Duration <= 0 {
			return nil, fmt.Errorf("%w: duration must be a positive number of days", ErrPackageValidation)
		}
		pkg.DurationDays = *req.Duration
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrPackageValidation)
		}
		pkg.Price = *req.Price
	}
	if req.Sessions != nil {
		if *req.Sessions < 0 {
			return nil, fmt.Errorf("%w: sessions cannot be negative", ErrPackageValidation)
		}
		pkg.Sessions = req.Sessions
	}

	// Existing customer snapshots are untouched; new terms apply only to
	// future package selections.
	err = s.packageRepo.UpdatePackage(s.db, pkg)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrPackageNameExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to update package in repository: %w", err)
	}
	return s.packageRepo.GetPackageByID(packageID)
}

func (s *packageService) DeletePackage(packageID int64) error {
	err := s.packageRepo.DeletePackage(s.db, packageID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPackageNotFound
		}
		return fmt.Errorf("failed to delete package: %w", err)
	}
	return nil
}
