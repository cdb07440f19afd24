package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
)

// --- Custom Service Errors for Staff ---
var (
	ErrStaffNotFound   = errors.New("staff member not found")
	ErrStaffValidation = errors.New("staff data validation error")
)

// --- Staff DTOs ---

type CreateStaffRequest struct {
	Name            string  `json:"name" binding:"required"`
	Role            string  `json:"role"` // defaults to Staff
	Phone           string  `json:"phone" binding:"required"`
	Specialty       *string `json:"specialty"`
	Shift           *string `json:"shift"`
	ActiveCustomers *int    `json:"active_customers"`
}

type UpdateStaffRequest struct {
	Name            *string `json:"name"`
	Role            *string `json:"role"`
	Phone           *string `json:"phone"`
	Specialty       *string `json:"specialty"`
	Shift           *string `json:"shift"`
	ActiveCustomers *int    `json:"active_customers"`
}

// --- StaffService Interface ---
type StaffService interface {
	CreateStaffMember(req CreateStaffRequest) (*models.StaffMember, error)
	GetStaffMemberByID(staffID int64) (*models.StaffMember, error)
	GetStaffMembers() ([]models.StaffMember, error)
	UpdateStaffMember(staffID int64, req UpdateStaffRequest) (*models.StaffMember, error)
	DeleteStaffMember(staffID int64) error
}

// --- staffService Implementation ---
type staffService struct {
	staffRepo repositories.StaffRepository
	db        *sql.DB
}

// NewStaffService creates a new instance of StaffService.
func NewStaffService(staffRepo repositories.StaffRepository, db *sql.DB) StaffService {
	return &staffService{staffRepo: staffRepo, db: db}
}

func validStaffRole(role string) bool {
	switch role {
	case models.StaffRolePT, models.StaffRoleStaff, models.StaffRoleManager:
		return true
	}
	return false
}

func (s *staffService) CreateStaffMember(req CreateStaffRequest) (*models.StaffMember, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrStaffValidation)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, fmt.Errorf("%w: phone cannot be empty", ErrStaffValidation)
	}
	role := req.Role
	if role == "" {
		role = models.StaffRoleStaff
	}
	if !validStaffRole(role) {
		return nil, fmt.Errorf("%w: role must be one of %s, %s, %s",
			ErrStaffValidation, models.StaffRolePT, models.StaffRoleStaff, models.StaffRoleManager)
	}

	staff := &models.StaffMember{
		Name:      req.Name,
		Role:      role,
		Phone:     req.Phone,
		Specialty: req.Specialty,
		Shift:     req.Shift,
	}
	if req.ActiveCustomers != nil {
		staff.ActiveCustomers = *req.ActiveCustomers
	}

	id, err := s.staffRepo.CreateStaffMember(s.db, staff)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff member in repository: %w", err)
	}
	return s.staffRepo.GetStaffMemberByID(id)
}

func (s *staffService) GetStaffMemberByID(staffID int64) (*models.StaffMember, error) {
	staff, err := s.staffRepo.GetStaffMemberByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member by ID: %w", err)
	}
	return staff, nil
}

func (s *staffService) GetStaffMembers() ([]models.StaffMember, error) {
	staffList, err := s.staffRepo.GetStaffMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to get staff members: %w", err)
	}
	return staffList, nil
}

func (s *staffService) UpdateStaffMember(staffID int64, req UpdateStaffRequest) (*models.StaffMember, error) {
	staff, err := s.staffRepo.GetStaffMemberByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to find staff member for update: %w", err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrStaffValidation)
		}
		staff.Name = *req.Name
	}
	if req.Role != nil {
		if !validStaffRole(*req.Role) {
			return nil, fmt.Errorf("%w: role must be one of %s, %s, %s",
				ErrStaffValidation, models.StaffRolePT, models.StaffRoleStaff, models.StaffRoleManager)
		}
		staff.Role = *req.Role
	}
	if req.Phone != nil {
		if strings.TrimSpace(*req.Phone) == "" {
			return nil, fmt.Errorf("%w: phone cannot be empty", ErrStaffValidation)
		}
		staff.Phone = *req.Phone
	}
	if req.Specialty != nil {
		staff.Specialty = req.Specialty
	}
	if req.Shift != nil {
		staff.Shift = req.Shift
	}
	if req.ActiveCustomers != nil {
		staff.ActiveCustomers = *req.ActiveCustomers
	}

	err = s.staffRepo.UpdateStaffMember(s.db, staff)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to update staff member in repository: %w", err)
	}
	return s.staffRepo.GetStaffMemberByID(staffID)
}

func (s *staffService) DeleteStaffMember(staffID int64) error {
	err := s.staffRepo.DeleteStaffMember(s.db, staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	return nil
}
