package services

import (
	"errors"
	"fmt"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for Auth ---
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

// --- Auth DTOs ---

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// --- AuthService Interface ---
type AuthService interface {
	Login(req LoginRequest) (*LoginResponse, error)
	Refresh(req RefreshRequest) (*RefreshResponse, error)
	GetProfile(userID int64) (*models.User, error)
}

type demoAccount struct {
	user         models.User
	passwordHash []byte
}

// authService authenticates against a fixed demo allow-list. Passwords
// are bcrypt-hashed at construction so plain text never sits around past
// startup.
type authService struct {
	accounts []demoAccount
}

// NewAuthService creates the auth service with the built-in demo accounts.
func NewAuthService() (AuthService, error) {
	seed := []struct {
		user     models.User
		password string
	}{
		{models.User{ID: 1, Username: "admin", DisplayName: "Admin", Role: models.UserRoleAdmin, Avatar: "👨‍💼"}, "123"},
		{models.User{ID: 2, Username: "manager", DisplayName: "Quản Lý", Role: models.UserRoleManager, Avatar: "👩‍💼"}, "123"},
		{models.User{ID: 3, Username: "staff", DisplayName: "Nhân Viên", Role: models.UserRoleStaff, Avatar: "🧑‍🔧"}, "123"},
	}

	accounts := make([]demoAccount, 0, len(seed))
	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash demo account password for '%s': %w", s.user.Username, err)
		}
		accounts = append(accounts, demoAccount{user: s.user, passwordHash: hash})
	}
	return &authService{accounts: accounts}, nil
}

func (s *authService) findByUsername(username string) *demoAccount {
	for i := range s.accounts {
		if s.accounts[i].user.Username == username {
			return &s.accounts[i]
		}
	}
	return nil
}

func (s *authService) findByID(userID int64) *demoAccount {
	for i := range s.accounts {
		if s.accounts[i].user.ID == userID {
			return &s.accounts[i]
		}
	}
	return nil
}

func (s *authService) Login(req LoginRequest) (*LoginResponse, error) {
	account := s.findByUsername(req.Username)
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(account.passwordHash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(account.user.ID, account.user.Username, account.user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := utils.GenerateRefreshToken(account.user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         account.user,
	}, nil
}

func (s *authService) Refresh(req RefreshRequest) (*RefreshResponse, error) {
	claims, err := utils.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	account := s.findByID(claims.UserID)
	if account == nil {
		return nil, ErrInvalidToken
	}

	accessToken, err := utils.GenerateAccessToken(account.user.ID, account.user.Username, account.user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &RefreshResponse{AccessToken: accessToken}, nil
}

func (s *authService) GetProfile(userID int64) (*models.User, error) {
	account := s.findByID(userID)
	if account == nil {
		return nil, ErrUserNotFound
	}
	user := account.user
	return &user, nil
}
