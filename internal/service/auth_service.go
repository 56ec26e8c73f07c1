package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/logger"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"
)

const (
	accessTokenTTL  = 1 * time.Hour
	refreshTokenTTL = 2 * time.Hour
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
	ChangePassword(ctx context.Context, employeeCode, currentPassword, newPassword string) error
}

type authService struct {
	staffRepo  repository.StaffRepository
	tokenKey   string
	refreshKey string
	logger     logger.ILogger
}

func NewAuthService(staffRepo repository.StaffRepository, tokenKey, refreshKey string, log logger.ILogger) IAuthService {
	return &authService{
		staffRepo:  staffRepo,
		tokenKey:   tokenKey,
		refreshKey: refreshKey,
		logger:     log,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	staff, err := s.staffRepo.FindByUserName(ctx, req.UserName)
	if err != nil {
		return nil, apperror.Dependency("failed to look up staff", err)
	}
	if staff == nil || staff.Password == nil {
		return nil, apperror.Validation("invalid username or password")
	}
	if staff.EmploymentStatus != "Active" {
		return nil, apperror.Validation("account is inactive")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*staff.Password), []byte(req.Password)); err != nil {
		return nil, apperror.Validation("invalid username or password")
	}

	accessToken, err := s.signToken(staff.EmployeeCode, staff.RoleID, s.tokenKey, accessTokenTTL)
	if err != nil {
		return nil, apperror.Dependency("failed to sign access token", err)
	}
	refreshToken, err := s.signToken(staff.EmployeeCode, staff.RoleID, s.refreshKey, refreshTokenTTL)
	if err != nil {
		return nil, apperror.Dependency("failed to sign refresh token", err)
	}

	s.logger.Info("AuthService", fmt.Sprintf("Staff %s logged in", staff.EmployeeCode), nil)

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		EmployeeCode: staff.EmployeeCode,
		RoleID:       staff.RoleID,
		FullName:     staff.FullName,
	}, nil
}

// Refresh validates the refresh token against the refresh key and issues a
// fresh access token for the same claims.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.refreshKey), nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Validation("invalid or expired refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperror.Validation("invalid refresh token claims")
	}
	employeeCode, _ := claims["employee_code"].(string)
	roleID, _ := claims["role_id"].(float64)
	if employeeCode == "" {
		return nil, apperror.Validation("invalid refresh token claims")
	}

	staff, err := s.staffRepo.FindByEmployeeCode(ctx, employeeCode)
	if err != nil {
		return nil, apperror.Dependency("failed to look up staff", err)
	}
	if staff == nil || staff.EmploymentStatus != "Active" {
		return nil, apperror.Validation("account is no longer active")
	}

	accessToken, err := s.signToken(employeeCode, int(roleID), s.tokenKey, accessTokenTTL)
	if err != nil {
		return nil, apperror.Dependency("failed to sign access token", err)
	}
	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

func (s *authService) ChangePassword(ctx context.Context, employeeCode, currentPassword, newPassword string) error {
	staff, err := s.staffRepo.FindByEmployeeCode(ctx, employeeCode)
	if err != nil {
		return apperror.Dependency("failed to look up staff", err)
	}
	if staff == nil || staff.Password == nil {
		return apperror.NotFound("Staff not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*staff.Password), []byte(currentPassword)); err != nil {
		return apperror.Validation("current password is incorrect")
	}
	if len(newPassword) < 8 {
		return apperror.Validation("new password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Dependency("failed to hash password", err)
	}

	if _, err := s.staffRepo.UpdateFields(ctx, employeeCode, map[string]interface{}{"Password": string(hash)}); err != nil {
		return apperror.Dependency("failed to update password", err)
	}
	return nil
}

func (s *authService) signToken(employeeCode string, roleID int, key string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"employee_code": employeeCode,
		"role_id":       roleID,
		"exp":           time.Now().Add(ttl).Unix(),
		"iat":           time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(key))
}
