package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/SscSPs/pos_backend/internal/utils"
)

// authService exchanges employee credentials for signed access tokens.
type authService struct {
	BaseService
	employees   portssvc.EmployeeAuthSvc
	jwtSecret   string
	tokenExpiry time.Duration
	issuer      string
}

// NewAuthService creates a new auth service.
func NewAuthService(employees portssvc.EmployeeAuthSvc, jwtSecret string, tokenExpiry time.Duration, issuer string, options ...ServiceOption) portssvc.AuthSvc {
	return &authService{
		BaseService: newBaseService(options...),
		employees:   employees,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
		issuer:      issuer,
	}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	employee, err := s.employees.AuthenticateEmployee(ctx, req.Phone, req.Pin)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := utils.GenerateJWT(employee.EmployeeID, s.jwtSecret, s.tokenExpiry, s.issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("employee_id", employee.EmployeeID))
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	s.LogInfo(ctx, "Employee signed in", slog.String("employee_id", employee.EmployeeID))
	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Employee:    dto.ToEmployeeResponse(employee),
	}, nil
}
