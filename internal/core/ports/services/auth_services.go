package services

import (
	"context"

	"github.com/SscSPs/pos_backend/internal/dto"
)

// AuthSvc signs employees in and issues access tokens.
type AuthSvc interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}
