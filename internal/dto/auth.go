package dto

import "time"

// LoginRequest is the phone + PIN pair an employee signs in with.
type LoginRequest struct {
	Phone string `json:"phone" binding:"required"`
	Pin   string `json:"pin" binding:"required,len=4,numeric"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	AccessToken string           `json:"accessToken"`
	TokenType   string           `json:"tokenType"`
	ExpiresAt   time.Time        `json:"expiresAt"`
	Employee    EmployeeResponse `json:"employee"`
}
