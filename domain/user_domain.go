package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessLogout        = "logout successful"
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedLogout        = "failed to logout"
	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Name           string `json:"name" validate:"required,max=255"`
		Email          string `json:"email" validate:"required,email,max=255"`
		Password       string `json:"password" validate:"required,min=8"`
		Role           string `json:"role" validate:"required,oneof=donor receiver admin"`
		Phone          string `json:"phone" validate:"omitempty,max=20"`
		Address        string `json:"address" validate:"omitempty"`
		OrganizationID string `json:"organization_id" validate:"omitempty,uuid"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UpdateProfileRequest struct {
		Name    string `json:"name" validate:"omitempty,max=255"`
		Phone   string `json:"phone" validate:"omitempty,max=20"`
		Address string `json:"address" validate:"omitempty"`
	}

	UserResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Email          string    `json:"email"`
		Role           string    `json:"role"`
		Phone          string    `json:"phone,omitempty"`
		Address        string    `json:"address,omitempty"`
		OrganizationID string    `json:"organization_id,omitempty"`
		Verified       bool      `json:"verified"`
		CreatedAt      time.Time `json:"created_at"`
	}

	AuthResponse struct {
		User        UserResponse `json:"user"`
		AccessToken string       `json:"access_token"`
		TokenType   string       `json:"token_type"`
		ExpiresAt   time.Time    `json:"expires_at"`
	}
)
