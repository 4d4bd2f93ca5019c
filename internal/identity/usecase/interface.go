package usecase

import "gallery-backend/internal/identity/dto"

// IdentityUsecase orchestrates signup, login and profile management.
type IdentityUsecase interface {
	Signup(req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetProfile(accountID string) (*dto.ProfileResponse, error)
	UpdateProfile(accountID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	UpdatePassword(accountID string, req *dto.UpdatePasswordRequest) error
}
