package usecase

import (
	"net/mail"
	"strings"
	"unicode"

	"gallery-backend/internal/identity/domain"
	"gallery-backend/internal/identity/dto"
	"gallery-backend/internal/identity/repository"
	"gallery-backend/pkg/apperrors"
	"gallery-backend/pkg/token"
)

// identityUsecase implements IdentityUsecase.
type identityUsecase struct {
	accountRepo repository.AccountRepository
	tokens      *token.Service
}

func NewIdentityUsecase(accountRepo repository.AccountRepository, tokens *token.Service) IdentityUsecase {
	return &identityUsecase{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

func (u *identityUsecase) Signup(req *dto.SignupRequest) (*dto.SignupResponse, error) {
	email := normalizeEmail(req.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.E(apperrors.ErrValidation, "invalid email address")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.E(apperrors.ErrValidation, "name is required")
	}
	if err := checkPasswordPolicy(req.Password); err != nil {
		return nil, err
	}

	existing, err := u.accountRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.E(apperrors.ErrValidation, "email already registered")
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Email:    email,
		Name:     req.Name,
		Password: hashed,
	}
	if err := u.accountRepo.Create(account); err != nil {
		return nil, err
	}

	return &dto.SignupResponse{
		Message: "user registered",
		UserID:  account.ID,
	}, nil
}

func (u *identityUsecase) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := u.accountRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperrors.E(apperrors.ErrNotFound, "user not found")
	}

	if !repository.CheckPasswordHash(req.Password, account.Password) {
		return nil, apperrors.E(apperrors.ErrAuth, "incorrect password")
	}

	tok, err := u.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message:   "login successful",
		Token:     tok,
		ExpiresIn: u.tokens.Lifetime().Milliseconds(),
		UserID:    account.ID,
	}, nil
}

func (u *identityUsecase) GetProfile(accountID string) (*dto.ProfileResponse, error) {
	account, err := u.accountRepo.FindByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperrors.E(apperrors.ErrNotFound, "user not found")
	}

	return &dto.ProfileResponse{
		Name:  account.Name,
		Email: account.Email,
	}, nil
}

func (u *identityUsecase) UpdateProfile(accountID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.E(apperrors.ErrValidation, "name is required")
	}

	account, err := u.accountRepo.FindByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apperrors.E(apperrors.ErrNotFound, "user not found")
	}

	account.Name = req.Name
	if err := u.accountRepo.Update(account); err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		Name:    account.Name,
		Email:   account.Email,
		Message: "user updated",
	}, nil
}

func (u *identityUsecase) UpdatePassword(accountID string, req *dto.UpdatePasswordRequest) error {
	account, err := u.accountRepo.FindByID(accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return apperrors.E(apperrors.ErrNotFound, "user not found")
	}

	if !repository.CheckPasswordHash(req.OldPassword, account.Password) {
		return apperrors.E(apperrors.ErrAuth, "incorrect password")
	}

	if err := checkPasswordPolicy(req.Password); err != nil {
		return err
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return err
	}

	account.Password = hashed
	return u.accountRepo.Update(account)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// checkPasswordPolicy enforces: at least 8 characters, one digit, one of
// !@#$%^&*, one lowercase and one uppercase letter.
func checkPasswordPolicy(password string) error {
	if len(password) < 8 {
		return apperrors.E(apperrors.ErrValidation, "password must be at least 8 characters")
	}

	var hasDigit, hasSpecial, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune("!@#$%^&*", r):
			hasSpecial = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	if !hasDigit || !hasSpecial || !hasLower || !hasUpper {
		return apperrors.E(apperrors.ErrValidation, "password must contain a digit, a special character, a lowercase and an uppercase letter")
	}
	return nil
}
