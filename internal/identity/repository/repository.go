package repository

import "gallery-backend/internal/identity/domain"

// AccountRepository persists account records.
type AccountRepository interface {
	Create(account *domain.Account) error
	FindByEmail(email string) (*domain.Account, error)
	FindByID(id string) (*domain.Account, error)
	Update(account *domain.Account) error
}
