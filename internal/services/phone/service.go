// Package phone registers the end-customer phone numbers that sellers top
// up.
package phone

import (
	"context"
	"errors"
	"strings"

	domainErrors "chargeflow/internal/errors"
	"chargeflow/internal/models"
	"chargeflow/internal/repositories"
	"chargeflow/internal/utils/validation"

	"github.com/shopspring/decimal"
)

// Repository is the subset of the ledger store used here.
type Repository interface {
	CreatePhoneNumber(ctx context.Context, phone *models.PhoneNumber) error
	ListPhoneNumbersByUser(ctx context.Context, userID uint) ([]models.PhoneNumber, error)
}

type Service interface {
	// Create registers number for owner. When userEmail is given it must be
	// the owner's own address.
	Create(ctx context.Context, owner *models.User, number, userEmail string) (*models.PhoneNumber, error)
	List(ctx context.Context, userID uint) ([]models.PhoneNumber, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	if repo == nil {
		panic("repository is required")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, owner *models.User, number, userEmail string) (*models.PhoneNumber, error) {
	if userEmail != "" && !strings.EqualFold(userEmail, owner.EmailAddress()) {
		return nil, domainErrors.NotAllowed.New()
	}

	number = strings.TrimSpace(number)
	if !validation.IsPhoneNumber(number) {
		return nil, domainErrors.InvalidPhoneNumber.New()
	}

	phone := &models.PhoneNumber{
		PhoneNumber: number,
		UserID:      owner.ID,
		Balance:     decimal.Zero,
	}
	if err := s.repo.CreatePhoneNumber(ctx, phone); err != nil {
		if errors.Is(err, repositories.ErrDuplicatePhoneNumber) {
			return nil, domainErrors.PhoneNumberAlreadyExists.New()
		}
		return nil, err
	}
	return phone, nil
}

func (s *service) List(ctx context.Context, userID uint) ([]models.PhoneNumber, error) {
	return s.repo.ListPhoneNumbersByUser(ctx, userID)
}
