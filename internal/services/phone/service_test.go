package phone

import (
	"context"
	"testing"

	domainErrors "chargeflow/internal/errors"
	"chargeflow/internal/models"
	"chargeflow/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreatePhoneNumber(ctx context.Context, phone *models.PhoneNumber) error {
	return m.Called(ctx, phone).Error(0)
}

func (m *MockRepository) ListPhoneNumbersByUser(ctx context.Context, userID uint) ([]models.PhoneNumber, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).([]models.PhoneNumber)
	return p, args.Error(1)
}

func TestService_Create(t *testing.T) {
	email := "seller@example.com"
	owner := &models.User{ID: 4, Email: &email}

	tests := []struct {
		name      string
		number    string
		userEmail string
		setupMock func(*MockRepository)
		wantCode  int
	}{
		{name: "other user's email", number: "+989121234567", userEmail: "other@example.com", wantCode: domainErrors.NotAllowed.Code},
		{name: "malformed number", number: "12-34", wantCode: domainErrors.InvalidPhoneNumber.Code},
		{
			name:   "duplicate",
			number: "+989121234567",
			setupMock: func(repo *MockRepository) {
				repo.On("CreatePhoneNumber", mock.Anything, mock.Anything).Return(repositories.ErrDuplicatePhoneNumber)
			},
			wantCode: domainErrors.PhoneNumberAlreadyExists.Code,
		},
		{
			name:      "own email matches case insensitively",
			number:    " +989121234567 ",
			userEmail: "Seller@Example.com",
			setupMock: func(repo *MockRepository) {
				repo.On("CreatePhoneNumber", mock.Anything, mock.MatchedBy(func(p *models.PhoneNumber) bool {
					return p.PhoneNumber == "+989121234567" && p.UserID == 4 && p.Balance.IsZero()
				})).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			s := NewService(repo)

			phone, err := s.Create(context.Background(), owner, tt.number, tt.userEmail)
			if tt.wantCode != 0 {
				de, ok := domainErrors.As(err)
				require.True(t, ok, "expected domain error, got %v", err)
				assert.Equal(t, tt.wantCode, de.Code)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "+989121234567", phone.PhoneNumber)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_List(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListPhoneNumbersByUser", mock.Anything, uint(4)).Return([]models.PhoneNumber{{ID: 1}, {ID: 2}}, nil)

	phones, err := NewService(repo).List(context.Background(), 4)
	require.NoError(t, err)
	assert.Len(t, phones, 2)
}
