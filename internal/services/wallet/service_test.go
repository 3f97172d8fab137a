package wallet

import (
	"context"
	"errors"
	"testing"

	domainErrors "chargeflow/internal/errors"
	"chargeflow/internal/models"
	"chargeflow/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetWalletByUserID(ctx context.Context, userID uint) (*models.Wallet, error) {
	args := m.Called(ctx, userID)
	if w := args.Get(0); w != nil {
		return w.(*models.Wallet), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	args := m.Called(ctx, userID)
	if w := args.Get(0); w != nil {
		return w.(*models.Wallet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCache) CacheWallet(ctx context.Context, wallet *models.Wallet) error {
	return m.Called(ctx, wallet).Error(0)
}

func TestGetWallet_CacheHit(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	cache := new(MockCache)
	cached := &models.Wallet{ID: 1, UserID: 7, Balance: decimal.NewFromInt(40)}
	cache.On("GetWallet", ctx, uint(7)).Return(cached, nil)

	got, err := NewService(repo, cache).GetWallet(ctx, 7)

	require.NoError(t, err)
	assert.Same(t, cached, got)
	repo.AssertNotCalled(t, "GetWalletByUserID", mock.Anything, mock.Anything)
}

func TestGetWallet_CacheMissFillsCache(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	cache := new(MockCache)
	stored := &models.Wallet{ID: 1, UserID: 7, Balance: decimal.NewFromInt(40)}
	cache.On("GetWallet", ctx, uint(7)).Return(nil, nil)
	repo.On("GetWalletByUserID", ctx, uint(7)).Return(stored, nil)
	cache.On("CacheWallet", ctx, stored).Return(nil)

	got, err := NewService(repo, cache).GetWallet(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
	cache.AssertExpectations(t)
}

func TestGetWallet_CacheErrorFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	cache := new(MockCache)
	stored := &models.Wallet{ID: 1, UserID: 7}
	cache.On("GetWallet", ctx, uint(7)).Return(nil, errors.New("redis down"))
	repo.On("GetWalletByUserID", ctx, uint(7)).Return(stored, nil)
	cache.On("CacheWallet", ctx, stored).Return(errors.New("redis down"))

	got, err := NewService(repo, cache).GetWallet(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestGetWallet_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("GetWalletByUserID", ctx, uint(9)).Return(nil, repositories.ErrWalletNotFound)

	_, err := NewService(repo, nil).GetWallet(ctx, 9)

	assert.True(t, domainErrors.WalletNotFound.Is(err))
}
