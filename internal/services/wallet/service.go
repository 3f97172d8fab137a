// Package wallet serves seller wallet reads through the Redis cache.
// Balances only change inside the transaction service, which drops the
// cached entry after every commit.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"log"

	domainErrors "chargeflow/internal/errors"
	"chargeflow/internal/models"
	"chargeflow/internal/repositories"
)

// Repository is the subset of the ledger store used here.
type Repository interface {
	GetWalletByUserID(ctx context.Context, userID uint) (*models.Wallet, error)
}

// Cache stores wallets keyed by owner.
type Cache interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	CacheWallet(ctx context.Context, wallet *models.Wallet) error
}

type Service interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
}

type service struct {
	repo  Repository
	cache Cache
}

// NewService creates a new wallet service. cache may be nil.
func NewService(repo Repository, cache Cache) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	if s.cache != nil {
		wallet, err := s.cache.GetWallet(ctx, userID)
		if err != nil {
			log.Printf("wallet cache read for user %d failed: %v", userID, err)
		} else if wallet != nil {
			return wallet, nil
		}
	}

	wallet, err := s.repo.GetWalletByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, domainErrors.WalletNotFound.New()
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.CacheWallet(ctx, wallet); err != nil {
			log.Printf("wallet cache write for user %d failed: %v", userID, err)
		}
	}
	return wallet, nil
}
