// Package auth registers sellers and manages their JWT sessions.
package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"chargeflow/internal/config"
	domainErrors "chargeflow/internal/errors"
	"chargeflow/internal/models"
	"chargeflow/internal/repositories"
	"chargeflow/internal/utils"
	"chargeflow/internal/utils/validation"

	"golang.org/x/crypto/bcrypt"
)

// MinimumPasswordLength is the shortest password accepted at registration.
const MinimumPasswordLength = 8

var hashCost = bcrypt.DefaultCost

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenStore remembers revoked refresh tokens.
type TokenStore interface {
	BlacklistToken(ctx context.Context, jti string, expiresAt time.Time) error
	IsTokenBlacklisted(ctx context.Context, jti string) (bool, error)
}

type Service interface {
	Register(ctx context.Context, email, password string) (*TokenPair, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID uint, refreshToken string) error
}

type service struct {
	userRepo repositories.UserRepository
	tokens   TokenStore
	jwt      config.JWTConfig
}

func NewService(userRepo repositories.UserRepository, tokens TokenStore, jwtCfg config.JWTConfig) Service {
	if userRepo == nil || tokens == nil {
		panic("user repository and token store are required")
	}
	return &service{
		userRepo: userRepo,
		tokens:   tokens,
		jwt:      jwtCfg,
	}
}

// Register creates a seller account and its empty wallet, then signs the
// user in.
func (s *service) Register(ctx context.Context, email, password string) (*TokenPair, error) {
	email = validation.NormalizeEmail(email)
	if email == "" {
		return nil, domainErrors.EmailRequired.New()
	}
	if !validation.IsEmail(email) {
		return nil, domainErrors.InvalidEmailFormat.New()
	}
	if password == "" {
		return nil, domainErrors.PasswordRequired.New()
	}
	if len(password) < MinimumPasswordLength {
		return nil, domainErrors.PasswordTooShort.New(MinimumPasswordLength)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domainErrors.EmailAlreadyExists.New()
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:      email,
		Email:         &email,
		EmailVerified: true,
		Password:      string(hashed),
		Role:          models.RoleSeller,
	}
	if _, err := s.userRepo.CreateWithWallet(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, domainErrors.EmailAlreadyExists.New()
		}
		return nil, err
	}

	return s.issue(user)
}

func (s *service) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	email = validation.NormalizeEmail(email)
	if email == "" {
		return nil, domainErrors.EmailRequired.New()
	}
	if password == "" {
		return nil, domainErrors.PasswordRequired.New()
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, domainErrors.AccountNotFound.New()
		}
		return nil, err
	}

	if user.Password == "" || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		log.Printf("Login failed: incorrect password for user ID: %d", user.ID)
		return nil, domainErrors.InvalidCredentials.New()
	}

	return s.issue(user)
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued.
func (s *service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.validRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil || user.TokenVersion != claims.TokenVersion {
		return nil, domainErrors.InvalidToken.New()
	}

	if err := s.tokens.BlacklistToken(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return nil, err
	}
	return s.issue(user)
}

func (s *service) Logout(ctx context.Context, userID uint, refreshToken string) error {
	claims, err := s.validRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	if claims.UserID != userID {
		return domainErrors.InvalidToken.New()
	}
	return s.tokens.BlacklistToken(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (s *service) validRefreshToken(ctx context.Context, refreshToken string) (*models.UserClaims, error) {
	if refreshToken == "" {
		return nil, domainErrors.RefreshTokenRequired.New()
	}
	_, claims, err := utils.ParseToken(refreshToken, s.jwt)
	if err != nil || claims.Type != models.TokenTypeRefresh || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, domainErrors.InvalidToken.New()
	}
	revoked, err := s.tokens.IsTokenBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domainErrors.InvalidToken.New()
	}
	return claims, nil
}

func (s *service) issue(user *models.User) (*TokenPair, error) {
	access, refresh, err := utils.GenerateTokens(models.NewUserClaims(user), s.jwt)
	if err != nil {
		log.Println("Error generating tokens:", err)
		return nil, errors.New("error generating tokens")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
