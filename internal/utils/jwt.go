package utils

import (
	"errors"
	"strconv"
	"time"

	"chargeflow/internal/config"
	"chargeflow/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateTokens signs an access token and a refresh token for the given
// user claims. Every token gets its own id so a refresh token can be
// blacklisted on logout.
func GenerateTokens(claims *models.UserClaims, cfg config.JWTConfig) (accessToken string, refreshToken string, err error) {
	if cfg.Secret == "" {
		return "", "", errors.New("JWT secret not configured")
	}

	now := time.Now()
	accessToken, err = sign(claims, models.TokenTypeAccess, claims.Permissions, now, cfg.AccessTTL, cfg)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = sign(claims, models.TokenTypeRefresh, nil, now, cfg.RefreshTTL, cfg)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func sign(claims *models.UserClaims, typ string, permissions []string, now time.Time, ttl time.Duration, cfg config.JWTConfig) (string, error) {
	c := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    cfg.Issuer,
			Subject:   strconv.FormatUint(uint64(claims.UserID), 10),
		},
		UserID:       claims.UserID,
		Email:        claims.Email,
		Role:         claims.Role,
		Type:         typ,
		Permissions:  permissions,
		TokenVersion: claims.TokenVersion,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(cfg.Secret))
}

// ParseToken parses and validates a JWT token string.
// It returns the token if valid, or an error if something is wrong.
func ParseToken(tokenStr string, cfg config.JWTConfig) (*jwt.Token, *models.UserClaims, error) {
	if cfg.Secret == "" {
		return nil, nil, errors.New("JWT secret not configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer))
	if err != nil {
		return nil, nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, nil, errors.New("invalid token claims")
	}

	return token, claims, nil
}
