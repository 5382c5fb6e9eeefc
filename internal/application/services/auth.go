package services

import (
	"errors"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"contacts-api/internal/application/ports"
	"contacts-api/internal/domain/user"
	"contacts-api/internal/infrastructure/jwt"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(
	jwtService *jwt.Service,
) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

func (as *AuthService) GenerateTokens(u *user.User, requestPassword string) (string, string, error) {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(requestPassword))
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	id := strconv.FormatUint(uint64(u.ID), 10)
	access, err := as.jwtService.GenerateJWT(id, u.Email, accessTokenTTL)
	if err != nil {
		return "", "", ErrFailedToGenerateToken
	}
	refresh, err := as.jwtService.GenerateJWT(id, u.Email, refreshTokenTTL)
	if err != nil {
		return "", "", ErrFailedToGenerateToken
	}

	return access, refresh, nil
}
