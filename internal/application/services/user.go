package services

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"contacts-api/internal/application/ports"
	domain "contacts-api/internal/domain/user"
	"contacts-api/internal/infrastructure/gravatar"
)

type UserService struct {
	userRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	// The unique constraint keys off the stored string, so the address is
	// normalized here, not just in the validator.
	email = normalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	uRet, err := us.userRepository.CreateUser(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Avatar:       gravatar.URL(email),
	})
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) StoreRefreshToken(ctx context.Context, id domain.ID, refreshToken string) error {
	return us.userRepository.UpdateRefreshToken(ctx, id, refreshToken)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
