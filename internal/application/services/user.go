package services

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"file-vault-api/internal/application/ports"
	domain "file-vault-api/internal/domain/user"
	userDB "file-vault-api/internal/infrastructure/db/postgres/user"
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

// GetOrCreateUser registers an identity on first sight. Two racing first
// requests can both try the insert; the loser refetches the winner's row.
func (us *UserService) GetOrCreateUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u, err = us.userRepository.CreateUser(ctx, domain.User{
		TelegramID: telegramID,
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
	})
	if err != nil {
		if errors.Is(err, userDB.ErrTelegramIDAlreadyExists) {
			return us.userRepository.FetchUserByTelegramID(ctx, telegramID)
		}
		return nil, err
	}

	us.mCounter.WithLabelValues("users_created_total").Inc()

	return u, nil
}

func (us *UserService) FindUserByUUID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	return us.userRepository.FetchUserByUUID(ctx, uuid)
}
