package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/commercekit/commerce-api/internal/core/domain"
	"github.com/commercekit/commerce-api/internal/core/ports"
)

// AccountService mutates existing accounts, one field per call.
type AccountService struct {
	repo       ports.UserRepository
	bcryptCost int
	log        zerolog.Logger
}

func NewAccountService(repo ports.UserRepository, bcryptCost int, log zerolog.Logger) *AccountService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AccountService{repo: repo, bcryptCost: bcryptCost, log: log}
}

func (s *AccountService) UpdateEmail(ctx context.Context, userID int64, email string) (*domain.User, error) {
	return s.repo.UpdateEmail(ctx, userID, email)
}

// UpdatePassword re-hashes before persisting; the plaintext never reaches
// the repository.
func (s *AccountService) UpdatePassword(ctx context.Context, userID int64, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdatePassword(ctx, userID, string(hash))
}

func (s *AccountService) UpdateName(ctx context.Context, userID int64, name string) (*domain.User, error) {
	return s.repo.UpdateName(ctx, userID, name)
}

// DeleteByEmail resolves the account by email and removes it. Unknown
// emails report domain.ErrUserNotFound instead of failing mid-lookup.
func (s *AccountService) DeleteByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", deleted.ID).Msg("account deleted")
	return deleted, nil
}
