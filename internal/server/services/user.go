package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/dmitrijs2005/mealcatalog/internal/server/models"
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages catalog accounts. No endpoint authenticates against
// them yet.
type UserService struct {
	repomanager repomanager.RepositoryManager
	cost        int
}

func NewUserService(m repomanager.RepositoryManager) *UserService {
	return &UserService{repomanager: m, cost: bcrypt.DefaultCost}
}

// CreateUser stores a new account. The password is kept only as a bcrypt
// hash. Duplicate usernames yield common.ErrorAlreadyExists.
func (s *UserService) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrorValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repomanager.Users().Create(ctx, &models.User{UserName: username, Password: string(hash)})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users().GetUserByID(ctx, id)
}

// GetUserByUsername matches the username exactly.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repomanager.Users().GetUserByLogin(ctx, username)
}

// VerifyPassword reports whether password matches the stored hash for
// username. Unknown users simply do not match.
func (s *UserService) VerifyPassword(ctx context.Context, username, password string) (bool, error) {
	user, err := s.repomanager.Users().GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, common.ErrorInternal
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, common.ErrorInternal
	}
	return true, nil
}
