package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/mealcatalog/internal/common"
	"github.com/dmitrijs2005/mealcatalog/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	s := NewUserService(repomanager.NewInMemoryRepositoryManager())
	s.cost = bcrypt.MinCost
	return s
}

func TestCreateUser_HashesPassword(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "chef", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.NotEqual(t, "s3cret", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret")))
}

func TestCreateUser_Errors(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "", "pw")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.CreateUser(ctx, "chef", "pw")
	require.NoError(t, err)
	_, err = s.CreateUser(ctx, "chef", "other")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestGetUser(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, "chef", "pw")
	require.NoError(t, err)

	byID, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "chef", byID.UserName)

	byName, err := s.GetUserByUsername(ctx, "chef")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = s.GetUserByUsername(ctx, "Chef")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.GetUser(ctx, 404)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestVerifyPassword(t *testing.T) {
	s := newUserService(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "chef", "pw")
	require.NoError(t, err)

	ok, err := s.VerifyPassword(ctx, "chef", "pw")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.VerifyPassword(ctx, "chef", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.VerifyPassword(ctx, "ghost", "pw")
	require.NoError(t, err)
	assert.False(t, ok)
}
