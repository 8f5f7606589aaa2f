//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"takeout-api/internal/domain/user"
	reqdto "takeout-api/internal/handler/dto/request"
	"takeout-api/internal/infra"
	"takeout-api/internal/pkg/jwt"
	"takeout-api/internal/pkg/password"
	"takeout-api/internal/usecase/commands"
	"takeout-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	takenEmails map[string]bool
	created     []*user.User
	lastLogin   uuid.UUID
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) (uuid.UUID, error) {
	if r.takenEmails[u.Email().String()] {
		return uuid.Nil, infra.WrapRepoErr("insert user", &pgconn.PgError{Code: "23505"})
	}
	r.created = append(r.created, u)
	return uuid.New(), nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	r.lastLogin = id
	return nil
}

type fakeUserReadStore struct {
	views  map[uuid.UUID]*queries.AuthorizedUserView
	hashes map[string]string
}

func (s *fakeUserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	if v, ok := s.views[id]; ok {
		return v, nil
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (s *fakeUserReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	for _, v := range s.views {
		if v.Email == email {
			return v, s.hashes[email], nil
		}
	}
	return nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

type authFixture struct {
	commands  commands.AuthCommands
	repo      *fakeUserRepo
	readStore *fakeUserReadStore
	jwt       *jwt.Service
	userID    uuid.UUID
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	hash, err := password.HashPassword("hunter2pass")
	require.NoError(t, err)

	userID := uuid.New()
	readStore := &fakeUserReadStore{
		views: map[uuid.UUID]*queries.AuthorizedUserView{
			userID: {ID: userID, Email: "taro@example.com", DisplayName: "Taro", Role: "customer", IsActive: true},
		},
		hashes: map[string]string{"taro@example.com": hash},
	}
	repo := &fakeUserRepo{takenEmails: map[string]bool{"taro@example.com": true}}
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)

	return &authFixture{
		commands:  commands.NewAuthCommands(repo, readStore, jwtService),
		repo:      repo,
		readStore: readStore,
		jwt:       jwtService,
		userID:    userID,
	}
}

func TestAuthRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a customer account", func(t *testing.T) {
		f := newAuthFixture(t)
		result, err := f.commands.Register(ctx, reqdto.RegisterRequest{
			Email:       "hanako@example.com",
			Password:    "longenough",
			DisplayName: "Hanako",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.UserID)
		require.Len(t, f.repo.created, 1)
		assert.Equal(t, user.RoleCustomer, f.repo.created[0].Role())
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.commands.Register(ctx, reqdto.RegisterRequest{
			Email:       "taro@example.com",
			Password:    "longenough",
			DisplayName: "Taro Again",
		})
		assert.ErrorIs(t, err, commands.ErrEmailAlreadyTaken)
	})

	t.Run("invalid email never reaches the repository", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.commands.Register(ctx, reqdto.RegisterRequest{
			Email:       "not-an-email",
			Password:    "longenough",
			DisplayName: "Nobody",
		})
		assert.ErrorIs(t, err, commands.ErrAuthenticationFailed)
		assert.Empty(t, f.repo.created)
	})
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues both tokens and records the login", func(t *testing.T) {
		f := newAuthFixture(t)
		result, err := f.commands.Login(ctx, reqdto.LoginRequest{Email: "taro@example.com", Password: "hunter2pass"})
		require.NoError(t, err)
		assert.Equal(t, f.userID, result.UserID)
		assert.Equal(t, f.userID, f.repo.lastLogin)

		claims, err := f.jwt.ValidateToken(result.TokenPair.AccessToken, jwt.KindAccess)
		require.NoError(t, err)
		assert.Equal(t, f.userID, claims.UserID)
		assert.Equal(t, "customer", claims.Role)

		_, err = f.jwt.ValidateToken(result.TokenPair.RefreshToken, jwt.KindRefresh)
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.commands.Login(ctx, reqdto.LoginRequest{Email: "taro@example.com", Password: "wrongpassword"})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email looks like bad credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.commands.Login(ctx, reqdto.LoginRequest{Email: "nobody@example.com", Password: "hunter2pass"})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.views[f.userID].IsActive = false
		_, err := f.commands.Login(ctx, reqdto.LoginRequest{Email: "taro@example.com", Password: "hunter2pass"})
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

func TestAuthRefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the pair from a valid refresh token", func(t *testing.T) {
		f := newAuthFixture(t)
		refresh, err := f.jwt.GenerateRefreshToken(f.userID, user.RoleCustomer)
		require.NoError(t, err)

		pair, err := f.commands.RefreshToken(ctx, refresh)
		require.NoError(t, err)

		claims, err := f.jwt.ValidateToken(pair.AccessToken, jwt.KindAccess)
		require.NoError(t, err)
		assert.Equal(t, f.userID, claims.UserID)
	})

	t.Run("access token is not accepted as refresh", func(t *testing.T) {
		f := newAuthFixture(t)
		access, err := f.jwt.GenerateAccessToken(f.userID, user.RoleCustomer)
		require.NoError(t, err)

		_, err = f.commands.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("deleted user cannot refresh", func(t *testing.T) {
		f := newAuthFixture(t)
		refresh, err := f.jwt.GenerateRefreshToken(f.userID, user.RoleCustomer)
		require.NoError(t, err)
		delete(f.readStore.views, f.userID)

		_, err = f.commands.RefreshToken(ctx, refresh)
		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("deactivated user cannot refresh", func(t *testing.T) {
		f := newAuthFixture(t)
		refresh, err := f.jwt.GenerateRefreshToken(f.userID, user.RoleCustomer)
		require.NoError(t, err)
		f.readStore.views[f.userID].IsActive = false

		_, err = f.commands.RefreshToken(ctx, refresh)
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
