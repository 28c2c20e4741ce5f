package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/openclass/lms-api/internal/models"
	appErrors "github.com/openclass/lms-api/pkg/errors"
)

type mockAuthUserRepo struct {
	users    map[string]models.User
	upserted *models.User
}

func (m *mockAuthUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAuthUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockAuthUserRepo) Upsert(ctx context.Context, user *models.User) error {
	if m.users == nil {
		m.users = make(map[string]models.User)
	}
	m.users[user.ID] = *user
	m.upserted = user
	return nil
}

func newAuthFixture(t *testing.T) (*AuthService, *mockAuthUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)
	repo := &mockAuthUserRepo{users: map[string]models.User{
		"u-1": {ID: "u-1", Email: "ada@school.test", PasswordHash: &hashStr, FirstName: "Ada"},
	}}
	svc := NewAuthService(repo, nil, nil, AuthConfig{Secret: "test-secret", Expiration: time.Hour})
	return svc, repo
}

func TestAuthServiceLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "ada@school.test", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.Equal(t, "u-1", res.User.ID)

	claims, err := svc.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ada@school.test", claims.Email)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "ada@school.test", Password: "wrong"})
	assert.Nil(t, res)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nobody@school.test", Password: "secret123"})

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestAuthServiceLoginNoLocalPassword(t *testing.T) {
	repo := &mockAuthUserRepo{users: map[string]models.User{
		"u-2": {ID: "u-2", Email: "sso@school.test"},
	}}
	svc := NewAuthService(repo, nil, nil, AuthConfig{Secret: "test-secret", Expiration: time.Hour})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "sso@school.test", Password: "anything"})

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestAuthServiceValidateTokenGarbage(t *testing.T) {
	svc, _ := newAuthFixture(t)

	claims, err := svc.ValidateToken("not-a-token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestAuthServiceValidateTokenWrongSecret(t *testing.T) {
	svc, repo := newAuthFixture(t)

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "ada@school.test", Password: "secret123"})
	require.NoError(t, err)

	other := NewAuthService(repo, nil, nil, AuthConfig{Secret: "different", Expiration: time.Hour})
	claims, err := other.ValidateToken(res.Token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestAuthServiceCurrentUserUnknownAccount(t *testing.T) {
	svc, _ := newAuthFixture(t)

	user, err := svc.CurrentUser(context.Background(), "ghost")
	assert.Nil(t, user)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestAuthServiceEnsureDevUser(t *testing.T) {
	svc, repo := newAuthFixture(t)

	user, err := svc.EnsureDevUser(context.Background(), "dev@localhost")
	require.NoError(t, err)
	assert.Equal(t, "local-dev-user", user.ID)
	assert.Equal(t, "dev@localhost", user.Email)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, "local-dev-user", repo.upserted.ID)
}
