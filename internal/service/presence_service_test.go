package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclass/lms-api/internal/models"
)

type mockPresenceUserRepo struct {
	byID        map[string]models.User
	recent      []models.User
	recentErr   error
	recentLimit int
}

func (m *mockPresenceUserRepo) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	users := []models.User{}
	for _, id := range ids {
		if u, ok := m.byID[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (m *mockPresenceUserRepo) ListRecent(ctx context.Context, limit int) ([]models.User, error) {
	m.recentLimit = limit
	if m.recentErr != nil {
		return nil, m.recentErr
	}
	return m.recent, nil
}

func TestPresenceServiceOnlineFallbackWithoutRedis(t *testing.T) {
	repo := &mockPresenceUserRepo{recent: []models.User{{ID: "u-1"}, {ID: "u-2"}}}
	svc := NewPresenceService(nil, repo, PresenceConfig{Window: 5 * time.Minute, MaxUsers: 5}, nil)

	users, err := svc.Online(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 5, repo.recentLimit)
}

func TestPresenceServiceFallbackError(t *testing.T) {
	repo := &mockPresenceUserRepo{recentErr: errors.New("db down")}
	svc := NewPresenceService(nil, repo, PresenceConfig{}, nil)

	users, err := svc.Online(context.Background())
	assert.Nil(t, users)
	assert.Error(t, err)
}

func TestPresenceServiceDefaults(t *testing.T) {
	repo := &mockPresenceUserRepo{}
	svc := NewPresenceService(nil, repo, PresenceConfig{}, nil)

	_, err := svc.Online(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, repo.recentLimit)
}

func TestPresenceServiceTouchWithoutRedisIsNoop(t *testing.T) {
	svc := NewPresenceService(nil, &mockPresenceUserRepo{}, PresenceConfig{}, nil)

	// Must not panic or block when heartbeat storage is absent.
	svc.Touch(context.Background(), "u-1")
	svc.Touch(context.Background(), "")
}
