package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"freshfold/models"
	"freshfold/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// noticeTTL keeps undelivered notices around a little longer than the wizard
// session itself.
const noticeTTL = 45 * time.Minute

// DefaultNotificationService stores per-session notices in Redis.
type DefaultNotificationService struct {
	Cache *redis.Client
}

func NewDefaultNotificationService(cache *redis.Client) (*DefaultNotificationService, error) {
	if cache == nil {
		return nil, fmt.Errorf("notification service initialization error: cache client is nil")
	}
	return &DefaultNotificationService{Cache: cache}, nil
}

func noticeKey(sessionID string) string {
	return "notices:" + sessionID
}

// Push appends one notice to the session's feed.
func (s *DefaultNotificationService) Push(ctx context.Context, sessionID string, level models.NoticeLevel, message string) error {
	notice := models.Notice{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}
	data, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal notice: %w", err)
	}

	key := noticeKey(sessionID)
	pipe := s.Cache.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, noticeTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		utils.GetLogger().Warn("failed to push notice", zap.String("sessionID", sessionID), zap.Error(err))
		return fmt.Errorf("failed to push notice: %w", err)
	}
	return nil
}

// Drain returns and clears the session's pending notices.
func (s *DefaultNotificationService) Drain(ctx context.Context, sessionID string) ([]models.Notice, error) {
	key := noticeKey(sessionID)
	raw, err := s.Cache.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read notices: %w", err)
	}
	if err := s.Cache.Del(ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("failed to clear notices: %w", err)
	}

	notices := make([]models.Notice, 0, len(raw))
	for _, item := range raw {
		var n models.Notice
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		notices = append(notices, n)
	}
	return notices, nil
}
