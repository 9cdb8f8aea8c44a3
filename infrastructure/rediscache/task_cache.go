// Package rediscache provides an optional Redis-backed cache for per-user
// task listings. All methods degrade to misses on Redis errors so the API
// keeps working if the cache is down.
package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"taskdeck/domain/models"
	"taskdeck/pkg/config"
	"taskdeck/pkg/logger"
)

const taskListTTL = 5 * time.Minute

type TaskCache struct {
	rdb *redis.Client
}

func NewTaskCache(cfg config.RedisConfig) (*TaskCache, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB > 0 {
		opt.DB = cfg.DB
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Redis connected", "url", cfg.URL)

	return &TaskCache{rdb: rdb}, nil
}

func (c *TaskCache) Close() error {
	return c.rdb.Close()
}

func (c *TaskCache) GetTasks(ctx context.Context, userID uuid.UUID, timeframe string) ([]*models.Task, bool) {
	raw, err := c.rdb.Get(ctx, taskListKey(userID, timeframe)).Bytes()
	if err != nil {
		return nil, false
	}

	var tasks []*models.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, false
	}
	return tasks, true
}

func (c *TaskCache) SetTasks(ctx context.Context, userID uuid.UUID, timeframe string, tasks []*models.Task) {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, taskListKey(userID, timeframe), raw, taskListTTL).Err(); err != nil {
		logger.WarnContext(ctx, "Task cache set failed", "user_id", userID, "error", err)
	}
}

// Invalidate drops every cached listing for the user.
func (c *TaskCache) Invalidate(ctx context.Context, userID uuid.UUID) {
	pattern := fmt.Sprintf("tasks:%s:*", userID)
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			logger.WarnContext(ctx, "Task cache invalidation failed", "user_id", userID, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				logger.WarnContext(ctx, "Task cache invalidation failed", "user_id", userID, "error", err)
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}

func taskListKey(userID uuid.UUID, timeframe string) string {
	return fmt.Sprintf("tasks:%s:%s", userID, timeframe)
}
