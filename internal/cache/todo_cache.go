package cache

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	dom "Taskboard/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	keyList    = "todo:list:"
	keyVersion = "todo:version:"
)

// TodoCache caches per-user todo list views in Redis, one key per filter.
// Views are stored under the user's current version; InvalidateUser bumps
// the version, so a view computed before a mutation is never served after it.
type TodoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTodoCache returns a new TodoCache.
func NewTodoCache(rdb *redis.Client, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

// Version returns the user's current view version, zero when none was recorded.
func (c *TodoCache) Version(ctx context.Context, userID string) (int64, error) {
	v, err := c.rdb.Get(ctx, keyVersion+userID).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// GetList returns the cached view or nil if miss.
func (c *TodoCache) GetList(ctx context.Context, userID string, version int64, f dom.TodoFilter) ([]dom.Todo, error) {
	b, err := c.rdb.Get(ctx, listKey(userID, version, f)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	list := []dom.Todo{}
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the view in cache.
func (c *TodoCache) SetList(ctx context.Context, userID string, version int64, f dom.TodoFilter, list []dom.Todo) error {
	if list == nil {
		list = []dom.Todo{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(userID, version, f), b, c.ttl).Err()
}

// InvalidateUser bumps the user's version and removes the views cached so far.
func (c *TodoCache) InvalidateUser(ctx context.Context, userID string) error {
	if err := c.rdb.Incr(ctx, keyVersion+userID).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keyList+userID+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func listKey(userID string, version int64, f dom.TodoFilter) string {
	return keyList + userID + ":" + strconv.FormatInt(version, 10) + ":" + FilterKey(f)
}

// FilterKey renders f canonically; equal filters give equal keys.
func FilterKey(f dom.TodoFilter) string {
	var parts []string
	if f.Completed != nil {
		parts = append(parts, "c="+strconv.FormatBool(*f.Completed))
	}
	if f.Priority != nil {
		parts = append(parts, "p="+string(*f.Priority))
	}
	if f.CategoryID != nil {
		parts = append(parts, "cat="+*f.CategoryID)
	}
	if len(f.TagIDs) > 0 {
		tags := slices.Clone(f.TagIDs)
		slices.Sort(tags)
		tags = slices.Compact(tags)
		parts = append(parts, "tags="+strings.Join(tags, ","))
	}
	if len(parts) == 0 {
		return "all"
	}
	return strings.Join(parts, "|")
}
