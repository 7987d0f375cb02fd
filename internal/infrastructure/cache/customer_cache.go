package cache

import (
	"context"
	"fmt"
	"time"

	"iugu_gateway/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	customerKeyPrefix  = "iugu:account:"
	defaultCustomerTTL = 30 * time.Minute
)

// CustomerStore is a read-through redis cache in front of another customer
// store. Cache failures fall back to the wrapped store.
type CustomerStore struct {
	next   interfaces.ICustomerStore
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

var _ interfaces.ICustomerStore = (*CustomerStore)(nil)

func NewCustomerStore(next interfaces.ICustomerStore, client *redis.Client, ttl time.Duration, log *zap.Logger) *CustomerStore {
	if ttl <= 0 {
		ttl = defaultCustomerTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CustomerStore{next: next, client: client, ttl: ttl, log: log.Named("customer_cache")}
}

// NewClient connects to redis and checks the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func (c *CustomerStore) GetMetadata(ctx context.Context, accountID int64, key string) (string, error) {
	cacheKey := customerKey(accountID, key)

	v, err := c.client.Get(ctx, cacheKey).Result()
	switch {
	case err == nil:
		return v, nil
	case err != redis.Nil:
		c.log.Warn("cache read failed", zap.String("key", cacheKey), zap.Error(err))
	}

	v, err = c.next.GetMetadata(ctx, accountID, key)
	if err != nil || v == "" {
		return v, err
	}
	if err := c.client.Set(ctx, cacheKey, v, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", zap.String("key", cacheKey), zap.Error(err))
	}
	return v, nil
}

func (c *CustomerStore) SetMetadata(ctx context.Context, accountID int64, key string, value string) error {
	if err := c.next.SetMetadata(ctx, accountID, key, value); err != nil {
		return err
	}
	cacheKey := customerKey(accountID, key)
	if err := c.client.Del(ctx, cacheKey).Err(); err != nil {
		c.log.Warn("cache invalidation failed", zap.String("key", cacheKey), zap.Error(err))
	}
	return nil
}

func customerKey(accountID int64, key string) string {
	return fmt.Sprintf("%s%d:%s", customerKeyPrefix, accountID, key)
}
