package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const basePriceKey = "pricing:base_price"

// RedisBasePriceStore shares the base price between every instance of the
// service. Until an administrator sets it the configured default is used.
type RedisBasePriceStore struct {
	redis        redis.UniversalClient
	defaultPrice int
}

func NewRedisBasePriceStore(client redis.UniversalClient, defaultPrice int) *RedisBasePriceStore {
	return &RedisBasePriceStore{
		redis:        client,
		defaultPrice: defaultPrice,
	}
}

func (s *RedisBasePriceStore) Get(ctx context.Context) (int, error) {
	price, err := s.redis.Get(ctx, basePriceKey).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return s.defaultPrice, nil
		}

		return 0, err
	}

	return price, nil
}

func (s *RedisBasePriceStore) Set(ctx context.Context, price int) error {
	return s.redis.Set(ctx, basePriceKey, price, 0).Err()
}
