package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"app/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

// Carts survive reloads but not forever.
const cartTTL = 7 * 24 * time.Hour

// CartRedisRepository keeps one cart per user in redis, serialized as
// plain JSON. Mutations write the whole state back, matching the
// reducer-style cart engine.
type CartRedisRepository struct {
	rdb *redis.Client
}

func NewCartRedisRepository(rdb *redis.Client) (*CartRedisRepository, error) {
	if rdb == nil {
		return nil, errors.New("redis client must be non-nil")
	}
	return &CartRedisRepository{rdb: rdb}, nil
}

func cartKey(userID string) string {
	return "cart:" + userID
}

func (r *CartRedisRepository) Get(ctx context.Context, userID string) (model.Cart, error) {
	raw, err := r.rdb.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Cart{Lines: []model.CartLine{}}, nil
	}
	if err != nil {
		return model.Cart{}, err
	}

	var c model.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		// unreadable state is treated as an empty cart, not an error
		return model.Cart{Lines: []model.CartLine{}}, nil
	}
	if c.Lines == nil {
		c.Lines = []model.CartLine{}
	}
	return c, nil
}

func (r *CartRedisRepository) Save(ctx context.Context, userID string, c model.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, cartKey(userID), raw, cartTTL).Err()
}

func (r *CartRedisRepository) Delete(ctx context.Context, userID string) error {
	return r.rdb.Del(ctx, cartKey(userID)).Err()
}
