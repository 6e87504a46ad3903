package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecartisans/ecartisans/internal/user/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/redis/go-redis/v9"
)

// ErrKeyNotExist 目前只有 redis 一種實現, 保持別名即可
var ErrKeyNotExist = redis.Nil

//go:generate mockgen -source=./user.go -package=cachemocks -destination=mocks/user.mock.go UserCache
type UserCache interface {
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.User, error)
	Set(ctx context.Context, u domain.User) error
}

type UserECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewUserECache(c ecache.Cache) UserCache {
	return &UserECache{
		cache: &ecache.NamespaceCache{
			Namespace: "user:",
			C:         c,
		},
		expiration: time.Minute * 15,
	}
}

func (cache *UserECache) Delete(ctx context.Context, id int64) error {
	_, err := cache.cache.Delete(ctx, cache.key(id))
	return err
}

func (cache *UserECache) Get(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := cache.cache.Get(ctx, cache.key(id)).JSONScan(&u)
	return u, err
}

func (cache *UserECache) Set(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.key(u.ID), data, cache.expiration)
}

func (cache *UserECache) key(id int64) string {
	return fmt.Sprintf("info:%d", id)
}
