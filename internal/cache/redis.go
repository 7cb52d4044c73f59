package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/firstoffice/officebooking/config"
	"github.com/firstoffice/officebooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache keeps the office and city catalog listings, which the
// storefront hits on every browse page.
type RedisCache struct {
	client     *redis.Client
	catalogTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, catalogTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		catalogTTL: catalogTTL,
	}
}

func (c *RedisCache) GetOffices(ctx context.Context) ([]domain.Office, error) {
	data, err := c.client.Get(ctx, officesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var offices []domain.Office
	if err := json.Unmarshal(data, &offices); err != nil {
		return nil, err
	}
	return offices, nil
}

func (c *RedisCache) SetOffices(ctx context.Context, offices []domain.Office) error {
	payload, err := json.Marshal(offices)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, officesKey(), payload, c.catalogTTL).Err()
}

func (c *RedisCache) GetCities(ctx context.Context) ([]domain.City, error) {
	data, err := c.client.Get(ctx, citiesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var cities []domain.City
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

func (c *RedisCache) SetCities(ctx context.Context, cities []domain.City) error {
	payload, err := json.Marshal(cities)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, citiesKey(), payload, c.catalogTTL).Err()
}

func officesKey() string {
	return "cache:offices"
}

func citiesKey() string {
	return "cache:cities"
}
