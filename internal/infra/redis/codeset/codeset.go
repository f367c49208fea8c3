package infra_redis_codeset

import (
	"context"

	"github.com/go-redis/redis"
)

// Driver keeps the set of join codes belonging to non-complete sessions.
// It is a collision fast-path for code allocation; the partial unique
// index in postgres remains the source of truth.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Add(_ context.Context, code string) error {
	if code == "" {
		return nil
	}

	if err := d.client.SAdd(d.key, code).Err(); err != nil {
		return err
	}
	return nil
}

func (d *Driver) Contains(_ context.Context, code string) (bool, error) {
	ok, err := d.client.SIsMember(d.key, code).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (d *Driver) Remove(_ context.Context, code string) error {
	if err := d.client.SRem(d.key, code).Err(); err != nil {
		return err
	}
	return nil
}
