package blobstore

import (
	"context"
	"time"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Redis stores the blob under a single string key. SET is atomic, so a failed
// write never leaves a partial value.
type Redis struct {
	client *redis.Client
	key    string
	log    logrus.FieldLogger
}

// NewRedis accepts either a redis:// URL or a plain "host:port" address.
func NewRedis(addr, key string, log logrus.FieldLogger) *Redis {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			MaxRetries:   3,
			DialTimeout:  10 * time.Second,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			PoolSize:     10,
			PoolTimeout:  4 * time.Second,
			IdleTimeout:  180 * time.Second,
		}
	}

	client := redis.NewClient(opts)
	client.AddHook(redisotel.NewTracingHook())
	return NewRedisWithClient(client, key, log)
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, key string, log logrus.FieldLogger) *Redis {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Redis{client: client, key: key, log: log.WithField("component", "redis_blobstore")}
}

// Initialize waits for Redis to answer a PING, retrying with exponential backoff.
func (r *Redis) Initialize(ctx context.Context, attempts int) error {
	if attempts <= 0 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		if r.Ping(ctx) {
			r.log.WithField("attempt", i+1).Info("redis reachable")
			return nil
		}

		backoff := time.Duration(500*(1<<uint(i))) * time.Millisecond
		if backoff > 30*time.Second {
			backoff = 30 * time.Second
		}
		r.log.WithFields(logrus.Fields{"attempt": i + 1, "backoff": backoff}).Warn("redis not reachable yet")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return errors.Errorf("blobstore: redis not reachable after %d attempts", attempts)
}

// Ping reports whether Redis answers within five seconds.
func (r *Redis) Ping(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.client.Ping(pingCtx).Err(); err != nil {
		r.log.WithError(err).Debug("redis ping failed")
		return false
	}
	return true
}

func (r *Redis) Read(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return nil, errors.Wrapf(ErrNotFound, "redis key %s", r.key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "blobstore: redis GET %s", r.key)
	}
	return data, nil
}

func (r *Redis) Write(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "blobstore: redis SET %s", r.key)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
