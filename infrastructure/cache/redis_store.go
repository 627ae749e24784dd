package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore é o nível durável do cache mensal em Redis. Um cliente nil
// degrada todas as operações para no-op, o que mantém a aplicação útil em
// ambientes sem Redis (o cache vira somente-memória).
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore conecta ao Redis e devolve o armazenamento durável.
// ttl zero significa entradas sem expiração (a invalidação é por versão,
// não por tempo).
func NewRedisStore(ctx context.Context, addr string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s == nil || s.client == nil {
		return nil, false, nil
	}

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}

	return data, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Set(ctx, key, value, s.ttl).Err()
}

func (s *RedisStore) Del(ctx context.Context, key string) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Del(ctx, key).Err()
}

// Close encerra a conexão com o Redis
func (s *RedisStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
