package customdict

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the Redis set holding extra dictionary words.
const DefaultKey = "custom_dict"

// CustomDict reads extra dictionary words from a Redis set. It is consulted
// once while the dictionary is loaded.
type CustomDict struct {
	client *redis.Client
	key    string
}

// New creates a CustomDict reading the set stored at key. An empty key
// falls back to DefaultKey.
func New(client *redis.Client, key string) *CustomDict {
	if key == "" {
		key = DefaultKey
	}
	return &CustomDict{client: client, key: key}
}

// All returns all words stored in the set.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	return cd.client.SMembers(ctx, cd.key).Result()
}

// Close releases the underlying connection pool.
func (cd *CustomDict) Close() error {
	return cd.client.Close()
}
