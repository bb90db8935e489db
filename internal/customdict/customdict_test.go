package customdict

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paracheck/internal/dictionary"
)

func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestNewDefaultsKey(t *testing.T) {
	cd := New(unreachableClient(), "")
	defer cd.Close()
	assert.Equal(t, DefaultKey, cd.key)
}

func TestAllUnreachable(t *testing.T) {
	cd := New(unreachableClient(), "words")
	defer cd.Close()

	_, err := cd.All(context.Background())
	require.Error(t, err)
}

func TestUnreachableSourceDoesNotBreakLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o600))

	cd := New(unreachableClient(), "words")
	defer cd.Close()

	d, err := dictionary.Load(context.Background(), path, cd)
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world"}, d.Words())
}
