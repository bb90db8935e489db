package checker

import (
	"context"

	"github.com/redis/go-redis/v9"

	"paracheck/internal/config"
	"paracheck/internal/customdict"
	"paracheck/internal/dictionary"
)

// FromConfig loads the dictionary named by cfg, merging extra words from
// Redis when configured, and builds a Checker. A dictionary that cannot be
// read is returned as an error; the caller must not serve requests then.
func FromConfig(ctx context.Context, cfg *config.Config) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var sources []dictionary.WordSource
	if cfg.Redis.Enabled() {
		cd := customdict.New(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}), cfg.Redis.Key)
		// the set is read once; the connection is not needed afterwards
		defer cd.Close()
		sources = append(sources, cd)
	}

	dict, err := dictionary.Load(ctx, cfg.Dictionary, sources...)
	if err != nil {
		return nil, err
	}
	return New(dict, cfg.Options()...)
}
