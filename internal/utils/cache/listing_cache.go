package cache

import (
	"Food-Share-Backend/domain"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	listingFeedKey       = "food-share:listings:all"
	listingGenerationKey = "food-share:listings:generation"
)

// NoGeneration marks a miss whose generation could not be read. SetAll never
// stores a feed tagged with it.
const NoGeneration int64 = -1

var errStaleFeed = errors.New("listing feed changed during load")

type (
	// ListingCache holds the public listing feed. Failures are logged and
	// reported as misses so the store stays the source of truth.
	//
	// A miss returns the current generation. The caller loads the feed and
	// hands that generation back to SetAll, which drops the write when an
	// Invalidate ran in between.
	ListingCache interface {
		GetAll(ctx context.Context) ([]domain.ListingResponse, int64, bool)
		SetAll(ctx context.Context, generation int64, listings []domain.ListingResponse)
		Invalidate(ctx context.Context)
	}

	redisListingCache struct {
		client *redis.Client
		ttl    time.Duration
	}

	noopListingCache struct{}
)

func NewRedisListingCache(client *redis.Client, ttl time.Duration) ListingCache {
	return &redisListingCache{client: client, ttl: ttl}
}

func NewNoopListingCache() ListingCache {
	return noopListingCache{}
}

func (c *redisListingCache) GetAll(ctx context.Context) ([]domain.ListingResponse, int64, bool) {
	raw, err := c.client.Get(ctx, listingFeedKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("listing cache read failed", "error", err)
			return nil, NoGeneration, false
		}
		return nil, c.generation(ctx), false
	}

	var listings []domain.ListingResponse
	if err := json.Unmarshal(raw, &listings); err != nil {
		slog.Warn("listing cache entry corrupt", "error", err)
		return nil, c.generation(ctx), false
	}
	return listings, 0, true
}

func (c *redisListingCache) generation(ctx context.Context) int64 {
	gen, err := c.client.Get(ctx, listingGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0
	}
	if err != nil {
		slog.Warn("listing cache generation read failed", "error", err)
		return NoGeneration
	}
	return gen
}

func (c *redisListingCache) SetAll(ctx context.Context, generation int64, listings []domain.ListingResponse) {
	if generation == NoGeneration {
		return
	}
	if listings == nil {
		listings = []domain.ListingResponse{}
	}
	raw, err := json.Marshal(listings)
	if err != nil {
		slog.Warn("listing cache encode failed", "error", err)
		return
	}

	// WATCH aborts the MULTI if Invalidate bumps the generation before EXEC.
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, listingGenerationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return errStaleFeed
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, listingFeedKey, raw, c.ttl)
			return nil
		})
		return err
	}, listingGenerationKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleFeed), errors.Is(err, redis.TxFailedErr):
		slog.Debug("listing cache write skipped, feed changed during load")
	default:
		slog.Warn("listing cache write failed", "error", err)
	}
}

func (c *redisListingCache) Invalidate(ctx context.Context) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, listingGenerationKey)
		pipe.Del(ctx, listingFeedKey)
		return nil
	})
	if err != nil {
		slog.Warn("listing cache invalidate failed", "error", err)
	}
}

func (noopListingCache) GetAll(context.Context) ([]domain.ListingResponse, int64, bool) { return nil, NoGeneration, false }
func (noopListingCache) SetAll(context.Context, int64, []domain.ListingResponse)        {}
func (noopListingCache) Invalidate(context.Context)                                     {}
