package gateway

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"krishimitra/internal/logging"
)

// CachingGateway memoises successful replies by prompt and collapses
// concurrent identical prompts into one upstream call. Errors are never cached.
type CachingGateway struct {
	next  Gateway
	cache *lru.Cache[string, string]
	group singleflight.Group
}

// NewCachingGateway wraps next with an LRU cache of the given size.
func NewCachingGateway(next Gateway, size int) (*CachingGateway, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create response cache: %w", err)
	}
	return &CachingGateway{next: next, cache: cache}, nil
}

// Generate returns the cached reply for prompt or asks next.
func (c *CachingGateway) Generate(ctx context.Context, prompt string) (string, error) {
	key := promptKey(prompt)
	if reply, ok := c.cache.Get(key); ok {
		logging.GatewayDebug("cache hit: key=%s", key[:12])
		return reply, nil
	}

	// The upstream call outlives any one caller and is bounded by the
	// provider's own timeout. Each caller stops waiting when its ctx ends.
	upstream := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		reply, err := c.next.Generate(upstream, prompt)
		if err != nil {
			return "", err
		}
		c.cache.Add(key, reply)
		return reply, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Shared {
			logging.GatewayDebug("shared in-flight call: key=%s", key[:12])
		}
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Len returns the number of cached replies.
func (c *CachingGateway) Len() int {
	return c.cache.Len()
}

// Close closes the wrapped gateway.
func (c *CachingGateway) Close() error {
	return Close(c.next)
}

func promptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
