package redis

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"cybershield-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:snapshot"

// LeaderboardCache stores the ranked leaderboard as a JSON blob with a short
// TTL. Implements app.LeaderboardCache. Cache failures are logged and treated
// as misses; the leaderboard is always recomputable.
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLeaderboardCache(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{client: client, ttl: ttl}
}

func (c *LeaderboardCache) Get(ctx context.Context) ([]domain.LeaderboardEntry, bool) {
	raw, err := c.client.Get(ctx, leaderboardKey).Bytes()
	if err != nil {
		return nil, false
	}
	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (c *LeaderboardCache) Set(ctx context.Context, entries []domain.LeaderboardEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		log.Printf("leaderboard cache marshal: %v", err)
		return
	}
	if err := c.client.Set(ctx, leaderboardKey, raw, ttlWithJitter(c.ttl)).Err(); err != nil {
		log.Printf("leaderboard cache set: %v", err)
	}
}

// ttlWithJitter spreads expirations by up to 10%. The top-level rand source
// is lock-protected, so concurrent Set calls are safe.
func ttlWithJitter(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 0
	}
	jitterMax := int64(ttl) / 10
	return ttl + time.Duration(rand.Int63n(jitterMax+1))
}
