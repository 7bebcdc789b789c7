package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const recentTTL = 2 * time.Minute

// RecentSosGuard remembers the last SOS id logged per user so rapid repeat
// requests replay the original record instead of flooding the collection.
// Key format: sos:recent:<user_id>
type RecentSosGuard struct {
	client *redis.Client
}

// NewRecentSosGuard creates a RecentSosGuard wrapping the given Redis client.
func NewRecentSosGuard(client *redis.Client) *RecentSosGuard {
	return &RecentSosGuard{client: client}
}

// Recall returns the SOS id recently stored for userID, if any.
func (g *RecentSosGuard) Recall(ctx context.Context, userID string) (string, bool, error) {
	id, err := g.client.Get(ctx, g.key(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("sos guard recall: %w", err)
	}
	return id, true, nil
}

// Remember records the SOS id just created for userID (expires after recentTTL).
func (g *RecentSosGuard) Remember(ctx context.Context, userID, sosID string) error {
	return g.client.Set(ctx, g.key(userID), sosID, recentTTL).Err()
}

// Ping reports guard availability for the diagnostic endpoint.
func (g *RecentSosGuard) Ping(ctx context.Context) error {
	return g.client.Ping(ctx).Err()
}

func (g *RecentSosGuard) key(userID string) string {
	return "sos:recent:" + userID
}
