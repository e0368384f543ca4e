package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker suppresses duplicate notification sends backed by Redis.
// Key format: notify:<contact_id>:<channel>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether a notification for this contact request was
// already sent on the given channel.
func (d *DedupChecker) IsDuplicate(ctx context.Context, contactID, channel string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(contactID, channel)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that the notification was sent (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, contactID, channel string) error {
	return d.client.Set(ctx, d.key(contactID, channel), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(contactID, channel string) string {
	return fmt.Sprintf("notify:%s:%s", contactID, channel)
}
