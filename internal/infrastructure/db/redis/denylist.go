package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist is the credential revocation store. Bearer tokens are stateless
// and otherwise valid until expiry; denylisting a subject id makes every
// outstanding token of that subject stop resolving. Entries expire after the
// token TTL, when the tokens they cover would have died anyway.
// Key format: revoked:<subject_id>
type Denylist struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDenylist creates a Denylist whose entries live as long as an issued
// credential.
func NewDenylist(client *redis.Client, ttl time.Duration) *Denylist {
	return &Denylist{client: client, ttl: ttl}
}

// IsRevoked reports whether the subject's credentials have been denylisted.
func (d *Denylist) IsRevoked(ctx context.Context, subjectID int64) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(subjectID)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

// Revoke denylists the subject until its outstanding tokens expire.
func (d *Denylist) Revoke(ctx context.Context, subjectID int64) error {
	return d.client.Set(ctx, d.key(subjectID), "1", d.ttl).Err()
}

func (d *Denylist) key(subjectID int64) string {
	return fmt.Sprintf("revoked:%d", subjectID)
}
