package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const blacklistPrefix = "blacklist:"

// TokenBlacklist stores revoked session tokens until they expire on
// their own. Logout writes the token here; the auth middleware rejects
// any token that is still present.
type TokenBlacklist struct{}

var (
	setBlacklistValue  = Set
	blacklistKeyExists = Exists
)

// NewTokenBlacklist creates a new token blacklist
func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{}
}

// Revoke marks a token as revoked for the remainder of its lifetime.
// Tokens that already expired need no entry.
func (b *TokenBlacklist) Revoke(ctx context.Context, token string, remaining time.Duration) error {
	if remaining <= 0 {
		return nil
	}
	return setBlacklistValue(ctx, blacklistPrefix+token, "1", remaining)
}

// IsRevoked reports whether a token has been revoked
func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	found, err := blacklistKeyExists(ctx, blacklistPrefix+token)
	if err != nil && err != goredis.Nil {
		return false, err
	}
	return found, nil
}
