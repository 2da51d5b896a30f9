package redis

import (
	"fmt"

	"github.com/nahidff/likebot/internal/model"
)

// Key prefix for all bot data
const keyPrefix = "likebot"

// accountKey returns the Redis key for an Account
func accountKey(id model.UserID) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, id)
}

// accountIndexKey returns the Redis key for the SET of all account ids
func accountIndexKey() string {
	return fmt.Sprintf("%s:idx:accounts", keyPrefix)
}
