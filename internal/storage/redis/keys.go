package redis

import (
	"fmt"

	"github.com/mcoot/edgeguard/internal/model"
)

// Key prefix for all history data
const keyPrefix = "edgeguard"

// sessionKey returns the Redis key for a Session document
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionsIndexKey returns the Redis key for the ZSET of session ids scored by start time
func sessionsIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions", keyPrefix)
}

// turnsKey returns the Redis key for the LIST of turn records of a session
func turnsKey(id model.SessionID) string {
	return fmt.Sprintf("%s:turns:%s", keyPrefix, id)
}
