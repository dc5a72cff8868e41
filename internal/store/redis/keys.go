package redis

import (
	"fmt"
	"strings"
)

const (
	// KeyPrefixSession is the prefix for session snapshot keys
	KeyPrefixSession = "leadscout:session:"
	// KeyAllSessions is the key for the set of all persisted session IDs
	KeyAllSessions = "leadscout:sessions:all"
)

// SessionKey returns the Redis key for a session snapshot by ID
func SessionKey(id string) string {
	return KeyPrefixSession + id
}

// AllSessionsKey returns the key for the set of all persisted session IDs
func AllSessionsKey() string {
	return KeyAllSessions
}

// ExtractSessionID extracts the session ID from a Redis key
func ExtractSessionID(key string) (string, error) {
	id, ok := strings.CutPrefix(key, KeyPrefixSession)
	if !ok || id == "" {
		return "", fmt.Errorf("invalid session key: %s", key)
	}
	return id, nil
}
