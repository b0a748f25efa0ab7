package redis

import "fmt"

// Key prefix for all persisted client state
const keyPrefix = "bridgefront"

// tokenKey returns the Redis key for a visitor's bearer token
func tokenKey(visitorID string) string {
	return fmt.Sprintf("%s:token:%s", keyPrefix, visitorID)
}

// userKey returns the Redis key for a visitor's user record
func userKey(visitorID string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, visitorID)
}

// draftKey returns the Redis key for a visitor's registration wizard draft
func draftKey(visitorID string) string {
	return fmt.Sprintf("%s:draft:%s", keyPrefix, visitorID)
}
