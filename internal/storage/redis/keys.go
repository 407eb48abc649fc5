package redis

import "fmt"

// Key prefix for all registry data
const keyPrefix = "hwidstore"

// snapshotKey returns the Redis key holding the registry snapshot document
func snapshotKey() string {
	return fmt.Sprintf("%s:snapshot", keyPrefix)
}

// allowlistKey returns the Redis key for the SET of allowed HWIDs
func allowlistKey() string {
	return fmt.Sprintf("%s:allowlist", keyPrefix)
}
