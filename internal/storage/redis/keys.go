package redis

import "fmt"

// Key prefix for all stored data
const keyPrefix = "bjgame"

// summaryKey returns the Redis key for a GameSummary
func summaryKey(id string) string {
	return fmt.Sprintf("%s:summary:%s", keyPrefix, id)
}

// summaryIndexKey returns the Redis key for the sorted set of summary ids
// scored by completion time
func summaryIndexKey() string {
	return fmt.Sprintf("%s:idx:summaries", keyPrefix)
}
