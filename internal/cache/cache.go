// Package cache stores short-lived byte payloads such as probe results.
package cache

import "time"

type Cache interface {
	Get(key string) ([]byte, bool)
	// Set stores data for ttl. A non-positive ttl keeps the entry until it is
	// deleted or the cache is cleared.
	Set(key string, data []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key joins a namespace and an identifier into a cache key.
func Key(namespace, id string) string {
	return namespace + ":" + id
}
