package redis

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

const (
	// KeyPrefixExtension is the prefix for extension provider keys
	KeyPrefixExtension = "envf:extension:"
	// KeyPrefixMenu is the prefix for cached menu responses
	KeyPrefixMenu = "envf:menu:"
	// KeyAllExtensions is the key for the set of all provider names
	KeyAllExtensions = "envf:extensions:all"
)

// ExtensionKey returns the Redis key for a provider by name
func ExtensionKey(name string) string {
	return KeyPrefixExtension + name
}

// AllExtensionsKey returns the key for the set of all provider names
func AllExtensionsKey() string {
	return KeyAllExtensions
}

// MenuCacheKey returns the cache key of a menu response: kind plus a hash of the request body.
// Example: envf:menu:tools:5f3c1a0e9d2b7c44
func MenuCacheKey(kind string, body []byte) string {
	return KeyPrefixMenu + kind + ":" + strconv.FormatUint(xxhash.Sum64(body), 16)
}

// ExtractExtensionName extracts the provider name from a Redis key
func ExtractExtensionName(key string) (string, error) {
	if len(key) <= len(KeyPrefixExtension) || key[:len(KeyPrefixExtension)] != KeyPrefixExtension {
		return "", fmt.Errorf("invalid extension key: %s", key)
	}
	return key[len(KeyPrefixExtension):], nil
}
