package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	// Cache instances for different data types
	SermonCache  *cache.Cache
	GeocodeCache *cache.Cache
)

const (
	// Cache durations
	sermonCacheDuration  = 1 * time.Hour
	geocodeCacheDuration = 24 * time.Hour

	// Cleanup intervals
	sermonCleanupInterval  = 2 * time.Hour
	geocodeCleanupInterval = 48 * time.Hour
)

func InitCache() {
	// Initialize separate caches for different data types
	SermonCache = cache.New(sermonCacheDuration, sermonCleanupInterval)
	GeocodeCache = cache.New(geocodeCacheDuration, geocodeCleanupInterval)
}

func ClearAllCaches() {
	SermonCache.Flush()
	GeocodeCache.Flush()
}

func GetCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
