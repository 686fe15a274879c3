package shared

import (
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the non-empty parts of a cache key, e.g. "limiter:10.0.0.1:curl".
func BuildCacheKey(parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kept = append(kept, part)
	}

	return strings.Join(kept, cacheKeySeparator)
}
