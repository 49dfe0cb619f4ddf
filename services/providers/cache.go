package providers

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// resultCache memoizes synthesized search results per parameter bag so that
// repeated identical searches within a run (or across retries) stay stable.
var resultCache = gocache.New(5*time.Minute, 10*time.Minute)

func cached(key string) ([]map[string]any, bool) {
	if v, ok := resultCache.Get(key); ok {
		if records, ok := v.([]map[string]any); ok {
			return records, true
		}
	}
	return nil, false
}

func store(key string, records []map[string]any) {
	resultCache.Set(key, records, gocache.DefaultExpiration)
}
