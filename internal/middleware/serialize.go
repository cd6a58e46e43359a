package middleware

import (
	"net/http"
	"sync"
)

// SerializeMiddleware admits one request at a time. The profile store
// has no cross-key transactions and every manager runs read-modify-write
// cycles against it, so concurrent requests could interleave and lose
// updates. Serializing dispatch keeps each request's cycle whole, the
// way a single-threaded event loop would.
func SerializeMiddleware() func(http.Handler) http.Handler {
	var mu sync.Mutex

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()

			next.ServeHTTP(w, r)
		})
	}
}
