// Package ratelimiter throttles requests with a token bucket.
//
// The form posts on every field edit, so the bucket allows a burst of
// typing and refills at a steady rate. State lives in a Store; MemoryStore
// keeps it in process and sweeps idle buckets.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, cfg)
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(bucket))
//
// Middleware keys buckets by client address (see package clientip) and
// answers denied requests with 429 unless WithErrorResponder says otherwise.
package ratelimiter
