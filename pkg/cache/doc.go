// Package cache provides the cross-request byte cache used for session side
// storage: values too large for a cookie are kept here under a key derived
// from the session id, and only the id travels to the client.
//
// Two implementations of Service ship with the package:
//
//   - Memory: a bounded, thread-safe LRU with per-entry TTL. A background
//     janitor can purge expired entries; stop it with Close.
//   - Redis: a thin adapter over github.com/redis/go-redis/v9 with a key
//     prefix, suitable when several processes share sessions.
//
// # Usage
//
//	mem := cache.NewMemory(1024, cache.WithJanitor(time.Minute))
//	defer mem.Close()
//
//	_ = mem.Set(ctx, "sid:avatar", data, 10*time.Minute)
//	data, err := mem.Get(ctx, "sid:avatar")
//	if errors.Is(err, cache.ErrNotFound) {
//		// evicted or expired
//	}
//
// For Redis, connect with retries first:
//
//	client, err := cache.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	svc := cache.NewRedis(client, cache.WithPrefix("httpkit:"))
//
// A zero or negative TTL stores the value without expiry.
package cache
