// Package kvns provides namespaced key-value storage with per-key expiration,
// opaque JSON metadata and cursor-based pagination.
//
// A [Namespace] is built over a [driver.Driver]. Three drivers are provided:
// [github.com/tarantool/go-kvns/driver/memory] keeps entries in process memory,
// [github.com/tarantool/go-kvns/driver/file] stores them below a directory and
// [github.com/tarantool/go-kvns/driver/s3] keeps them in an S3-compatible bucket.
//
//	store := memory.New()
//	ns := kvns.New(store.Namespace("settings"))
//
//	err := ns.Put(ctx, "greeting", []byte("hello"), kvns.WithExpirationTTL(60))
//	value, err := ns.Get(ctx, "greeting", kvns.TypeText)
package kvns
