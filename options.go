package kvns

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-kvns/internal/options"
	"github.com/tarantool/go-kvns/kv"
)

// DefaultListLimit is the page size used when List is called without WithLimit.
const DefaultListLimit = 1000

type namespaceOptions struct {
	clock  Clock
	logger zerolog.Logger
}

// Option configures a Namespace.
type Option = options.Option[namespaceOptions]

// WithClock replaces the wall clock used for expiration checks and TTLs.
func WithClock(clock Clock) Option {
	return func(opts *namespaceOptions) {
		opts.clock = clock
	}
}

// WithLogger sets the logger used to report lazy expiration.
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *namespaceOptions) {
		opts.logger = logger
	}
}

// putOptions contains configuration options for put operations.
type putOptions struct {
	expiration option.Generic[int64] // Absolute expiration, unix seconds.
	ttl        option.Generic[int64] // Relative expiration, seconds from now.
	metadata   any
}

// PutOption is a function that configures put operation options.
type PutOption = options.Option[putOptions]

// WithExpiration sets the absolute expiration time in unix seconds.
// A value of -1 means the entry never expires.
func WithExpiration(expiration int64) PutOption {
	return func(opts *putOptions) {
		opts.expiration = option.Some(expiration)
	}
}

// WithExpirationString is WithExpiration for a decimal string.
// A malformed string is treated as no expiration.
func WithExpirationString(expiration string) PutOption {
	return func(opts *putOptions) {
		opts.expiration = parseInteger(expiration)
	}
}

// WithExpirationTTL sets the expiration relative to the current time.
// It takes precedence over WithExpiration unless it is -1.
func WithExpirationTTL(ttl int64) PutOption {
	return func(opts *putOptions) {
		opts.ttl = option.Some(ttl)
	}
}

// WithExpirationTTLString is WithExpirationTTL for a decimal string.
// A malformed string is ignored.
func WithExpirationTTLString(ttl string) PutOption {
	return func(opts *putOptions) {
		opts.ttl = parseInteger(ttl)
	}
}

// WithMetadata attaches a JSON-serializable value to the entry.
func WithMetadata(metadata any) PutOption {
	return func(opts *putOptions) {
		opts.metadata = metadata
	}
}

func parseInteger(value string) option.Generic[int64] {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return option.None[int64]()
	}

	return option.Some(parsed)
}

// expirationAt resolves the stored expiration for a put made at now.
func (o putOptions) expirationAt(now int64) int64 {
	if ttl := o.ttl.UnwrapOr(kv.NoExpiration); ttl != kv.NoExpiration {
		return now + ttl
	}

	return o.expiration.UnwrapOr(kv.NoExpiration)
}

// listOptions contains configuration options for list operations.
type listOptions struct {
	prefix string
	limit  option.Generic[int]
	cursor string
}

// ListOption is a function that configures list operation options.
type ListOption = options.Option[listOptions]

// WithPrefix restricts List to keys starting with prefix.
func WithPrefix(prefix string) ListOption {
	return func(opts *listOptions) {
		opts.prefix = prefix
	}
}

// WithLimit sets the maximum number of keys per page. It must be positive.
func WithLimit(limit int) ListOption {
	return func(opts *listOptions) {
		opts.limit = option.Some(limit)
	}
}

// WithCursor resumes listing from a cursor returned by a previous List.
func WithCursor(cursor string) ListOption {
	return func(opts *listOptions) {
		opts.cursor = cursor
	}
}
