// Package options implements generic functional options.
package options

// Option mutates an options struct of type T.
type Option[T any] func(*T)

// Apply returns defaults with every non-nil option applied in order.
func Apply[T any](defaults T, opts []Option[T]) T {
	out := defaults

	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}

	return out
}
