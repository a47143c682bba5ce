package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-kvns/internal/options"
)

type testOpts struct {
	Prefix string
	Limit  int
}

func withLimit(limit int) options.Option[testOpts] {
	return func(o *testOpts) { o.Limit = limit }
}

func TestApply_Defaults(t *testing.T) {
	t.Parallel()

	out := options.Apply(testOpts{Prefix: "p", Limit: 1000}, nil)

	assert.Equal(t, testOpts{Prefix: "p", Limit: 1000}, out)
}

func TestApply_InOrderSkippingNil(t *testing.T) {
	t.Parallel()

	out := options.Apply(testOpts{Prefix: "", Limit: 1000}, []options.Option[testOpts]{
		withLimit(5),
		nil,
		withLimit(7),
	})

	assert.Equal(t, 7, out.Limit)
}

func TestApply_DoesNotMutateDefaults(t *testing.T) {
	t.Parallel()

	defaults := testOpts{Prefix: "", Limit: 1}
	_ = options.Apply(defaults, []options.Option[testOpts]{withLimit(2)})

	assert.Equal(t, 1, defaults.Limit)
}
