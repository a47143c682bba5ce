package s3_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvns/driver"
	kvs3 "github.com/tarantool/go-kvns/driver/s3"
	"github.com/tarantool/go-kvns/internal/mocks"
	"github.com/tarantool/go-kvns/internal/testing/drivertest"
	"github.com/tarantool/go-kvns/internal/testing/s3fake"
	"github.com/tarantool/go-kvns/kv"
)

var errInjected = errors.New("injected failure")

func TestDriver_Conformance(t *testing.T) {
	t.Parallel()

	drivertest.Run(t, func(_ *testing.T) driver.Provider {
		return kvs3.New(s3fake.New())
	}, drivertest.Config{StaleCursorEndsListing: false})
}

func TestStore_NamespaceBucket(t *testing.T) {
	t.Parallel()

	store := kvs3.New(s3fake.New())

	d, ok := store.Namespace("TEST_NAMESPACE").(*kvs3.Driver)
	require.True(t, ok)
	assert.Equal(t, "test-namespace", d.Bucket())
}

func TestStore_BucketCreatedOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := s3fake.New()
	store := kvs3.New(client)

	first := store.Namespace("MY_NS")
	require.NoError(t, first.Store(ctx, "a", kv.Entry{Value: []byte("1"), Expiration: kv.NoExpiration}))
	require.NoError(t, first.Store(ctx, "b", kv.Entry{Value: []byte("2"), Expiration: kv.NoExpiration}))

	// Differently spelled names share one bucket.
	second := store.Namespace("my_ns")
	_, err := second.Fetch(ctx, "a")
	require.NoError(t, err)

	assert.Equal(t, 1, len(client.Created()))
	assert.Equal(t, 1, client.HeadBucketCalls())
}

func TestStore_ExistingBucketNotCreated(t *testing.T) {
	t.Parallel()

	client := s3fake.New()
	client.PutRaw("existing", "key", []byte("value"), nil)

	got, err := kvs3.New(client).Namespace("existing").Fetch(context.Background(), "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got.Value)
	assert.Equal(t, kv.NoExpiration, got.Expiration)
	assert.Nil(t, got.Metadata)
	assert.Zero(t, len(client.Created()))
}

func TestStore_RegionLocationConstraint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []kvs3.Option
		expected types.BucketLocationConstraint
	}{
		{name: "default region", opts: nil, expected: ""},
		{name: "us-east-1", opts: []kvs3.Option{kvs3.WithRegion("us-east-1")}, expected: ""},
		{name: "eu-west-1", opts: []kvs3.Option{kvs3.WithRegion("eu-west-1")}, expected: "eu-west-1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := s3fake.New()
			ns := kvs3.New(client, tc.opts...).Namespace("ns")

			_, err := ns.Fetch(context.Background(), "missing")
			require.ErrorIs(t, err, driver.ErrNotFound)

			created := client.Created()
			require.Len(t, created, 1)

			cfg := created[0].CreateBucketConfiguration
			if tc.expected == "" {
				assert.Nil(t, cfg)
			} else {
				require.NotNil(t, cfg)
				assert.Equal(t, tc.expected, cfg.LocationConstraint)
			}
		})
	}
}

func TestStore_BucketCheckFailureRetried(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mc := minimock.NewController(t)

	var checks atomic.Int32

	client := mocks.NewClientMock(mc).
		HeadBucketMock.Set(func(
			_ context.Context, params *awss3.HeadBucketInput, _ ...func(*awss3.Options),
		) (*awss3.HeadBucketOutput, error) {
			assert.Equal(t, "ns", aws.ToString(params.Bucket))

			if checks.Add(1) == 1 {
				return nil, errInjected
			}

			return &awss3.HeadBucketOutput{}, nil //nolint:exhaustruct
		}).
		GetObjectMock.Return(nil, &types.NoSuchKey{}) //nolint:exhaustruct

	ns := kvs3.New(client).Namespace("ns")

	_, err := ns.Fetch(ctx, "key")
	require.ErrorIs(t, err, errInjected)
	assert.NotErrorIs(t, err, driver.ErrNotFound)

	_, err = ns.Fetch(ctx, "key")
	require.ErrorIs(t, err, driver.ErrNotFound)

	_, err = ns.Fetch(ctx, "key")
	require.ErrorIs(t, err, driver.ErrNotFound)

	assert.Equal(t, uint64(2), client.HeadBucketAfterCounter())
	assert.Equal(t, uint64(2), client.GetObjectAfterCounter())
}

func TestStore_BucketCreateFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mc := minimock.NewController(t)

	client := mocks.NewClientMock(mc).
		HeadBucketMock.Return(nil, &types.NotFound{}). //nolint:exhaustruct
		CreateBucketMock.Expect(ctx, &awss3.CreateBucketInput{Bucket: aws.String("ns")}).Return(nil, errInjected) //nolint:exhaustruct

	err := kvs3.New(client).Namespace("ns").Remove(ctx, "key")
	require.ErrorIs(t, err, errInjected)
}

func TestStore_BucketAlreadyOwned(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mc := minimock.NewController(t)

	input := &awss3.DeleteObjectInput{ //nolint:exhaustruct
		Bucket: aws.String("ns"),
		Key:    aws.String("key"),
	}

	client := mocks.NewClientMock(mc).
		HeadBucketMock.Return(nil, &types.NotFound{}). //nolint:exhaustruct
		CreateBucketMock.Return(nil, &types.BucketAlreadyOwnedByYou{}). //nolint:exhaustruct
		DeleteObjectMock.Expect(ctx, input).Return(&awss3.DeleteObjectOutput{}, nil) //nolint:exhaustruct

	require.NoError(t, kvs3.New(client).Namespace("ns").Remove(ctx, "key"))
}

func TestDriver_FetchErrorPropagates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mc := minimock.NewController(t)

	input := &awss3.GetObjectInput{ //nolint:exhaustruct
		Bucket: aws.String("ns"),
		Key:    aws.String("key"),
	}

	client := mocks.NewClientMock(mc).
		HeadBucketMock.Return(&awss3.HeadBucketOutput{}, nil). //nolint:exhaustruct
		GetObjectMock.Expect(ctx, input).Return(nil, errInjected)

	_, err := kvs3.New(client).Namespace("ns").Fetch(ctx, "key")
	require.ErrorIs(t, err, errInjected)
	assert.NotErrorIs(t, err, driver.ErrNotFound)
}

func TestDriver_ListErrorPropagates(t *testing.T) {
	t.Parallel()

	mc := minimock.NewController(t)

	client := mocks.NewClientMock(mc).
		HeadBucketMock.Return(&awss3.HeadBucketOutput{}, nil). //nolint:exhaustruct
		ListObjectsV2Mock.Return(nil, errInjected)

	_, err := kvs3.New(client).Namespace("ns").List(context.Background(), "", 10, "")
	require.ErrorIs(t, err, errInjected)
}

func TestDriver_ListHugeLimitCapsPageSize(t *testing.T) {
	t.Parallel()

	mc := minimock.NewController(t)

	client := mocks.NewClientMock(mc).
		HeadBucketMock.Return(&awss3.HeadBucketOutput{}, nil). //nolint:exhaustruct
		ListObjectsV2Mock.Set(func(
			_ context.Context, params *awss3.ListObjectsV2Input, _ ...func(*awss3.Options),
		) (*awss3.ListObjectsV2Output, error) {
			assert.Equal(t, int32(1000), aws.ToInt32(params.MaxKeys))
			assert.Equal(t, "a", aws.ToString(params.StartAfter))

			return &awss3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}, nil //nolint:exhaustruct
		})

	page, err := kvs3.New(client).Namespace("ns").List(context.Background(), "", math.MaxInt, "a")
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
	assert.Empty(t, page.Next)
}

func TestDriver_StoreHeaders(t *testing.T) {
	t.Parallel()

	client := s3fake.New()
	ns := kvs3.New(client).Namespace("ns")

	err := ns.Store(context.Background(), "key", kv.Entry{
		Value:      []byte("value"),
		Expiration: 1234,
		Metadata:   json.RawMessage(`{"name":"żółw"}`),
	})
	require.NoError(t, err)

	headers := client.RawHeaders("ns", "key")
	assert.Equal(t, "1234", headers[kvs3.HeaderExpiration])
	assert.Equal(t, `{"name":"\u017c\u00f3\u0142w"}`, headers[kvs3.HeaderMetadata])

	require.NoError(t, ns.Store(context.Background(), "plain", kv.Entry{Value: []byte("v"), Expiration: kv.NoExpiration}))

	headers = client.RawHeaders("ns", "plain")
	assert.Equal(t, "-1", headers[kvs3.HeaderExpiration])
	assert.Equal(t, "null", headers[kvs3.HeaderMetadata])
}

func TestDriver_FetchForeignHeaders(t *testing.T) {
	t.Parallel()

	client := s3fake.New()
	client.PutRaw("ns", "key", []byte("v"), map[string]string{
		"Expiration": "not-a-number",
		"Metadata":   "{broken",
	})

	got, err := kvs3.New(client).Namespace("ns").Fetch(context.Background(), "key")
	require.NoError(t, err)
	assert.Equal(t, kv.NoExpiration, got.Expiration)
	assert.Nil(t, got.Metadata)
}

func TestDriver_ListLargeNamespace(t *testing.T) {
	t.Parallel()

	const total = 2500

	ctx := context.Background()
	client := s3fake.New()

	for i := range total {
		client.PutRaw("ns", fmt.Sprintf("key%05d", i), []byte("v"), nil)
	}

	ns := kvs3.New(client).Namespace("ns")

	page, err := ns.List(ctx, "", total, "")
	require.NoError(t, err)
	assert.Len(t, page.Entries, total)
	assert.Empty(t, page.Next)

	page, err = ns.List(ctx, "", 1500, "")
	require.NoError(t, err)
	require.Len(t, page.Entries, 1500)
	assert.Equal(t, "key01499", page.Next)

	page, err = ns.List(ctx, "", 1500, page.Next)
	require.NoError(t, err)
	require.Len(t, page.Entries, 1000)
	assert.Equal(t, "key01500", page.Entries[0].Key)
	assert.Empty(t, page.Next)
}

func TestDriver_ListHeadsOnlyReturnedKeys(t *testing.T) {
	t.Parallel()

	client := s3fake.New()
	for i := range 10 {
		client.PutRaw("ns", fmt.Sprintf("key%d", i), []byte("v"), nil)
	}

	page, err := kvs3.New(client).Namespace("ns").List(context.Background(), "", 3, "")
	require.NoError(t, err)
	assert.Len(t, page.Entries, 3)
	assert.Equal(t, "key2", page.Next)
	assert.Equal(t, 3, client.HeadObjectCalls())
}
