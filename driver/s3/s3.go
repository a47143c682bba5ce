// Package s3 provides an S3-compatible object storage implementation of the
// storage driver interface.
//
// Every namespace maps to one bucket named by [namer.BucketName]. Values are
// stored as object bodies; expiration and metadata travel in user-defined
// object headers.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/tarantool/go-kvns/driver"
	"github.com/tarantool/go-kvns/internal/options"
	"github.com/tarantool/go-kvns/kv"
	"github.com/tarantool/go-kvns/namer"
)

// maxPageSize is the largest page S3 returns from one listing request.
const maxPageSize = 1000

// defaultRegion needs no location constraint on bucket creation.
const defaultRegion = "us-east-1"

// Client defines the subset of the S3 API used by the driver.
// *s3.Client satisfies it; tests substitute an in-memory fake.
type Client interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

var _ Client = (*s3.Client)(nil)

type storeOptions struct {
	region string
}

// Option configures a Store.
type Option = options.Option[storeOptions]

// WithRegion sets the region used as the location constraint of created buckets.
func WithRegion(region string) Option {
	return func(opts *storeOptions) {
		opts.region = region
	}
}

// Store hosts namespaces as buckets of one S3 endpoint.
type Store struct {
	client Client
	region string

	mu      sync.Mutex
	buckets map[string]*bucket
}

var _ driver.Provider = &Store{} //nolint:exhaustruct

// New creates a store using an existing, configured S3 client.
func New(client Client, opts ...Option) *Store {
	cfg := options.Apply(storeOptions{region: defaultRegion}, opts)

	return &Store{
		client:  client,
		region:  cfg.region,
		mu:      sync.Mutex{},
		buckets: make(map[string]*bucket),
	}
}

// Namespace implements driver.Provider. The bucket is not touched until the
// first operation.
func (s *Store) Namespace(name string) driver.Driver {
	return &Driver{
		client: s.client,
		bucket: s.bucket(namer.BucketName(name)),
	}
}

func (s *Store) bucket(name string) *bucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[name]
	if !ok {
		b = &bucket{name: name, region: s.region, mu: sync.Mutex{}, ready: false}
		s.buckets[name] = b
	}

	return b
}

// bucket remembers whether a bucket is known to exist.
// A failed check is not remembered, the next operation retries it.
type bucket struct {
	name   string
	region string

	mu    sync.Mutex
	ready bool
}

func (b *bucket) ensure(ctx context.Context, client Client) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ready {
		return nil
	}

	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(b.name)})
	switch {
	case err == nil:
		b.ready = true
		return nil
	case !isErrorCode(err, "NotFound", "NoSuchBucket"):
		return fmt.Errorf("failed to check bucket %q: %w", b.name, err)
	}

	input := &s3.CreateBucketInput{Bucket: aws.String(b.name)}
	if b.region != "" && b.region != defaultRegion {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(b.region),
		}
	}

	_, err = client.CreateBucket(ctx, input)
	if err != nil && !isErrorCode(err, "BucketAlreadyOwnedByYou") {
		return fmt.Errorf("failed to create bucket %q: %w", b.name, err)
	}

	b.ready = true

	return nil
}

// Driver is a single namespace bucket.
type Driver struct {
	client Client
	bucket *bucket
}

var _ driver.Driver = &Driver{} //nolint:exhaustruct

// Bucket returns the name of the bucket backing the namespace.
func (d *Driver) Bucket() string {
	return d.bucket.name
}

// Fetch implements driver.Driver.
func (d *Driver) Fetch(ctx context.Context, key string) (kv.Entry, error) {
	if err := d.bucket.ensure(ctx, d.client); err != nil {
		return kv.Entry{}, err
	}

	out, err := d.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.bucket.name),
		Key:    aws.String(key),
	})
	switch {
	case isNotFound(err):
		return kv.Entry{}, driver.ErrNotFound
	case err != nil:
		return kv.Entry{}, fmt.Errorf("failed to get object %q: %w", key, err)
	}

	defer func() { _ = out.Body.Close() }()

	value, err := io.ReadAll(out.Body)
	if err != nil {
		return kv.Entry{}, fmt.Errorf("failed to read object %q: %w", key, err)
	}

	headers := decodeHeaders(out.Metadata)

	return kv.Entry{
		Value:      value,
		Expiration: headers.Expiration,
		Metadata:   headers.Metadata,
	}, nil
}

// Store implements driver.Driver.
func (d *Driver) Store(ctx context.Context, key string, entry kv.Entry) error {
	if err := d.bucket.ensure(ctx, d.client); err != nil {
		return err
	}

	_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(d.bucket.name),
		Key:           aws.String(key),
		Body:          bytes.NewReader(entry.Value),
		ContentLength: aws.Int64(int64(len(entry.Value))),
		Metadata:      encodeHeaders(entry.Expiration, entry.Metadata),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %q: %w", key, err)
	}

	return nil
}

// Remove implements driver.Driver.
func (d *Driver) Remove(ctx context.Context, key string) error {
	if err := d.bucket.ensure(ctx, d.client); err != nil {
		return err
	}

	_, err := d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(d.bucket.name),
		Key:    aws.String(key),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}

	return nil
}

// List implements driver.Driver.
//
// S3 lists keys in ascending order, so pages come straight from the native
// listing. Expiration and metadata are read per key with HeadObject. A resume
// key that no longer exists continues after its position.
func (d *Driver) List(ctx context.Context, prefix string, limit int, startAfter string) (kv.Page, error) {
	if err := d.bucket.ensure(ctx, d.client); err != nil {
		return kv.Page{}, err
	}

	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(d.bucket.name),
		MaxKeys: aws.Int32(int32(min(limit, maxPageSize-1) + 1)), //nolint:gosec
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	if startAfter != "" {
		input.StartAfter = aws.String(startAfter)
	}

	paginator := s3.NewListObjectsV2Paginator(d.client, input)
	entries := make([]kv.KeyMeta, 0, min(limit, maxPageSize))

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return kv.Page{}, fmt.Errorf("failed to list bucket %q: %w", d.bucket.name, err)
		}

		for _, object := range out.Contents {
			key := aws.ToString(object.Key)

			if len(entries) == limit {
				return kv.Page{Entries: entries, Next: entries[len(entries)-1].Key}, nil
			}

			meta, found, err := d.head(ctx, key)
			if err != nil {
				return kv.Page{}, err
			}

			if found {
				entries = append(entries, meta)
			}
		}
	}

	return kv.Page{Entries: entries, Next: ""}, nil
}

func (d *Driver) head(ctx context.Context, key string) (kv.KeyMeta, bool, error) {
	out, err := d.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(d.bucket.name),
		Key:    aws.String(key),
	})
	switch {
	case isNotFound(err):
		return kv.KeyMeta{}, false, nil
	case err != nil:
		return kv.KeyMeta{}, false, fmt.Errorf("failed to head object %q: %w", key, err)
	}

	headers := decodeHeaders(out.Metadata)

	return kv.KeyMeta{
		Key:        key,
		Expiration: headers.Expiration,
		Metadata:   headers.Metadata,
	}, true, nil
}

func isNotFound(err error) bool {
	return isErrorCode(err, "NoSuchKey", "NotFound")
}

func isErrorCode(err error, codes ...string) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	for _, code := range codes {
		if apiErr.ErrorCode() == code {
			return true
		}
	}

	return false
}
