// Package s3fake provides an in-memory S3 endpoint for tests.
package s3fake

import (
	"bytes"
	"context"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	kvs3 "github.com/tarantool/go-kvns/driver/s3"
)

type object struct {
	body    []byte
	headers map[string]string
}

// Client serves buckets and objects from memory. It keeps the key order,
// error types and header casing of a real endpoint.
type Client struct {
	mu      sync.Mutex
	buckets map[string]map[string]object

	created     []*awss3.CreateBucketInput
	headBuckets int
	headObjects int
}

var _ kvs3.Client = &Client{} //nolint:exhaustruct

// New returns an endpoint with no buckets.
func New() *Client {
	return &Client{ //nolint:exhaustruct
		buckets: make(map[string]map[string]object),
	}
}

func (f *Client) HeadBucket(
	_ context.Context, params *awss3.HeadBucketInput, _ ...func(*awss3.Options),
) (*awss3.HeadBucketOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.headBuckets++

	if _, ok := f.buckets[aws.ToString(params.Bucket)]; !ok {
		return nil, &types.NotFound{} //nolint:exhaustruct
	}

	return &awss3.HeadBucketOutput{}, nil //nolint:exhaustruct
}

func (f *Client) CreateBucket(
	_ context.Context, params *awss3.CreateBucketInput, _ ...func(*awss3.Options),
) (*awss3.CreateBucketOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.created = append(f.created, params)

	name := aws.ToString(params.Bucket)
	if _, ok := f.buckets[name]; ok {
		return nil, &types.BucketAlreadyOwnedByYou{} //nolint:exhaustruct
	}

	f.buckets[name] = make(map[string]object)

	return &awss3.CreateBucketOutput{}, nil //nolint:exhaustruct
}

func (f *Client) lookup(bucket, key *string) (object, error) {
	objects, ok := f.buckets[aws.ToString(bucket)]
	if !ok {
		return object{}, &types.NoSuchBucket{} //nolint:exhaustruct
	}

	obj, ok := objects[aws.ToString(key)]
	if !ok {
		return object{}, &types.NoSuchKey{} //nolint:exhaustruct
	}

	return obj, nil
}

func (f *Client) GetObject(
	_ context.Context, params *awss3.GetObjectInput, _ ...func(*awss3.Options),
) (*awss3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	obj, err := f.lookup(params.Bucket, params.Key)
	if err != nil {
		return nil, err
	}

	return &awss3.GetObjectOutput{ //nolint:exhaustruct
		Body:     io.NopCloser(bytes.NewReader(bytes.Clone(obj.body))),
		Metadata: maps.Clone(obj.headers),
	}, nil
}

func (f *Client) HeadObject(
	_ context.Context, params *awss3.HeadObjectInput, _ ...func(*awss3.Options),
) (*awss3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.headObjects++

	obj, err := f.lookup(params.Bucket, params.Key)
	if err != nil {
		return nil, &types.NotFound{} //nolint:exhaustruct
	}

	return &awss3.HeadObjectOutput{ //nolint:exhaustruct
		ContentLength: aws.Int64(int64(len(obj.body))),
		Metadata:      maps.Clone(obj.headers),
	}, nil
}

func (f *Client) PutObject(
	_ context.Context, params *awss3.PutObjectInput, _ ...func(*awss3.Options),
) (*awss3.PutObjectOutput, error) {
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	objects, ok := f.buckets[aws.ToString(params.Bucket)]
	if !ok {
		return nil, &types.NoSuchBucket{} //nolint:exhaustruct
	}

	// Real endpoints lower-case user header names.
	headers := make(map[string]string, len(params.Metadata))
	for name, value := range params.Metadata {
		headers[strings.ToLower(name)] = value
	}

	objects[aws.ToString(params.Key)] = object{body: body, headers: headers}

	return &awss3.PutObjectOutput{}, nil //nolint:exhaustruct
}

func (f *Client) DeleteObject(
	_ context.Context, params *awss3.DeleteObjectInput, _ ...func(*awss3.Options),
) (*awss3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	objects, ok := f.buckets[aws.ToString(params.Bucket)]
	if !ok {
		return nil, &types.NoSuchBucket{} //nolint:exhaustruct
	}

	delete(objects, aws.ToString(params.Key))

	return &awss3.DeleteObjectOutput{}, nil //nolint:exhaustruct
}

func (f *Client) ListObjectsV2(
	_ context.Context, params *awss3.ListObjectsV2Input, _ ...func(*awss3.Options),
) (*awss3.ListObjectsV2Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	objects, ok := f.buckets[aws.ToString(params.Bucket)]
	if !ok {
		return nil, &types.NoSuchBucket{} //nolint:exhaustruct
	}

	after := aws.ToString(params.StartAfter)
	if token := aws.ToString(params.ContinuationToken); token > after {
		after = token
	}

	maxKeys := 1000
	if params.MaxKeys != nil {
		maxKeys = int(*params.MaxKeys)
	}

	keys := slices.Sorted(maps.Keys(objects))
	prefix := aws.ToString(params.Prefix)

	out := &awss3.ListObjectsV2Output{IsTruncated: aws.Bool(false)} //nolint:exhaustruct

	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) || key <= after {
			continue
		}

		if len(out.Contents) == maxKeys {
			last := aws.ToString(out.Contents[len(out.Contents)-1].Key)
			out.IsTruncated = aws.Bool(true)
			out.NextContinuationToken = aws.String(last)

			break
		}

		out.Contents = append(out.Contents, types.Object{Key: aws.String(key)}) //nolint:exhaustruct
	}

	out.KeyCount = aws.Int32(int32(len(out.Contents))) //nolint:gosec

	return out, nil
}

// PutRaw stores an object bypassing the driver, creating the bucket as needed.
func (f *Client) PutRaw(bucket, key string, body []byte, headers map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.buckets[bucket]; !ok {
		f.buckets[bucket] = make(map[string]object)
	}

	f.buckets[bucket][key] = object{body: body, headers: headers}
}

// RawHeaders returns the stored user headers of an object.
func (f *Client) RawHeaders(bucket, key string) map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return maps.Clone(f.buckets[bucket][key].headers)
}

// Created returns the CreateBucket requests received so far.
func (f *Client) Created() []*awss3.CreateBucketInput {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.created)
}

// HeadBucketCalls returns the number of HeadBucket requests.
func (f *Client) HeadBucketCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.headBuckets
}

// HeadObjectCalls returns the number of HeadObject requests.
func (f *Client) HeadObjectCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.headObjects
}
