package s3_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvns/driver"
	kvs3 "github.com/tarantool/go-kvns/driver/s3"
	"github.com/tarantool/go-kvns/internal/testing/drivertest"
)

// TestDriver_Integration runs the parity suite against a live endpoint,
// e.g. a local MinIO, named by KVNS_S3_ENDPOINT.
func TestDriver_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	endpoint := os.Getenv("KVNS_S3_ENDPOINT")
	if endpoint == "" {
		t.Skip("KVNS_S3_ENDPOINT is not set")
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(envOr("KVNS_S3_REGION", "us-east-1")),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			envOr("KVNS_S3_ACCESS_KEY", "minioadmin"),
			envOr("KVNS_S3_SECRET_KEY", "minioadmin"),
			"",
		)),
	)
	require.NoError(t, err)

	client := awss3.NewFromConfig(cfg, func(o *awss3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	drivertest.Run(t, func(_ *testing.T) driver.Provider {
		return &prefixedProvider{
			store:  kvs3.New(client, kvs3.WithRegion(cfg.Region)),
			prefix: "kvns-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12] + "-",
		}
	}, drivertest.Config{StaleCursorEndsListing: false})
}

// prefixedProvider keeps every test in its own set of buckets.
type prefixedProvider struct {
	store  *kvs3.Store
	prefix string
}

func (p *prefixedProvider) Namespace(name string) driver.Driver {
	return p.store.Namespace(p.prefix + name)
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}

	return fallback
}
