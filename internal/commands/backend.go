package commands

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tarantool/go-kvns/driver"
	"github.com/tarantool/go-kvns/driver/file"
	"github.com/tarantool/go-kvns/driver/memory"
	"github.com/tarantool/go-kvns/driver/s3"
	"github.com/tarantool/go-kvns/internal/config"
)

// OpenProvider builds the storage backend selected by cfg.
func OpenProvider(ctx context.Context, cfg *config.Config) (driver.Provider, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendFile:
		return file.New(cfg.File.Root), nil
	case config.BackendS3:
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}

		return s3.New(client, s3.WithRegion(cfg.S3.Region)), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// NewS3Client creates an S3 client for the configured endpoint.
// Without static credentials the default AWS credential chain is used.
func NewS3Client(ctx context.Context, cfg config.S3Config) (*awss3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}

		o.UsePathStyle = cfg.UsePathStyle
	})

	return client, nil
}
