package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/hay-kot/criterio"
)

var errRequired = errors.New("is required")

// Validate checks that the selected backend is fully configured.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("backend", string(c.Backend), validBackend),
		criterio.Run("namespace", c.Namespace, required),
		c.validateBackend(),
	)
}

func (c *Config) validateBackend() error {
	switch c.Backend {
	case BackendFile:
		return criterio.Run("file.root", c.File.Root, required)
	case BackendS3:
		var errs criterio.FieldErrorsBuilder

		if err := validEndpoint(c.S3.Endpoint); err != nil {
			errs = errs.Append("s3.endpoint", err)
		}

		if c.S3.Region == "" {
			errs = errs.Append("s3.region", errRequired)
		}

		// Credentials come as a pair or not at all, in which case the
		// default AWS credential chain applies.
		if (c.S3.AccessKey == "") != (c.S3.SecretKey == "") {
			errs = errs.Append("s3.secret_key", errors.New("access_key and secret_key must be set together"))
		}

		return errs.ToError()
	default:
		return nil
	}
}

func validBackend(backend string) error {
	switch Backend(backend) {
	case BackendMemory, BackendFile, BackendS3:
		return nil
	default:
		return fmt.Errorf("unknown backend %q, expected one of: memory, file, s3", backend)
	}
}

func required(value string) error {
	if value == "" {
		return errRequired
	}

	return nil
}

// validEndpoint accepts an empty endpoint, meaning the AWS default.
func validEndpoint(endpoint string) error {
	if endpoint == "" {
		return nil
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("missing host")
	}

	return nil
}
