// Package storage keeps uploaded payment proofs. The backend is chosen by the
// scheme of STORAGE_URL: s3://<bucket> talks to Backblaze B2 (or any
// S3-compatible endpoint) and memory://<bucket> keeps files in process.
package storage

import (
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/usecase/interfaces"
)

var (
	ErrUnknownScheme = errors.New("unknown storage scheme")
	ErrMissingBucket = errors.New("storage url has no bucket")
)

var (
	_ interfaces.IProofStorage = (*S3Store)(nil)
	_ interfaces.IProofStorage = (*MemoryStore)(nil)
)

const defaultMemoryBucket = "local"

// NewStore builds the proof store described by cfg.URL.
func NewStore(ctx context.Context, cfg config.StorageConfig) (interfaces.IProofStorage, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse storage url %q", cfg.URL)
	}

	switch u.Scheme {
	case "memory":
		bucket := u.Host
		if bucket == "" {
			bucket = defaultMemoryBucket
		}
		return NewMemoryStore(cfg.PublicBaseURL, bucket), nil
	case "s3":
		if u.Host == "" {
			return nil, ErrMissingBucket
		}
		return NewS3Store(ctx, cfg, u.Host)
	default:
		return nil, errors.Wrap(ErrUnknownScheme, u.Scheme)
	}
}

// publicURL joins base, bucket and object path, the layout B2 uses for public buckets.
func publicURL(base, bucket, path string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + strings.TrimLeft(path, "/")
}
