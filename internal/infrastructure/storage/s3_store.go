package storage

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/config"
	"github.com/Vinicios-DRH/iap-convencao-amazonica/internal/infrastructure/logger"
)

// Uploader is the part of *manager.Uploader the store needs.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

var _ Uploader = (*manager.Uploader)(nil)

// S3Store writes proofs to an S3-compatible bucket.
type S3Store struct {
	uploader   Uploader
	bucket     string
	publicBase string
	log        *logrus.Entry
}

// NewS3Store configures a path-style client with static B2 application keys.
func NewS3Store(_ context.Context, cfg config.StorageConfig, bucket string) (*S3Store, error) {
	if cfg.KeyID == "" || cfg.ApplicationKey == "" {
		return nil, errors.New("B2_KEY_ID and B2_APPLICATION_KEY are required for s3 storage")
	}

	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.KeyID, cfg.ApplicationKey, ""),
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
		// B2 rejects the SDK's default flexible checksums.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	return NewS3StoreWithUploader(manager.NewUploader(client), bucket, cfg.PublicBaseURL), nil
}

func NewS3StoreWithUploader(up Uploader, bucket, publicBase string) *S3Store {
	return &S3Store{
		uploader:   up,
		bucket:     bucket,
		publicBase: publicBase,
		log:        logger.For("storage").WithField("bucket", bucket),
	}
}

func (s *S3Store) Put(ctx context.Context, path, contentType string, body io.Reader, size int64) error {
	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		in.ContentLength = aws.Int64(size)
	}
	if _, err := s.uploader.Upload(ctx, in); err != nil {
		return errors.Wrapf(err, "upload %s", path)
	}
	s.log.WithFields(logrus.Fields{"path": path, "size": size}).Info("proof uploaded")
	return nil
}

func (s *S3Store) URL(path string) string {
	return publicURL(s.publicBase, s.bucket, path)
}
