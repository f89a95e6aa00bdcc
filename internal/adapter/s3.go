package adapter

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/ar-fit/internal/config"
	"github.com/MKhiriev/ar-fit/internal/logger"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// objectPutter is the part of *s3.Client the sink needs.
type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads exports to an S3-compatible bucket. Object keys are the
// configured prefix, a UTC timestamp and the export name, so earlier
// exports are never overwritten.
type S3Sink struct {
	client objectPutter
	bucket string
	prefix string
	now    func() time.Time

	logger *logger.Logger
}

// NewS3Sink builds the client from cfg. Static credentials are used when
// both keys are set, the default AWS credential chain otherwise. A custom
// Endpoint (MinIO) switches to path-style addressing.
func NewS3Sink(ctx context.Context, cfg config.S3, logger *logger.Logger) (*S3Sink, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%w: s3 bucket is not configured", ErrInvalidDestination)
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Sink(client, cfg, time.Now, logger), nil
}

func newS3Sink(client objectPutter, cfg config.S3, now func() time.Time, logger *logger.Logger) *S3Sink {
	return &S3Sink{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		now:    now,
		logger: logger,
	}
}

func (s *S3Sink) Put(ctx context.Context, name string, data []byte) (string, error) {
	key := path.Join(s.prefix, s.now().UTC().Format("20060102T150405Z")+"-"+name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String("application/json"),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		s.logger.Err(err).Str("func", "S3Sink.Put").Str("bucket", s.bucket).Str("key", key).Msg("error uploading export")
		return "", fmt.Errorf("upload export to s3: %w", err)
	}

	location := fmt.Sprintf("s3://%s/%s", s.bucket, key)
	s.logger.Info().Str("location", location).Int("bytes", len(data)).Msg("export uploaded")
	return location, nil
}
