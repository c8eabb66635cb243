package sink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/de-tools/boxoffice-atlas/pkg/models/domain"
)

const (
	DefaultRegion    = "us-east-1"
	DefaultObjectKey = "README.md"

	markdownContentType = "text/markdown; charset=utf-8"
)

// ObjectPutter is the subset of the S3 client the sink needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads the document as a single object, overwriting the previous version.
type S3Sink struct {
	client ObjectPutter
	bucket string
	key    string
}

func NewS3Sink(client ObjectPutter, bucket, key string) *S3Sink {
	if key == "" {
		key = DefaultObjectKey
	}
	return &S3Sink{client: client, bucket: bucket, key: key}
}

// NewS3SinkFromConfig resolves credentials through the default AWS chain,
// optionally pinned to a shared config profile.
func NewS3SinkFromConfig(ctx context.Context, cfg domain.OutputConfig) (*S3Sink, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithDefaultRegion(DefaultRegion),
	}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewS3Sink(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Key), nil
}

func (s *S3Sink) Write(ctx context.Context, doc []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(doc),
		ContentType: aws.String(markdownContentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload s3://%s/%s: %w", s.bucket, s.key, err)
	}
	return nil
}

func (s *S3Sink) String() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}
