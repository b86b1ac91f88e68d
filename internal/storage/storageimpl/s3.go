package storageimpl

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/orgball2608/tumblr-likes-archiver/internal/awsconf"
	"github.com/orgball2608/tumblr-likes-archiver/internal/domain"
	"github.com/orgball2608/tumblr-likes-archiver/internal/storage"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads files as objects of one bucket.
type S3Sink struct {
	client putObjectAPI
	bucket string
	logger logger.Logger
}

func NewS3(opts Opts) (*S3Sink, error) {
	awsCfg, err := awsconf.Load(context.Background(), opts.Config)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Config.AWS.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Config.AWS.S3Endpoint)
		}
		o.UsePathStyle = opts.Config.AWS.S3UsePathStyle
	})

	return newS3(client, opts.Config.AWS.Bucket, opts.Logger), nil
}

func newS3(client putObjectAPI, bucket string, log logger.Logger) *S3Sink {
	return &S3Sink{
		client: client,
		bucket: bucket,
		logger: log.WithComponent("S3Sink"),
	}
}

var _ storage.Sink = (*S3Sink)(nil)

func (s *S3Sink) Store(ctx context.Context, body []byte, meta domain.StoredFileMeta) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(meta.Name),
		Body:   bytes.NewReader(body),
	}
	if meta.ContentType != "" {
		input.ContentType = aws.String(meta.ContentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", errors.Storage(err, "failed to upload "+meta.Name)
	}

	s.logger.Debug("Object uploaded", "bucket", s.bucket, "key", meta.Name, "bytes", len(body))
	return fmt.Sprintf("Saved to S3: %s", meta.Name), nil
}
