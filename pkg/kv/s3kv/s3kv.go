// Package s3kv is the cloud object store backend. Each key is one object in
// a bucket. It works against AWS S3 and S3-compatible stores such as
// Cloudflare R2.
package s3kv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/abhishek622/portfolioapp/pkg/kv"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"go.opentelemetry.io/otel"
)

const tracerID = "kv-backend-s3"

// Config holds the object store settings.
type Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"` // set for R2 or a custom S3 endpoint
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Prefix    string `yaml:"prefix"`
}

// Backend stores values as S3 objects.
type Backend struct {
	client *s3.S3
	bucket string
	prefix string
}

// New creates an S3 backend.
func New(cfg Config) (*Backend, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}
	region := cfg.Region
	if region == "" {
		region = "auto"
	}
	awsConfig := &aws.Config{Region: aws.String(region)}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("create s3 session: %w", err)
	}
	return &Backend{client: s3.New(sess), bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (b *Backend) objectKey(key string) string {
	return b.prefix + key + ".json"
}

// Read downloads the object stored under key.
func (b *Backend) Read(ctx context.Context, key string) ([]byte, error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Backend/Read")
	defer span.End()

	out, err := b.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.objectKey(key)),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	defer out.Body.Close()

	value, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s body: %w", key, err)
	}
	return value, nil
}

// Write uploads value as the object for key.
func (b *Backend) Write(ctx context.Context, key string, value []byte) error {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Backend/Write")
	defer span.End()

	_, err := b.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(b.objectKey(key)),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
