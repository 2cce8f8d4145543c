package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ObjectAPI is the part of *s3.Client used by S3Keeper.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Options describes an S3-compatible endpoint with static credentials
// (MinIO root user/password in development).
type S3Options struct {
	User     string
	Password string
	Region   string
	Endpoint string
}

var loadDefaultAWSConfig = config.LoadDefaultConfig

// NewS3Client builds a path-style S3 client for the given endpoint.
func NewS3Client(ctx context.Context, o S3Options) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(o.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(o.User, o.Password, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(so *s3.Options) {
		if o.Endpoint != "" {
			so.BaseEndpoint = aws.String(o.Endpoint)
		}
		so.UsePathStyle = true
	}), nil
}

// S3Keeper implements Keeper with one object per key in a bucket.
type S3Keeper struct {
	client ObjectAPI
	bucket string
}

func NewS3Keeper(client ObjectAPI, bucket string) *S3Keeper {
	return &S3Keeper{client: client, bucket: bucket}
}

func (k *S3Keeper) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := k.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(k.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return b, nil
}

func (k *S3Keeper) Set(ctx context.Context, key string, value []byte) error {
	_, err := k.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(k.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

func (k *S3Keeper) Delete(ctx context.Context, key string) error {
	_, err := k.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(k.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// Update is a plain get-then-put; concurrent writers race and the last
// put wins.
func (k *S3Keeper) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	current, err := k.Get(ctx, key)
	if err != nil {
		return err
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	return k.Set(ctx, key, next)
}
