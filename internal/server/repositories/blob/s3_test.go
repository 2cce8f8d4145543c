package blob

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	objects map[string][]byte
	err     error

	lastBucket      string
	lastContentType string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}}
}

func (f *fakeObjects) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastBucket = aws.ToString(in.Bucket)
	b, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeObjects) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.lastBucket = aws.ToString(in.Bucket)
	f.lastContentType = aws.ToString(in.ContentType)
	f.objects[aws.ToString(in.Key)] = b
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Keeper_SetGetDelete(t *testing.T) {
	f := newFakeObjects()
	k := NewS3Keeper(f, "registre")
	ctx := context.Background()

	require.NoError(t, k.Set(ctx, "registre_nominal_users", []byte(`[]`)))
	assert.Equal(t, "registre", f.lastBucket)
	assert.Equal(t, "application/json", f.lastContentType)

	v, err := k.Get(ctx, "registre_nominal_users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), v)

	require.NoError(t, k.Delete(ctx, "registre_nominal_users"))

	v, err = k.Get(ctx, "registre_nominal_users")
	require.NoError(t, err)
	assert.Nil(t, v, "missing object reads as absent")
}

func TestS3Keeper_Update(t *testing.T) {
	f := newFakeObjects()
	k := NewS3Keeper(f, "b")
	ctx := context.Background()

	require.NoError(t, k.Update(ctx, "k", func(cur []byte) ([]byte, error) {
		assert.Nil(t, cur)
		return []byte("one"), nil
	}))
	require.NoError(t, k.Update(ctx, "k", func(cur []byte) ([]byte, error) {
		assert.Equal(t, []byte("one"), cur)
		return []byte("two"), nil
	}))
	assert.Equal(t, []byte("two"), f.objects["k"])

	boom := errors.New("boom")
	require.ErrorIs(t, k.Update(ctx, "k", func(cur []byte) ([]byte, error) { return nil, boom }), boom)
	assert.Equal(t, []byte("two"), f.objects["k"])
}

func TestS3Keeper_BackendErrorsAreWrapped(t *testing.T) {
	f := newFakeObjects()
	f.err = errors.New("connection refused")
	k := NewS3Keeper(f, "b")
	ctx := context.Background()

	_, err := k.Get(ctx, "k")
	assert.ErrorContains(t, err, "failed to get object k")
	assert.ErrorContains(t, k.Set(ctx, "k", nil), "failed to put object k")
	assert.ErrorContains(t, k.Delete(ctx, "k"), "failed to delete object k")
	assert.ErrorContains(t, k.Update(ctx, "k", func(cur []byte) ([]byte, error) { return cur, nil }), "connection refused")
}

func TestNewS3Client_UsesEndpoint(t *testing.T) {
	c, err := NewS3Client(context.Background(), S3Options{
		User: "admin", Password: "secret", Region: "us-east-1", Endpoint: "http://127.0.0.1:9000/",
	})
	require.NoError(t, err)

	opts := c.Options()
	assert.Equal(t, "http://127.0.0.1:9000/", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "us-east-1", opts.Region)
}

func TestNewS3Client_ConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("boom")
	}
	defer func() { loadDefaultAWSConfig = orig }()

	_, err := NewS3Client(context.Background(), S3Options{})
	assert.ErrorContains(t, err, "aws config: boom")
}
