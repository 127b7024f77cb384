package attachments

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/radian/internal/client/config"
	"github.com/dmitrijs2005/radian/internal/client/models"
)

type fakePutter struct {
	got  *s3.PutObjectInput
	body string
	Err  error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	f.got = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func s3Config() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.S3BaseEndpoint = "http://127.0.0.1:9000"
	cfg.S3Bucket = "radian"
	return cfg
}

func TestNewS3Store_AppliesConfig(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		require.Equal(t, "us-east-1", lo.Region)
		creds, err := lo.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		require.Equal(t, "admin", creds.AccessKeyID)
		return aws.Config{Region: lo.Region, Credentials: lo.Credentials}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return s3.NewFromConfig(cfg, optFns...)
	}

	store, err := NewS3Store(context.Background(), s3Config())
	require.NoError(t, err)
	require.NotNil(t, store)
	require.Equal(t, "http://127.0.0.1:9000", aws.ToString(opts.BaseEndpoint))
	require.True(t, opts.UsePathStyle)
}

func TestNewS3Store_ConfigError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no creds")
	}

	_, err := NewS3Store(context.Background(), s3Config())
	require.ErrorContains(t, err, "aws config")
}

func TestS3Store_Put(t *testing.T) {
	p := writeFile(t, "cv.pdf", "%PDF-1.4 body")
	a, err := Inspect(p)
	require.NoError(t, err)

	fp := &fakePutter{}
	store := &S3Store{bucket: "radian", client: fp}

	key, err := store.Put(context.Background(), a)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(key, "/cv.pdf"))
	require.Equal(t, "radian", aws.ToString(fp.got.Bucket))
	require.Equal(t, key, aws.ToString(fp.got.Key))
	require.Equal(t, "application/pdf", aws.ToString(fp.got.ContentType))
	require.Equal(t, "%PDF-1.4 body", fp.body)
}

func TestS3Store_PutError(t *testing.T) {
	p := writeFile(t, "cv.pdf", "%PDF-1.4")
	store := &S3Store{bucket: "radian", client: &fakePutter{Err: errors.New("denied")}}

	_, err := store.Put(context.Background(), &models.Attachment{Name: "cv.pdf", Path: p, Size: 8})
	require.ErrorContains(t, err, "upload attachment")
}

func TestS3Store_LocatePresignsGet(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			_ = fn(&lo)
		}
		return aws.Config{Region: lo.Region, Credentials: lo.Credentials}, nil
	}

	store, err := NewS3Store(context.Background(), s3Config())
	require.NoError(t, err)

	url, err := store.Locate(context.Background(), "abc/cv.pdf")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://127.0.0.1:9000/radian/abc/cv.pdf?"), url)
	require.Contains(t, url, "X-Amz-Signature=")
}
