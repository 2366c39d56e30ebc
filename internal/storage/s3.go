package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/localskill/marketplace-api/internal/config"
)

type S3Uploader struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
}

func NewS3Uploader(cfg *config.Config) *S3Uploader {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	return &S3Uploader{
		client:  client,
		bucket:  cfg.S3Bucket,
		region:  cfg.S3Region,
		baseURL: strings.TrimSuffix(cfg.S3PublicBaseURL, "/"),
	}
}

// Enabled reports whether object storage is configured for this deployment.
func (u *S3Uploader) Enabled() bool {
	return u != nil && u.bucket != ""
}

// Upload stores the object and returns its public URL.
func (u *S3Uploader) Upload(
	ctx context.Context,
	key string,
	contentType string,
	body io.Reader,
) (string, error) {

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	if u.baseURL != "" {
		return u.baseURL + "/" + key, nil
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
