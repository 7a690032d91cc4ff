package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Store saves binary objects and returns their public URLs.
type Store interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// S3Store uploads objects to a single bucket with public-read ACL, mirroring
// how the admin panel's image bucket is set up.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3 builds an S3Store using the default AWS credential chain. baseURL
// overrides the public URL prefix; empty means the standard
// https://<bucket>.s3.amazonaws.com form.
func NewS3(ctx context.Context, region, bucket, baseURL string) (*S3Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is not configured")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}

	return &S3Store{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awssdk.String(s.bucket),
		Key:         awssdk.String(key),
		Body:        body,
		ACL:         types.ObjectCannedACLPublicRead,
		ContentType: awssdk.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return s.baseURL + "/" + key, nil
}
