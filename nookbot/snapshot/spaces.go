package snapshot

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Spaces mirrors snapshot files into an S3-compatible DigitalOcean Spaces
// bucket so a lost disk does not mean a lost ledger. Uploads are
// best-effort; the local file is always the source of truth.
type Spaces struct {
	client *s3.Client
	bucket string
	region string
	root   string
}

func NewSpaces(key, secret, region, bucket, root string) (*Spaces, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load Spaces config: %w", err)
	}

	return &Spaces{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
		root:   strings.Trim(root, "/"),
	}, nil
}

// Upload copies one local snapshot file into the bucket under the
// configured root.
func (s *Spaces) Upload(ctx context.Context, localPath string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open snapshot for upload: %w", err)
	}
	defer f.Close()

	key := path.Join(s.root, filepath.Base(localPath))
	contentType := "application/json"
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        f,
		ContentType: &contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot to %s/%s: %w", s.bucket, key, err)
	}
	return nil
}

// Bucket returns the configured bucket name.
func (s *Spaces) Bucket() string {
	return s.bucket
}

// Region returns the configured region.
func (s *Spaces) Region() string {
	return s.region
}
