package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader stores a file under a folder and returns its public URL.
// Handlers depend on this interface so tests can substitute a fake.
type Uploader interface {
	Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error)
}

// Unconfigured is the Uploader used when no bucket is configured; every
// upload fails with a clear error instead of a nil panic.
type Unconfigured struct{}

func (Unconfigured) Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error) {
	return "", fmt.Errorf("media storage not configured")
}

// Config holds settings for an S3-compatible media store.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	Endpoint        string // custom endpoint for Wasabi/MinIO; empty for AWS
	PublicBaseURL   string // base URL for public object links; derived when empty
}

// MediaStore uploads files to an S3-compatible bucket and hands back
// public URLs. The bucket is expected to be readable anonymously.
type MediaStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewMediaStore(ctx context.Context, cfg Config) (*MediaStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String("https://" + strings.TrimPrefix(cfg.Endpoint, "https://"))
			o.UsePathStyle = true
		}
	})

	base := cfg.PublicBaseURL
	if base == "" {
		if cfg.Endpoint != "" {
			base = fmt.Sprintf("https://%s/%s", strings.TrimPrefix(cfg.Endpoint, "https://"), cfg.Bucket)
		} else {
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}

	return &MediaStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(base, "/"),
	}, nil
}

// Upload writes the file under folder/<nanos>_<sanitized name> and
// returns the public URL of the stored object.
func (m *MediaStore) Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%d_%s", folder, time.Now().UnixNano(), SanitizeFilename(filename))

	_, err := m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage upload failed: %w", err)
	}

	return m.publicBaseURL + "/" + key, nil
}

// SanitizeFilename strips non-ASCII characters and replaces spaces with
// underscores. Object stores reject or mangle non-ASCII keys.
func SanitizeFilename(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := strings.TrimSuffix(filename, filepath.Ext(filename))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" {
		out = "file"
	}
	return out + ext
}
