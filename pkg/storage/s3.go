package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Service uploads application attachments (pitch decks, media kits) to S3.
type Service struct {
	s3Client *s3.Client
	bucket   string
	region   string
}

// Config holds storage configuration
type Config struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	S3Bucket           string
}

// NewService creates a new storage service
func NewService(cfg Config) (*Service, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Service{
		s3Client: s3.NewFromConfig(awsCfg),
		bucket:   cfg.S3Bucket,
		region:   cfg.AWSRegion,
	}, nil
}

// UploadPDF stores a PDF under applications/{uuid}/{kind}.pdf and returns
// its object URL.
func (s *Service) UploadPDF(ctx context.Context, kind string, body io.Reader, size int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	key := fmt.Sprintf("applications/%s/%s.pdf", uuid.NewString(), kind)

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", kind, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
