package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/gpavan11/snap-chef/config"
)

// ImageService stores uploaded food photos in S3. A nil S3 config disables
// storage; uploads then return an empty URL without error.
type ImageService struct {
	s3Config *config.S3Config
}

// NewImageService creates a new ImageService instance.
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{s3Config: s3Config}
}

// Enabled reports whether photo storage is configured.
func (s *ImageService) Enabled() bool {
	return s != nil && s.s3Config != nil
}

// UploadFoodImage stores the photo under uploads/<uuid>.<ext> and returns a
// presigned URL for it.
func (s *ImageService) UploadFoodImage(ctx context.Context, data []byte, mime string) (string, error) {
	if !s.Enabled() {
		return "", nil
	}

	key := fmt.Sprintf("uploads/%s%s", uuid.New().String(), extensionFor(mime))
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mime),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	url, err := s.s3Config.GeneratePresignedURL(ctx, key, 24*time.Hour)
	if err != nil {
		// The object is stored; a URL failure is not worth failing the upload.
		log.Printf("[ImageService] presign %s failed: %v", key, err)
		return "", nil
	}
	return url, nil
}

func extensionFor(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
