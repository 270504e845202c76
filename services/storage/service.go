package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/log"

	"github.com/mailcanvas/mailcanvas/internal/tracing"
	"github.com/mailcanvas/mailcanvas/services/storage/aws_client"
)

// ObjectStorageService stores media assets in an S3-compatible bucket.
type ObjectStorageService struct {
	client    aws_client.S3Client
	bucket    string
	cdnDomain string
}

func (s *ObjectStorageService) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ObjectStorageService.Upload")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogFields(log.String("key", key), log.Int("size", len(data)))

	uploadInput := s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}

	err := s.client.Upload(ctx, uploadInput)
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

func (s *ObjectStorageService) Download(ctx context.Context, key string) ([]byte, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ObjectStorageService.Download")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogFields(log.String("key", key))

	data, err := s.client.Download(ctx, s.bucket, key)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return []byte(data), nil
}

func (s *ObjectStorageService) Delete(ctx context.Context, key string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ObjectStorageService.Delete")
	defer span.Finish()
	tracing.TagComponentService(span)
	span.LogFields(log.String("key", key))

	err := s.client.Delete(ctx, s.bucket, key)
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return nil
}

func (s *ObjectStorageService) GetPublicURL(key string) string {
	if s.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cdnDomain, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
