package storage

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"

	"github.com/mailcanvas/mailcanvas/interfaces"
	"github.com/mailcanvas/mailcanvas/services/storage/aws_client"
)

// NewR2StorageService builds a StorageService backed by Cloudflare R2
// through its S3-compatible endpoint.
func NewR2StorageService(accountID, accessKey, secretKey, bucket, cdnDomain string) (interfaces.StorageService, error) {
	if accountID == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("missing R2 credentials")
	}
	if bucket == "" {
		return nil, fmt.Errorf("missing R2 bucket")
	}

	config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)),
		Region:           aws.String("auto"),
		S3ForcePathStyle: aws.Bool(true),
	}

	return &ObjectStorageService{
		client:    aws_client.NewS3Client(config),
		bucket:    bucket,
		cdnDomain: cdnDomain,
	}, nil
}

// NewS3StorageService builds a StorageService backed by AWS S3.
func NewS3StorageService(region, accessKey, secretKey, bucket, cdnDomain string) (interfaces.StorageService, error) {
	if region == "" || bucket == "" {
		return nil, fmt.Errorf("missing S3 configuration")
	}

	config := &aws.Config{
		Region: aws.String(region),
	}
	if accessKey != "" && secretKey != "" {
		config.Credentials = credentials.NewStaticCredentials(accessKey, secretKey, "")
	}

	return &ObjectStorageService{
		client:    aws_client.NewS3Client(config),
		bucket:    bucket,
		cdnDomain: cdnDomain,
	}, nil
}
