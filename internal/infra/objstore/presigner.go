package objstore

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/ttsbooking/consult-platform/internal/config"
)

// AvatarPresigner hands out short-lived PUT URLs so avatar uploads go
// straight to object storage instead of through the API.
type AvatarPresigner struct {
	presign *s3.PresignClient
	bucket  string
}

func NewAvatarPresigner(cfg *config.Config) (*AvatarPresigner, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			if cfg.S3Endpoint == "" {
				return aws.Endpoint{}, &aws.EndpointNotFoundError{}
			}
			return aws.Endpoint{
				URL:               cfg.S3Endpoint,
				SigningRegion:     region,
				HostnameImmutable: true,
			}, nil
		})

	awsCfg, err := awsconfig.LoadDefaultConfig(
		context.TODO(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3UsePathStyle
	})

	return &AvatarPresigner{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.S3Bucket,
	}, nil
}

func (p *AvatarPresigner) UploadURL(ctx context.Context, consultantID uint) (string, string, error) {
	key := fmt.Sprintf("avatars/consultant-%d", consultantID)

	req, err := p.presign.PresignPutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket: aws.String(p.bucket),
			Key:    aws.String(key),
		},
		func(opts *s3.PresignOptions) {
			opts.Expires = 15 * time.Minute
		},
	)
	if err != nil {
		return "", "", err
	}

	return req.URL, key, nil
}
