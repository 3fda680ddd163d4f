package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/unsaid/internal/common"
	sc "github.com/dmitrijs2005/unsaid/internal/server/config"
	"github.com/google/uuid"
)

// PresignExpiry is how long a presigned voice-note URL stays valid.
const PresignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) error {
		_, err := c.DeleteObject(ctx, in)
		return err
	}
)

// AudioService hands out presigned S3 URLs for voice notes. The bytes go
// straight between the client and the bucket.
type AudioService struct {
	config *sc.Config
}

func NewAudioService(cfg *sc.Config) *AudioService {
	return &AudioService{config: cfg}
}

// ObjectKey is where a user's voice note lives in the bucket.
func ObjectKey(userID, audioID string) string {
	return fmt.Sprintf("audio/%s/%s", userID, audioID)
}

func (s *AudioService) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

func checkAudioID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorValidation
	}
	return nil
}

// PresignUpload returns a PUT URL for the voice note. An empty audioID gets
// a fresh one, which is returned alongside the URL.
func (s *AudioService) PresignUpload(ctx context.Context, userID, audioID string) (string, string, error) {
	if audioID == "" {
		audioID = uuid.NewString()
	} else if err := checkAudioID(audioID); err != nil {
		return "", "", err
	}

	c, err := s.client(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := ObjectKey(userID, audioID)
	req, err := presignPutObject(s3.NewPresignClient(c), ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", "", err
	}
	return audioID, req.URL, nil
}

func (s *AudioService) PresignDownload(ctx context.Context, userID, audioID string) (string, error) {
	if err := checkAudioID(audioID); err != nil {
		return "", err
	}

	c, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	key := ObjectKey(userID, audioID)
	req, err := presignGetObject(s3.NewPresignClient(c), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *AudioService) Delete(ctx context.Context, userID, audioID string) error {
	if err := checkAudioID(audioID); err != nil {
		return err
	}
	c, err := s.client(ctx)
	if err != nil {
		return err
	}
	bucket := s.config.S3Bucket
	key := ObjectKey(userID, audioID)
	return deleteObject(c, ctx, &s3.DeleteObjectInput{Bucket: &bucket, Key: &key})
}
