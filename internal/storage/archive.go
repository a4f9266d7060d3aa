// Package storage keeps copies of generated reports outside the database.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/studio-manager/internal/config"
)

type Archiver interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

// ReportKey is where a report for an account is archived.
func ReportKey(accountID uint, filename string) string {
	return path.Join("reports", strconv.FormatUint(uint64(accountID), 10), path.Base(filename))
}

// ======================================================
// S3
// ======================================================

type S3Archiver struct {
	client *s3.Client
	bucket string
}

// NewS3Archiver builds a client from static credentials. A custom
// endpoint switches to path-style addressing for S3-compatible stores.
func NewS3Archiver(cfg config.S3Config) *S3Archiver {
	awsCfg := aws.Config{
		Region: cfg.Region,
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Archiver{client: client, bucket: cfg.Bucket}
}

func (a *S3Archiver) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", key, err)
	}
	return nil
}

// ======================================================
// NOP
// ======================================================

type NopArchiver struct{}

func (NopArchiver) Put(context.Context, string, string, []byte) error { return nil }

// New picks the archiver the configuration asks for.
func New(cfg config.S3Config) Archiver {
	if !cfg.Enabled() {
		return NopArchiver{}
	}
	return NewS3Archiver(cfg)
}
