package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"

	"techlympics-stats/config"
	"techlympics-stats/models"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks techlympics-stats/storage Archiver,ObjectPutter

// Archiver stores a built report and returns where it was put.
type Archiver interface {
	Archive(ctx context.Context, report *models.Report) (string, error)
}

// ObjectPutter is the part of the S3 API the archiver uses.
type ObjectPutter interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

type S3Archiver struct {
	client ObjectPutter
	bucket string
	region string
	prefix string
}

// NewS3Archiver creates an archiver for cfg. Static credentials are used when
// both keys are set, otherwise the default AWS credential chain applies.
func NewS3Archiver(cfg config.Archive) (*S3Archiver, error) {
	if !cfg.Enabled() {
		return nil, errors.New("archive bucket not configured")
	}
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, errors.Wrap(err, "create AWS session")
	}
	return NewS3ArchiverWithClient(s3.New(sess), cfg.Bucket, cfg.Region, cfg.Prefix), nil
}

func NewS3ArchiverWithClient(client ObjectPutter, bucket, region, prefix string) *S3Archiver {
	return &S3Archiver{client: client, bucket: bucket, region: region, prefix: prefix}
}

// Key is the object key a report is stored under.
func (a *S3Archiver) Key(report *models.Report) string {
	return path.Join(a.prefix, string(report.Kind), report.ID+".json")
}

func (a *S3Archiver) Archive(ctx context.Context, report *models.Report) (string, error) {
	body, err := json.Marshal(report)
	if err != nil {
		return "", errors.Wrap(err, "encode report")
	}
	key := a.Key(report)
	_, err = a.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", errors.Wrapf(err, "upload report to s3://%s/%s", a.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, key), nil
}
