// Package s3 implements mediastore.MediaStore on an S3-compatible bucket
// (Cloudflare R2) fronted by a public CDN domain.
package s3

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/nbeaumont/folio/internal/domain"
	"github.com/nbeaumont/folio/internal/mediastore"
)

// Config carries the R2 account and bucket settings.
type Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	// Folder is the key prefix all assets are stored under.
	Folder string
	// CDNDomain is the public host serving the bucket, without scheme.
	CDNDomain string
}

type Store struct {
	client *s3.Client
	cfg    Config
}

// New builds an R2-backed store. The underlying HTTP client uses a 30s
// timeout so a hung media host cannot stall requests indefinitely.
func New(ctx context.Context, cfg Config) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithBaseEndpoint("https://"+cfg.AccountID+".r2.cloudflarestorage.com"),
		awsconfig.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load media host config: %w", err)
	}

	return &Store{client: s3.NewFromConfig(awsCfg), cfg: cfg}, nil
}

// Upload stores the asset under a fresh key and returns its public URL plus
// the handle needed to delete it. The format must be on the allow-list;
// nothing is sent over the network otherwise.
func (s *Store) Upload(ctx context.Context, r io.Reader, kind mediastore.Kind, format string) (*mediastore.Asset, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if !mediastore.AllowedFormats[format] {
		return nil, &domain.UnsupportedFormatError{Format: format}
	}

	handle := uuid.NewString() + "." + format
	key := s.objectKey(handle, kind)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentTypeFor(format)),
	})
	if err != nil {
		return nil, &domain.MediaError{Op: "upload", Err: err}
	}

	return &mediastore.Asset{
		URL:            s.publicURL(key),
		DeletionHandle: handle,
	}, nil
}

// Delete removes the asset the handle was issued for. Object keys are
// namespaced by kind, so a delete with the wrong kind resolves to a key that
// does not exist; S3 reports success for missing keys, which keeps cleanup
// idempotent but also means a misclassified delete is a silent no-op.
func (s *Store) Delete(ctx context.Context, deletionHandle string, kind mediastore.Kind) error {
	key := s.objectKey(deletionHandle, kind)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return &domain.MediaError{Op: "delete", Err: err}
	}
	return nil
}

func (s *Store) objectKey(handle string, kind mediastore.Kind) string {
	return path.Join(s.cfg.Folder, string(kind), handle)
}

func (s *Store) publicURL(key string) string {
	return "https://" + s.cfg.CDNDomain + "/" + key
}

func contentTypeFor(format string) string {
	switch format {
	case "glb":
		return "model/gltf-binary"
	case "gltf":
		return "model/gltf+json"
	default:
		if ct := mime.TypeByExtension("." + format); ct != "" {
			return ct
		}
		return "application/octet-stream"
	}
}
