// Package publish uploads rendered document snapshots to S3 so a tree's
// output can be shared or diffed outside the local preview server.
package publish

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the slice of the S3 client the publisher needs. *s3.Client
// satisfies it; tests substitute a fake.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Snapshot describes one published document.
type Snapshot struct {
	Key      string
	Size     int64
	Modified time.Time
}

// Publisher writes snapshots under bucket/prefix/name/.
type Publisher struct {
	client S3API
	bucket string
	prefix string
	log    *slog.Logger

	// now is replaceable in tests.
	now func() time.Time
}

// NewPublisher creates a publisher. prefix may be empty; a trailing slash
// is added when missing.
func NewPublisher(client S3API, bucket, prefix string, logger *slog.Logger) *Publisher {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		log:    logger,
		now:    time.Now,
	}
}

// PublishSnapshot uploads the document HTML under a timestamped key and
// returns the key.
func (p *Publisher) PublishSnapshot(ctx context.Context, name, html string) (string, error) {
	key := fmt.Sprintf("%s%s/%s.html", p.prefix, name, p.now().UTC().Format("20060102T150405Z"))

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(html),
		ContentType: aws.String("text/html; charset=utf-8"),
		Metadata: map[string]string{
			"viewkit-project": name,
			"published-at":    p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", fmt.Errorf("publish %s: %w", key, err)
	}

	p.log.Info("snapshot published", "bucket", p.bucket, "key", key, "bytes", len(html))
	return key, nil
}

// List returns the project's snapshots, oldest first.
func (p *Publisher) List(ctx context.Context, name string) ([]Snapshot, error) {
	projectPrefix := p.prefix + name + "/"

	var snaps []Snapshot
	var token *string
	for {
		out, err := p.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(p.bucket),
			Prefix:            aws.String(projectPrefix),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", projectPrefix, err)
		}
		for _, obj := range out.Contents {
			snaps = append(snaps, snapshotFromObject(obj))
		}
		if out.IsTruncated == nil || !*out.IsTruncated {
			break
		}
		token = out.NextContinuationToken
	}

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].Modified.Before(snaps[j].Modified)
	})
	return snaps, nil
}

// Cleanup deletes the oldest snapshots beyond keep and returns how many
// were removed.
func (p *Publisher) Cleanup(ctx context.Context, name string, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	snaps, err := p.List(ctx, name)
	if err != nil {
		return 0, err
	}
	if len(snaps) <= keep {
		return 0, nil
	}

	stale := snaps[:len(snaps)-keep]
	deleted := 0
	for _, s := range stale {
		_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(p.bucket),
			Key:    aws.String(s.Key),
		})
		if err != nil {
			return deleted, fmt.Errorf("delete %s: %w", s.Key, err)
		}
		deleted++
	}

	p.log.Info("snapshots cleaned up", "project", name, "deleted", deleted, "kept", keep)
	return deleted, nil
}

func snapshotFromObject(obj s3types.Object) Snapshot {
	s := Snapshot{}
	if obj.Key != nil {
		s.Key = *obj.Key
	}
	if obj.Size != nil {
		s.Size = *obj.Size
	}
	if obj.LastModified != nil {
		s.Modified = *obj.LastModified
	}
	return s
}
