package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/viewkit-go/viewkit/internal/errors"
	"github.com/viewkit-go/viewkit/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
		keep   int
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a rendered snapshot to S3",
		Long: `Publish renders the tree and uploads the document to S3 under a
timestamped key, then prunes snapshots beyond the configured keep
count. Credentials come from the standard AWS environment.

Examples:
  viewkit publish
  viewkit publish --bucket=my-bucket --prefix=previews/
  viewkit publish --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(bucket, prefix, region, keep, list)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from viewkit.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from viewkit.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from viewkit.json)")
	cmd.Flags().IntVar(&keep, "keep", 0, "Snapshots to retain (default from viewkit.json)")
	cmd.Flags().BoolVar(&list, "list", false, "List published snapshots instead of publishing")

	return cmd
}

func runPublish(bucket, prefix, region string, keep int, list bool) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}

	if bucket == "" {
		bucket = proj.cfg.Publish.Bucket
	}
	if prefix == "" {
		prefix = proj.cfg.Publish.Prefix
	}
	if region == "" {
		region = proj.cfg.Publish.Region
	}
	if keep == 0 {
		keep = proj.cfg.Publish.Keep
	}
	if bucket == "" {
		return errors.New("E061").
			WithDetail("no publish bucket configured").
			WithSuggestion("Set publish.bucket in viewkit.json or pass --bucket")
	}

	name := proj.cfg.Name
	if name == "" {
		name = "viewkit"
	}

	// Credentials come from the standard AWS environment variables; this
	// keeps the CLI off the full aws config loader.
	client := s3.New(s3.Options{
		Region: region,
		Credentials: aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
				SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			}, nil
		}),
	})
	pub := publish.NewPublisher(client, bucket, prefix, slog.Default())

	ctx := context.Background()

	if list {
		snaps, err := pub.List(ctx, name)
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			info("No snapshots published for %s", name)
			return nil
		}
		for _, s := range snaps {
			fmt.Printf("  %s  %8d  %s\n", s.Modified.Format("2006-01-02 15:04:05"), s.Size, s.Key)
		}
		return nil
	}

	html, err := proj.buildDocument()
	if err != nil {
		errorMsg("Render failed")
		return err
	}

	key, err := pub.PublishSnapshot(ctx, name, html)
	if err != nil {
		return err
	}
	success("Published s3://%s/%s", bucket, key)

	deleted, err := pub.Cleanup(ctx, name, keep)
	if err != nil {
		warn("Cleanup failed: %s", err)
		return nil
	}
	if deleted > 0 {
		info("Pruned %d old snapshot(s)", deleted)
	}
	return nil
}
