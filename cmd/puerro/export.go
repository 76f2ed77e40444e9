package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/puerro-dev/puerro/internal/config"
	"github.com/puerro-dev/puerro/internal/dev"
	"github.com/puerro-dev/puerro/pkg/render"
)

func exportCmd() *cobra.Command {
	var (
		output string
		bucket string
		region string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the demo application to static HTML",
		Long: `Render the demo application to static HTML.

The exported page is the server-rendered initial state, written to the
output directory. With --bucket the export is also uploaded to S3.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Export.Output = output
			}
			if bucket != "" {
				cfg.Export.Bucket = bucket
			}
			if region != "" {
				cfg.Export.Region = region
			}

			app := dev.NewDemoApp()
			r := render.NewRenderer(render.RendererConfig{Pretty: cfg.Dev.Pretty})
			html, err := r.RenderToString(app.View(app.State))
			if err != nil {
				return err
			}

			if err := os.MkdirAll(cfg.Export.Output, 0o755); err != nil {
				return err
			}
			path := filepath.Join(cfg.Export.Output, "index.html")
			if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
				return err
			}
			success("wrote %s (%d bytes)", path, len(html))

			if cfg.Export.Bucket != "" {
				if err := uploadExport(cmd.Context(), cfg, []byte(html)); err != nil {
					return err
				}
				success("uploaded to s3://%s/index.html", cfg.Export.Bucket)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (overrides puerro.json)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket to upload the export to")
	cmd.Flags().StringVar(&region, "region", "", "AWS region for the bucket")

	return cmd
}

// uploadExport puts the rendered page into the configured S3 bucket.
// Credentials come from the standard AWS environment variables.
func uploadExport(ctx context.Context, cfg *config.Config, data []byte) error {
	region := cfg.Export.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}

	creds := aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		}, nil
	})

	client := s3.New(s3.Options{
		Region:      region,
		Credentials: creds,
	})

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(cfg.Export.Bucket),
		Key:         aws.String("index.html"),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	return err
}
