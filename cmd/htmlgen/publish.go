package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlgen/internal/config"
	"github.com/vango-dev/htmlgen/pkg/publish"
)

type publishOptions struct {
	bucket   string
	prefix   string
	source   string
	endpoint string
	assets   bool
}

func publishCmd(opts *globalOptions) *cobra.Command {
	po := publishOptions{}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render documents and upload them to S3",
		Long: `Render every document in the source directory and upload the pages
to an S3 bucket as <prefix>/<name>.html.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN. Use --endpoint for S3-compatible stores.

Examples:
  htmlgen publish --bucket=my-site
  htmlgen publish --bucket=docs --prefix=v2 --assets
  htmlgen publish --endpoint=http://localhost:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			applyPublishFlags(cfg, po)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runPublish(cmd, cfg, publish.NewS3Client(cfg.Publish), po.assets)
		},
	}

	cmd.Flags().StringVarP(&po.bucket, "bucket", "b", "", "Target bucket (default from htmlgen.json)")
	cmd.Flags().StringVar(&po.prefix, "prefix", "", "Key prefix (default from htmlgen.json)")
	cmd.Flags().StringVarP(&po.source, "source", "s", "", "Source directory (default from htmlgen.json)")
	cmd.Flags().StringVar(&po.endpoint, "endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().BoolVar(&po.assets, "assets", false, "Upload stylesheets, images and other files too")

	return cmd
}

// applyPublishFlags applies command-line overrides.
func applyPublishFlags(cfg *config.Config, po publishOptions) {
	if po.bucket != "" {
		cfg.Publish.Bucket = po.bucket
	}
	if po.prefix != "" {
		cfg.Publish.Prefix = po.prefix
	}
	if po.source != "" {
		cfg.Source = po.source
	}
	if po.endpoint != "" {
		cfg.Publish.Endpoint = po.endpoint
		cfg.Publish.PathStyle = true
	}
}

func runPublish(cmd *cobra.Command, cfg *config.Config, client publish.ObjectPutter, assets bool) error {
	options := publish.OptionsFromConfig(cfg)
	options.Assets = assets

	p, err := publish.New(client, options)
	if err != nil {
		return err
	}

	results, err := p.Publish(cmd.Context(), cfg.SourcePath())
	out := cmd.OutOrStdout()
	for _, r := range results {
		success(out, "Uploaded %s → s3://%s/%s", r.Name, options.Bucket, r.Key)
	}
	if err != nil {
		return err
	}
	info(out, "%d objects published", len(results))
	return nil
}
