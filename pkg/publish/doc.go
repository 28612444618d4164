// Package publish renders a directory of document descriptions and stores
// the pages in S3-compatible object storage.
//
// Pages are stored under <prefix>/<name>.html with a text/html content
// type. With Assets enabled, every other file in the directory (stylesheets,
// images) is uploaded next to the pages under its relative path.
//
//	client := publish.NewS3Client(cfg.Publish)
//	p, err := publish.New(client, publish.Options{
//	    Bucket: cfg.Publish.Bucket,
//	    Prefix: cfg.Publish.Prefix,
//	})
//	results, err := p.Publish(ctx, cfg.SourcePath())
//
// The client is any value with a PutObject method matching *s3.Client, so
// tests and other stores can stand in for S3.
package publish
