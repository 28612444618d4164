package publish

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/htmlgen/internal/config"
	"github.com/vango-dev/htmlgen/internal/errors"
	"github.com/vango-dev/htmlgen/pkg/docspec"
	"github.com/vango-dev/htmlgen/pkg/markup"
)

// PageContentType is the content type of published pages.
const PageContentType = "text/html; charset=utf-8"

// Options configures a Publisher.
type Options struct {
	// Bucket is the target bucket. Required.
	Bucket string

	// Prefix is prepended to every key. Leading and trailing slashes are
	// ignored.
	Prefix string

	// CacheControl is sent with every object. Empty omits the header.
	CacheControl string

	// Doctype is used for documents that do not declare one.
	Doctype markup.Doctype

	// Assets uploads the non-description files of the directory too.
	Assets bool

	// Logger receives progress logs. Default: slog.Default().
	Logger *slog.Logger
}

// OptionsFromConfig builds Options from the project configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Bucket:       cfg.Publish.Bucket,
		Prefix:       cfg.Publish.Prefix,
		CacheControl: cfg.Publish.CacheControl,
		Doctype:      cfg.DefaultDoctype(),
	}
}

// Result describes one stored object.
type Result struct {
	// Name is the document name, or the relative path for assets.
	Name string
	// Key is the object key.
	Key string
	// ContentType is the stored content type.
	ContentType string
	// Bytes is the object size.
	Bytes int64
}

// Publisher renders documents and stores them.
type Publisher struct {
	client  ObjectPutter
	opts    Options
	builder docspec.Builder
	logger  *slog.Logger
}

// New creates a Publisher. It fails with H060 when no bucket is set.
func New(client ObjectPutter, opts Options) (*Publisher, error) {
	if opts.Bucket == "" {
		return nil, errors.New("H060")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		client:  client,
		opts:    opts,
		builder: docspec.Builder{Doctype: opts.Doctype},
		logger:  logger.With("component", "publish", "bucket", opts.Bucket),
	}, nil
}

// Publish renders every document in dir and stores it. It stops at the
// first document that fails to build or upload; pages stored before that
// are reported in the results.
func (p *Publisher) Publish(ctx context.Context, dir string) ([]Result, error) {
	entries, err := docspec.Find(dir)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, entry := range entries {
		doc, err := docspec.Load(entry.Path)
		if err != nil {
			return results, err
		}
		page, err := p.builder.Build(doc)
		if err != nil {
			return results, err
		}
		res, err := p.PublishPage(ctx, entry.Name, page)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	if p.opts.Assets {
		assets, err := p.publishAssets(ctx, dir)
		results = append(results, assets...)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// PublishPage renders page and stores it as <prefix>/<name>.html.
func (p *Publisher) PublishPage(ctx context.Context, name string, page *markup.Page) (Result, error) {
	html := []byte(page.String())
	key := Key(p.opts.Prefix, name+".html")
	if err := p.put(ctx, key, PageContentType, bytes.NewReader(html), int64(len(html))); err != nil {
		return Result{}, err
	}
	p.logger.Info("published", "document", name, "key", key, "bytes", len(html))
	return Result{Name: name, Key: key, ContentType: PageContentType, Bytes: int64(len(html))}, nil
}

// publishAssets stores every file below dir that is not a description.
// Dot-files and dot-directories are skipped.
func (p *Publisher) publishAssets(ctx context.Context, dir string) ([]Result, error) {
	var results []Result
	err := filepath.WalkDir(dir, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if file != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || docspec.IsDescription(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return err
		}
		res, err := p.publishFile(ctx, file, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		results = append(results, res)
		return nil
	})
	return results, err
}

func (p *Publisher) publishFile(ctx context.Context, file, rel string) (Result, error) {
	f, err := os.Open(file)
	if err != nil {
		return Result{}, errors.New("H061").WithDetail("Could not open " + file).Wrap(err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Result{}, errors.New("H061").WithDetail("Could not stat " + file).Wrap(err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(file))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := Key(p.opts.Prefix, rel)
	if err := p.put(ctx, key, contentType, f, info.Size()); err != nil {
		return Result{}, err
	}
	p.logger.Info("published", "asset", rel, "key", key, "bytes", info.Size())
	return Result{Name: rel, Key: key, ContentType: contentType, Bytes: info.Size()}, nil
}

func (p *Publisher) put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.opts.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	}
	if p.opts.CacheControl != "" {
		input.CacheControl = aws.String(p.opts.CacheControl)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return errors.New("H061").
			WithDetailf("Could not store s3://%s/%s", p.opts.Bucket, key).
			WithSuggestion("Check the bucket name, region and credentials").
			Wrap(err)
	}
	return nil
}

// Key joins prefix and name into an object key without a leading slash.
func Key(prefix, name string) string {
	return strings.TrimPrefix(path.Join(strings.Trim(prefix, "/"), name), "/")
}
