package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vango-dev/htmlgen/internal/errors"
	"github.com/vango-dev/htmlgen/pkg/markup"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmlgen.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 4000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultSource is the default directory holding document descriptions.
	DefaultSource = "docs"

	// DefaultOutput is the default render output directory.
	DefaultOutput = "dist"

	// DefaultDebounce is the default delay between a file change and a reload.
	DefaultDebounce = 200 * time.Millisecond

	// DefaultNamespace is the default Prometheus metric namespace.
	DefaultNamespace = "htmlgen"

	// DefaultCacheControl is the default Cache-Control header for published pages.
	DefaultCacheControl = "public, max-age=300"
)

// Config represents the complete htmlgen.json configuration.
type Config struct {
	// Source is the directory holding document descriptions.
	Source string `json:"source,omitempty"`

	// Doctype is the doctype used by documents that do not declare one.
	Doctype string `json:"doctype,omitempty"`

	// Server contains preview server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Output contains render output configuration.
	Output OutputConfig `json:"output,omitempty"`

	// Publish contains object storage configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Watch re-renders documents when the source directory changes.
	Watch bool `json:"watch"`

	// LiveReload injects a reload script into served pages.
	LiveReload bool `json:"liveReload"`

	// Debounce is the delay before a batch of file changes triggers a reload (e.g., "200ms").
	Debounce string `json:"debounce,omitempty"`
}

// OutputConfig contains render output settings.
type OutputConfig struct {
	// Dir is the directory rendered pages are written to.
	Dir string `json:"dir,omitempty"`
}

// PublishConfig contains object storage settings.
type PublishConfig struct {
	// Bucket is the S3 bucket pages are uploaded to.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint (for S3-compatible stores).
	Endpoint string `json:"endpoint,omitempty"`

	// PathStyle forces path-style bucket addressing.
	PathStyle bool `json:"pathStyle,omitempty"`

	// CacheControl is sent with every uploaded page.
	CacheControl string `json:"cacheControl,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled exposes /metrics on the preview server.
	Enabled bool `json:"enabled"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Source:  DefaultSource,
		Doctype: markup.HTML5.String(),
		Server: ServerConfig{
			Port:       DefaultPort,
			Host:       DefaultHost,
			Watch:      true,
			LiveReload: true,
			Debounce:   DefaultDebounce.String(),
		},
		Output: OutputConfig{
			Dir: DefaultOutput,
		},
		Publish: PublishConfig{
			CacheControl: DefaultCacheControl,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for htmlgen.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("H001").
				WithDetail("No htmlgen.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'htmlgen init' to create one, or pass flags instead")
		}
		return nil, errors.New("H002").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("H002").
			WithDetail("Failed to parse htmlgen.json: " + err.Error()).
			WithSuggestion("Check that htmlgen.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("H005").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("H005").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if c.Doctype == "" {
		c.Doctype = markup.HTML5.String()
	}

	// Server
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Debounce == "" {
		c.Server.Debounce = DefaultDebounce.String()
	}

	// Output
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutput
	}

	// Publish
	if c.Publish.CacheControl == "" {
		c.Publish.CacheControl = DefaultCacheControl
	}

	// Metrics
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("H003").
			WithDetailf("Port %d is outside 1-65535", c.Server.Port)
	}
	if _, ok := markup.ParseDoctype(c.Doctype); !ok {
		return errors.New("H004").
			WithDetailf("Unknown doctype %q", c.Doctype).
			WithSuggestion("Use one of: html5, html4, xhtml1.0, xhtml1.1")
	}
	if _, err := time.ParseDuration(c.Server.Debounce); err != nil {
		return errors.Newf(errors.CategoryConfig, "invalid server.debounce %q", c.Server.Debounce).
			Wrap(err)
	}
	return nil
}

// DefaultDoctype returns the configured fallback doctype.
func (c *Config) DefaultDoctype() markup.Doctype {
	d, _ := markup.ParseDoctype(c.Doctype)
	return d
}

// DebounceInterval returns the parsed watch debounce delay.
func (c *Config) DebounceInterval() time.Duration {
	d, err := time.ParseDuration(c.Server.Debounce)
	if err != nil || d <= 0 {
		return DefaultDebounce
	}
	return d
}

// ServerAddress returns the address string for the preview server.
func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// ServerURL returns the full URL for the preview server.
func (c *Config) ServerURL() string {
	return "http://" + c.ServerAddress()
}

// SourcePath returns the absolute path to the document directory.
func (c *Config) SourcePath() string {
	return c.resolve(c.Source)
}

// OutputPath returns the absolute path to the render output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output.Dir)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing htmlgen.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("H001").
				WithDetail("No htmlgen.json found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'htmlgen init' to create one")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadFromDir(wd)
}

// LoadFromDir loads the configuration of the project containing dir.
// When no htmlgen.json exists in dir or its parents the defaults are
// returned, rooted at dir.
func LoadFromDir(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(abs)
	if err != nil {
		cfg := New()
		cfg.configPath = filepath.Join(abs, ConfigFileName)
		return cfg, nil
	}

	return Load(root)
}
