// Package config loads and saves the viewkit.json project configuration
// used by the viewkit CLI and preview server.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/viewkit-go/viewkit/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "viewkit.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 4100

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultManifest is the default view manifest path.
	DefaultManifest = "views.yaml"

	// DefaultTemplates is the default template directory.
	DefaultTemplates = "templates"

	// DefaultOutput is the default snapshot output directory.
	DefaultOutput = "dist"
)

// Config represents the complete viewkit.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Manifest is the path to the YAML view manifest.
	Manifest string `json:"manifest,omitempty"`

	// Templates is the directory holding *.html template sources.
	Templates string `json:"templates,omitempty"`

	// Shell is an optional HTML file used as the document shell; empty
	// means the built-in blank shell.
	Shell string `json:"shell,omitempty"`

	// Output is the directory rendered snapshots are written to.
	Output string `json:"output,omitempty"`

	// Preview contains preview server settings.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Publish contains snapshot publishing settings.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`
}

// PublishConfig contains snapshot publishing settings.
type PublishConfig struct {
	// Bucket is the S3 bucket snapshots are published to.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix inside the bucket.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty"`

	// Keep is how many published snapshots Cleanup retains per project.
	Keep int `json:"keep,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Manifest:  DefaultManifest,
		Templates: DefaultTemplates,
		Output:    DefaultOutput,
		Preview: PreviewConfig{
			Port: DefaultPort,
			Host: DefaultHost,
		},
		Publish: PublishConfig{
			Prefix: "snapshots/",
			Keep:   10,
		},
	}
}

// Load reads configuration from the specified directory. It looks for
// viewkit.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E060").
				WithDetail("no %s found in %s", ConfigFileName, filepath.Dir(path)).
				WithSuggestion("Run 'viewkit init' or create viewkit.json by hand")
		}
		return nil, errors.New("E061").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E061").
			WithDetail("failed to parse %s: %v", ConfigFileName, err).
			WithSuggestion("Check that viewkit.json is valid JSON")
	}
	cfg.applyDefaults()
	cfg.configPath = path
	return cfg, nil
}

// LoadFromWorkingDir reads configuration from the current directory.
func LoadFromWorkingDir() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, errors.New("E061").Wrap(err)
	}
	return Load(dir)
}

// Save writes the configuration back to the file it was loaded from, or to
// viewkit.json in dir when it was built with New.
func (c *Config) Save(dir string) error {
	path := c.configPath
	if path == "" {
		path = filepath.Join(dir, ConfigFileName)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E061").Wrap(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.New("E061").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Dir returns the directory the config was loaded from.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// ManifestPath returns the manifest path resolved against the config dir.
func (c *Config) ManifestPath() string {
	return c.resolve(c.Manifest)
}

// TemplatesPath returns the template directory resolved against the config
// dir.
func (c *Config) TemplatesPath() string {
	return c.resolve(c.Templates)
}

// OutputPath returns the output directory resolved against the config dir.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output)
}

// ShellPath returns the shell file resolved against the config dir, empty
// when no shell is configured.
func (c *Config) ShellPath() string {
	if c.Shell == "" {
		return ""
	}
	return c.resolve(c.Shell)
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir(), p)
}

func (c *Config) applyDefaults() {
	if c.Manifest == "" {
		c.Manifest = DefaultManifest
	}
	if c.Templates == "" {
		c.Templates = DefaultTemplates
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Publish.Prefix == "" {
		c.Publish.Prefix = "snapshots/"
	}
	if c.Publish.Keep == 0 {
		c.Publish.Keep = 10
	}
}
