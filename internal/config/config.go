// Package config loads the indexer configuration from YAML with environment
// variable expansion and .env support.
package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	ierrors "github.com/insectengine/search.quarkus.io/internal/errors"
)

// Default branches of the quarkus.io repository. The source branch holds
// authored documents and metadata; the pages branch holds rendered,
// publishable HTML.
const (
	DefaultSourceBranch = "develop"
	DefaultPagesBranch  = "master"
)

// Config represents the application configuration
type Config struct {
	Web     WebConfig     `yaml:"web"`
	Git     GitConfig     `yaml:"git"`
	Index   IndexConfig   `yaml:"index"`
	Logging LoggingConfig `yaml:"logging"`
}

// WebConfig describes the public site guides resolve their URLs against.
type WebConfig struct {
	URI string `yaml:"uri"`
}

// GitConfig describes the quarkus.io repository to fetch.
type GitConfig struct {
	URL          string      `yaml:"url"`
	CloneDir     string      `yaml:"clone_dir,omitempty"` // empty: ephemeral temp dir
	SourceBranch string      `yaml:"source_branch,omitempty"`
	PagesBranch  string      `yaml:"pages_branch,omitempty"`
	Auth         *AuthConfig `yaml:"auth,omitempty"`
}

// AuthConfig represents authentication configuration
type AuthConfig struct {
	Type     string `yaml:"type"` // "ssh", "token", "basic"
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	Token    string `yaml:"token,omitempty"`
	KeyPath  string `yaml:"key_path,omitempty"`
}

// IndexConfig describes the search-index sink.
type IndexConfig struct {
	Path string `yaml:"path"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, ierrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Web.URI == "" {
		c.Web.URI = "https://quarkus.io/"
	}
	if c.Git.URL == "" {
		c.Git.URL = "https://github.com/quarkusio/quarkusio.github.io.git"
	}
	if c.Git.SourceBranch == "" {
		c.Git.SourceBranch = DefaultSourceBranch
	}
	if c.Git.PagesBranch == "" {
		c.Git.PagesBranch = DefaultPagesBranch
	}
	if c.Index.Path == "" {
		c.Index.Path = "guides.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = string(LogLevelInfo)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = string(LogFormatText)
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Web.URI == "" {
		return ierrors.ConfigRequired("web.uri")
	}
	if u, err := url.Parse(c.Web.URI); err != nil || !u.IsAbs() {
		return ierrors.New(ierrors.CategoryConfig, ierrors.SeverityFatal, "web.uri must be an absolute URL").
			WithContext("uri", c.Web.URI)
	}
	if c.Git.URL == "" {
		return ierrors.ConfigRequired("git.url")
	}
	if c.Index.Path == "" {
		return ierrors.ConfigRequired("index.path")
	}
	return nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}
