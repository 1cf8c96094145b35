// Package config provides runtime configuration values for the service.
package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Environment is the deployment environment of the service.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// IsProduction reports whether e is Production.
func (e Environment) IsProduction() bool {
	return e == Production
}

// ParseEnvironment maps unknown values to Development.
func ParseEnvironment(v string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(v))) {
	case Production:
		return Production
	case Staging:
		return Staging
	case Testing:
		return Testing
	default:
		return Development
	}
}

// CatalogMode selects how the product catalog is built at startup.
type CatalogMode string

const (
	CatalogFixed     CatalogMode = "fixed"
	CatalogGenerated CatalogMode = "generated"
)

// Config holds configuration knobs for the HTTP server, catalog and docs.
type Config struct {
	Env             string        `envconfig:"APP_ENV" default:"development"`
	HTTPAddr        string        `envconfig:"HTTP_ADDR" default:":3000"`
	PublicURL       string        `envconfig:"PUBLIC_URL" default:"http://localhost:3000"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`

	CatalogMode         CatalogMode `envconfig:"CATALOG_MODE" default:"fixed"`
	CatalogSize         int         `envconfig:"CATALOG_SIZE" default:"50"`
	CatalogSeed         uint64      `envconfig:"CATALOG_SEED" default:"42"`
	CatalogImageBaseURL string      `envconfig:"CATALOG_IMAGE_BASE_URL" default:"https://picsum.photos"`

	DocsPath         string `envconfig:"DOCS_PATH" default:"/api"`
	DocsCustomCSSURL string `envconfig:"DOCS_CUSTOM_CSS_URL"`
	DocsSiteTitle    string `envconfig:"DOCS_SITE_TITLE" default:"API REST Simple"`
	DocsAssetsURL    string `envconfig:"DOCS_ASSETS_URL" default:"https://unpkg.com/swagger-ui-dist@5"`
}

// Environment returns the parsed APP_ENV value.
func (c Config) Environment() Environment {
	return ParseEnvironment(c.Env)
}

// DocsURL is the absolute URL of the documentation UI.
func (c Config) DocsURL() string {
	return strings.TrimRight(c.PublicURL, "/") + c.DocsPath
}

// Load collects configuration from the environment with defaults.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, errors.Wrap(err, "process environment")
	}
	c.CatalogMode = CatalogMode(strings.ToLower(strings.TrimSpace(string(c.CatalogMode))))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values envconfig cannot express as tags.
func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return errors.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	switch c.CatalogMode {
	case CatalogFixed, CatalogGenerated:
	default:
		return errors.Errorf("CATALOG_MODE must be %q or %q, got %q", CatalogFixed, CatalogGenerated, c.CatalogMode)
	}
	if c.CatalogSize < 0 {
		return errors.Errorf("CATALOG_SIZE must be >= 0, got %d", c.CatalogSize)
	}
	if len(c.DocsPath) < 2 || !strings.HasPrefix(c.DocsPath, "/") || strings.HasSuffix(c.DocsPath, "/") {
		return errors.Errorf("DOCS_PATH must start with '/' and not end with '/', got %q", c.DocsPath)
	}
	return nil
}
