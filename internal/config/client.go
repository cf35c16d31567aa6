package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	httpClient "github.com/iudanet/ajustaestoque/internal/client/api"
)

// Client holds the agent configuration loaded from environment variables.
type Client struct {
	API    APIConfig
	Agent  AgentConfig
	Assets AssetsConfig
	Log    LogConfig
	Sync   SyncConfig
}

// APIConfig describes the remote stock API.
type APIConfig struct {
	BaseURL         string        `envconfig:"AJUSTA_API_URL" default:"http://localhost:8080"`
	LoginPath       string        `envconfig:"AJUSTA_LOGIN_PATH" default:"/auth/login"`
	UpdateStockPath string        `envconfig:"AJUSTA_UPDATE_STOCK_PATH" default:"/estoque/update-stock"`
	ProductsPath    string        `envconfig:"AJUSTA_PRODUCTS_PATH" default:"/produtos"`
	FactoryPath     string        `envconfig:"AJUSTA_SAIDA_FABRICA_PATH" default:"/saida-fabrica"`
	WarrantyPath    string        `envconfig:"AJUSTA_SAIDA_GARANTIA_PATH" default:"/saida-garantia"`
	Timeout         time.Duration `envconfig:"AJUSTA_API_TIMEOUT" default:"30s"`
}

// AgentConfig holds local agent settings.
type AgentConfig struct {
	DBPath string `envconfig:"AJUSTA_DB" default:"ajustaestoque.db"`
	Listen string `envconfig:"AJUSTA_LISTEN" default:"127.0.0.1:8787"`
}

// AssetsConfig describes the cached application files.
type AssetsConfig struct {
	Origin   string   `envconfig:"AJUSTA_ASSET_ORIGIN" default:"http://localhost:8080/appMobile/"`
	Version  string   `envconfig:"AJUSTA_ASSET_VERSION" default:"ajusta-estoque-app-v1"`
	Manifest []string `envconfig:"AJUSTA_ASSET_MANIFEST"` // empty = built-in manifest
}

// SyncConfig holds offline queue drain settings.
type SyncConfig struct {
	Interval    time.Duration `envconfig:"SYNC_INTERVAL" default:"30s"`
	Concurrency int           `envconfig:"SYNC_CONCURRENCY" default:"8"`
}

// LoadClient reads the agent configuration from environment variables.
func LoadClient() (*Client, error) {
	var cfg Client

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// Validate fails fast on settings the agent cannot run with.
func (c *Client) Validate() error {
	var errs []error

	if err := validateURL("AJUSTA_API_URL", c.API.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, errors.New("AJUSTA_API_TIMEOUT must be positive"))
	}
	if c.Agent.DBPath == "" {
		errs = append(errs, errors.New("AJUSTA_DB is required"))
	}
	if err := validateURL("AJUSTA_ASSET_ORIGIN", c.Assets.Origin); err != nil {
		errs = append(errs, err)
	}
	if c.Assets.Version == "" {
		errs = append(errs, errors.New("AJUSTA_ASSET_VERSION is required"))
	}
	if c.Sync.Interval <= 0 {
		errs = append(errs, errors.New("SYNC_INTERVAL must be positive"))
	}
	if c.Sync.Concurrency <= 0 {
		errs = append(errs, errors.New("SYNC_CONCURRENCY must be positive"))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Endpoints returns the full URLs of the stock API.
func (a *APIConfig) Endpoints() httpClient.Endpoints {
	base := strings.TrimRight(a.BaseURL, "/")
	return httpClient.Endpoints{
		Login:       base + a.LoginPath,
		UpdateStock: base + a.UpdateStockPath,
		Products:    base + a.ProductsPath,

		ShipmentFactory:  base + a.FactoryPath,
		ShipmentWarranty: base + a.WarrantyPath,
	}
}
