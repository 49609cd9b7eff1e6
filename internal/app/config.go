package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/order-discounts/internal/domain/discount"
)

// Config holds the calculator configuration, loadable from environment
// variables (DISCOUNT_ prefix), flags, or YAML config files.
type Config struct {
	Total      string   `usage:"Order total before discounts (DISCOUNT_TOTAL)" flag:"total"`
	Strategies []string `default:"none" usage:"Discount strategies to quote, e.g. fixed:150,percentage:20,bonus_points:200" flag:"strategies"`
}

// LoadConfig loads configuration from environment variables, flags and YAML
// config files, and validates it.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "DISCOUNT",
		Files:     []string{"discount.yaml", "/etc/discount/discount.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if _, _, err := cfg.Build(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Build parses the configured total and strategies.
func (c *Config) Build() (decimal.Decimal, []discount.Strategy, error) {
	if c.Total == "" {
		return decimal.Zero, nil, errors.New("order total is required: set --total or DISCOUNT_TOTAL")
	}
	total, err := decimal.NewFromString(c.Total)
	if err != nil {
		return decimal.Zero, nil, errors.Wrapf(err, "parse total %q", c.Total)
	}
	if total.IsNegative() {
		return decimal.Zero, nil, errors.Errorf("order total %s is negative", total)
	}

	if len(c.Strategies) == 0 {
		return total, []discount.Strategy{discount.None{}}, nil
	}
	strategies := make([]discount.Strategy, 0, len(c.Strategies))
	for _, s := range c.Strategies {
		strategy, err := discount.Parse(s)
		if err != nil {
			return decimal.Zero, nil, errors.Wrapf(err, "parse strategy %q", s)
		}
		strategies = append(strategies, strategy)
	}
	return total, strategies, nil
}
