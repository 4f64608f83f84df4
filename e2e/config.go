package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_BACKEND selects the durable store used when a scenario does not force one
	Backend string `envconfig:"E2E_BACKEND" default:"json"`
	// E2E_PRUNE_ON_DELETE makes deletions reach the durable store
	PruneOnDelete bool `envconfig:"E2E_PRUNE_ON_DELETE" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
