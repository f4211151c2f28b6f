package configs

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var Values Config

type (
	ChainName    string
	OutputFormat string

	Config struct {
		Network ChainName           `mapstructure:"network"`
		Output  OutputFormat        `mapstructure:"output"`
		Log     Log                 `mapstructure:"log"`
		Fetch   Fetch               `mapstructure:"fetch"`
		Chains  map[ChainName]Chain `mapstructure:"chains"`
	}

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	}

	// Fetch bounds the fan-out used for per-claim and per-game reads.
	Fetch struct {
		Concurrency int           `mapstructure:"concurrency"`
		Timeout     time.Duration `mapstructure:"timeout"`
	}

	Chain struct {
		DisplayName           string            `mapstructure:"display-name"`
		L1RPCURL              string            `mapstructure:"l1-rpc-url"`
		L2RPCURL              string            `mapstructure:"l2-rpc-url"`
		SuperchainRegistryURL string            `mapstructure:"superchain-registry-url"`
		L1ExplorerURL         string            `mapstructure:"l1-explorer-url"`
		L2ExplorerURL         string            `mapstructure:"l2-explorer-url"`
		InterestingGames      []InterestingGame `mapstructure:"interesting-games"`
	}

	InterestingGame struct {
		Address     string `mapstructure:"address"`
		Description string `mapstructure:"description"`
	}
)

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

func (c *Config) Validate() error {
	var errs []error

	switch c.Output {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		errs = append(errs, fmt.Errorf("output must be one of table, json, yaml (got %q)", c.Output))
	}

	if c.Fetch.Concurrency <= 0 {
		errs = append(errs, errors.New("fetch.concurrency must be greater than 0"))
	}
	if c.Fetch.Timeout <= 0 {
		errs = append(errs, errors.New("fetch.timeout must be greater than 0"))
	}

	if len(c.Chains) == 0 {
		errs = append(errs, errors.New("at least one chain is required"))
	}
	if c.Network == "" {
		errs = append(errs, errors.New("network is required"))
	} else if _, ok := c.Chains[c.Network]; !ok {
		errs = append(errs, fmt.Errorf("network %q is not configured under chains", c.Network))
	}

	for name, chain := range c.Chains {
		if err := chain.validate(name); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}

	return nil
}

func (c Chain) validate(name ChainName) error {
	var errs []error

	required := []struct {
		key   string
		value string
	}{
		{"l1-rpc-url", c.L1RPCURL},
		{"l2-rpc-url", c.L2RPCURL},
		{"superchain-registry-url", c.SuperchainRegistryURL},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("chains.%s.%s is required", name, r.key))
			continue
		}
		if err := validateURL(r.value); err != nil {
			errs = append(errs, fmt.Errorf("chains.%s.%s: %w", name, r.key, err))
		}
	}

	for i, game := range c.InterestingGames {
		if !common.IsHexAddress(game.Address) {
			errs = append(errs, fmt.Errorf("chains.%s.interesting-games[%d]: invalid address %q", name, i, game.Address))
		}
	}

	return errors.Join(errs...)
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme == "file" {
		return nil
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url scheme %q (expected http, https or file)", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("invalid url (missing host)")
	}
	return nil
}
