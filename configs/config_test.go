package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Network: "op-mainnet",
		Output:  OutputTable,
		Fetch:   Fetch{Concurrency: 4, Timeout: time.Second},
		Chains: map[ChainName]Chain{
			"op-mainnet": {
				L1RPCURL:              "https://l1.example.org",
				L2RPCURL:              "https://l2.example.org",
				SuperchainRegistryURL: "file:///tmp/op.toml",
			},
		},
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg, err := DefaultConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, ChainName("op-mainnet"), cfg.Network)
	require.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	require.Equal(t, 8, cfg.Fetch.Concurrency)
	require.Len(t, cfg.Chains["op-mainnet"].InterestingGames, 4)
	require.Contains(t, cfg.Chains, ChainName("base-sepolia"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown output", func(c *Config) { c.Output = "xml" }, "output must be one of"},
		{"zero concurrency", func(c *Config) { c.Fetch.Concurrency = 0 }, "fetch.concurrency"},
		{"zero timeout", func(c *Config) { c.Fetch.Timeout = 0 }, "fetch.timeout"},
		{"missing network", func(c *Config) { c.Network = "" }, "network is required"},
		{"network not configured", func(c *Config) { c.Network = "zora" }, `network "zora" is not configured`},
		{"missing l2 url", func(c *Config) {
			chain := c.Chains["op-mainnet"]
			chain.L2RPCURL = ""
			c.Chains["op-mainnet"] = chain
		}, "chains.op-mainnet.l2-rpc-url is required"},
		{"bad scheme", func(c *Config) {
			chain := c.Chains["op-mainnet"]
			chain.L1RPCURL = "ws://l1.example.org"
			c.Chains["op-mainnet"] = chain
		}, "invalid url scheme"},
		{"bad interesting game", func(c *Config) {
			chain := c.Chains["op-mainnet"]
			chain.InterestingGames = []InterestingGame{{Address: "0x1234"}}
			c.Chains["op-mainnet"] = chain
		}, "interesting-games[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateJoinsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Output = "xml"
	cfg.Fetch.Concurrency = -1

	err := cfg.Validate()
	require.ErrorContains(t, err, "output must be one of")
	require.ErrorContains(t, err, "fetch.concurrency")
}
