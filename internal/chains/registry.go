package chains

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/compose-network/dispute-explorer/configs"
	"github.com/ethereum/go-ethereum/common"
)

var ErrUnknownChain = errors.New("unknown chain")

type (
	// Chain is the immutable connection record of one configured network.
	Chain struct {
		Name                  configs.ChainName
		DisplayName           string
		L1RPCURL              string
		L2RPCURL              string
		SuperchainRegistryURL string
		L1ExplorerURL         string
		L2ExplorerURL         string
		InterestingGames      []InterestingGame
	}

	InterestingGame struct {
		Address     common.Address `json:"address" yaml:"address"`
		Description string         `json:"description" yaml:"description"`
	}

	// Registry maps chain names to their records. It is built once at startup
	// and never mutated.
	Registry struct {
		chains map[configs.ChainName]Chain
	}
)

func NewRegistry(cfg map[configs.ChainName]configs.Chain) *Registry {
	r := &Registry{chains: make(map[configs.ChainName]Chain, len(cfg))}

	for name, c := range cfg {
		games := make([]InterestingGame, 0, len(c.InterestingGames))
		for _, g := range c.InterestingGames {
			games = append(games, InterestingGame{
				Address:     common.HexToAddress(g.Address),
				Description: g.Description,
			})
		}

		displayName := c.DisplayName
		if displayName == "" {
			displayName = string(name)
		}

		r.chains[name] = Chain{
			Name:                  name,
			DisplayName:           displayName,
			L1RPCURL:              c.L1RPCURL,
			L2RPCURL:              c.L2RPCURL,
			SuperchainRegistryURL: c.SuperchainRegistryURL,
			L1ExplorerURL:         c.L1ExplorerURL,
			L2ExplorerURL:         c.L2ExplorerURL,
			InterestingGames:      games,
		}
	}

	return r
}

func (r *Registry) Lookup(name configs.ChainName) (Chain, error) {
	c, ok := r.chains[name]
	if !ok {
		return Chain{}, fmt.Errorf("%w: %q (configured: %v)", ErrUnknownChain, name, r.Names())
	}
	return c, nil
}

// Names returns the configured chain names sorted alphabetically.
func (r *Registry) Names() []configs.ChainName {
	return slices.Sorted(maps.Keys(r.chains))
}

func (r *Registry) Chains() []Chain {
	names := r.Names()
	out := make([]Chain, 0, len(names))
	for _, name := range names {
		out = append(out, r.chains[name])
	}
	return out
}
