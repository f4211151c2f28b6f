package chains

import (
	"github.com/compose-network/dispute-explorer/configs"
	"github.com/compose-network/dispute-explorer/internal/render"
	"github.com/spf13/cobra"
)

var CMD = &cobra.Command{
	Use:   "chains",
	Short: "List configured networks",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := NewRegistry(configs.Values.Chains)
		view := NewListView(registry, configs.Values.Network)
		return render.New(cmd.OutOrStdout(), configs.Values.Output).Print(view)
	},
}

type (
	ListView struct {
		Selected configs.ChainName `json:"selected" yaml:"selected"`
		Chains   []ChainEntry      `json:"chains" yaml:"chains"`
	}

	ChainEntry struct {
		Name                  configs.ChainName `json:"name" yaml:"name"`
		DisplayName           string            `json:"displayName" yaml:"displayName"`
		L1ExplorerURL         string            `json:"l1ExplorerUrl,omitempty" yaml:"l1ExplorerUrl,omitempty"`
		L2ExplorerURL         string            `json:"l2ExplorerUrl,omitempty" yaml:"l2ExplorerUrl,omitempty"`
		SuperchainRegistryURL string            `json:"superchainRegistryUrl" yaml:"superchainRegistryUrl"`
		InterestingGames      int               `json:"interestingGames" yaml:"interestingGames"`
	}
)

func NewListView(registry *Registry, selected configs.ChainName) ListView {
	view := ListView{Selected: selected}
	for _, c := range registry.Chains() {
		view.Chains = append(view.Chains, ChainEntry{
			Name:                  c.Name,
			DisplayName:           c.DisplayName,
			L1ExplorerURL:         c.L1ExplorerURL,
			L2ExplorerURL:         c.L2ExplorerURL,
			SuperchainRegistryURL: c.SuperchainRegistryURL,
			InterestingGames:      len(c.InterestingGames),
		})
	}
	return view
}

func (v ListView) Sections() []render.Section {
	s := render.Section{
		Title:   "Chains",
		Headers: []string{"", "Name", "Display Name", "L1 Explorer", "Registry"},
	}
	for _, c := range v.Chains {
		marker := ""
		if c.Name == v.Selected {
			marker = "*"
		}
		s.Rows = append(s.Rows, []any{marker, c.Name, c.DisplayName, c.L1ExplorerURL, c.SuperchainRegistryURL})
	}
	return []render.Section{s}
}
