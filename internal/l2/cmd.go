package l2

import (
	"context"
	"fmt"

	"github.com/compose-network/dispute-explorer/configs"
	"github.com/compose-network/dispute-explorer/internal/chains"
	"github.com/compose-network/dispute-explorer/internal/render"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var CMD = &cobra.Command{
	Use:   "l2",
	Short: "Inspect the L2 of the selected network",
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show L2 head, EIP-1559 parameters and gas rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, true, func(ctx context.Context, s *Service) (any, error) {
			return s.Info(ctx)
		})
	},
}

var withdrawalsCmd = &cobra.Command{
	Use:   "withdrawals",
	Short: "List recent withdrawals initiated on L2",
	Long: `List MessagePassed events emitted by the L2ToL1MessagePasser predeploy,
newest first.

Examples:
  explorer l2 withdrawals
  explorer l2 withdrawals --limit 5 --from-block 130000000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := viper.GetInt("l2.withdrawals.limit")
		fromBlock := viper.GetInt("l2.withdrawals.from-block")
		if fromBlock < 0 {
			return fmt.Errorf("from-block must not be negative")
		}

		return run(cmd, false, func(ctx context.Context, s *Service) (any, error) {
			return s.Withdrawals(ctx, limit, uint64(fromBlock))
		})
	},
}

func run(cmd *cobra.Command, withRegistry bool, fn func(context.Context, *Service) (any, error)) error {
	chain, err := chains.NewRegistry(configs.Values.Chains).Lookup(configs.Values.Network)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), configs.Values.Fetch.Timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, chain.L2RPCURL)
	if err != nil {
		return fmt.Errorf("failed to dial L2 RPC: %w", err)
	}
	defer client.Close()

	var registry chains.RegistryInfo
	if withRegistry {
		registry = chains.NewLoader(configs.Values.Fetch.Timeout).Load(ctx, chain.SuperchainRegistryURL)
	}

	view, err := fn(ctx, NewService(client, chain, registry))
	if err != nil {
		return err
	}

	return render.New(cmd.OutOrStdout(), configs.Values.Output).Print(view)
}
