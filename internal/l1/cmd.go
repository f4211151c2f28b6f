package l1

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/compose-network/dispute-explorer/configs"
	"github.com/compose-network/dispute-explorer/internal/chains"
	"github.com/compose-network/dispute-explorer/internal/contracts"
	"github.com/compose-network/dispute-explorer/internal/dispute"
	"github.com/compose-network/dispute-explorer/internal/render"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var CMD = &cobra.Command{
	Use:   "l1",
	Short: "Inspect the L1 contracts of the selected network",
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show L1 chain head and system contract addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, true, func(ctx context.Context, s *Service, p *render.Printer) error {
			ctx, cancel := s.withTimeout(ctx)
			defer cancel()

			view, err := s.Info(ctx)
			if err != nil {
				return err
			}
			return p.Print(view)
		})
	},
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List dispute games, newest first",
	Long: `List dispute games created by the chain's DisputeGameFactory, newest first,
twenty per page.

Examples:
  explorer l1 games
  explorer l1 games --page 3
  explorer l1 games --interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		if page := viper.GetInt("l1.games.page"); page > 1 {
			query.Set(dispute.PageParam, strconv.Itoa(page))
		}

		return run(cmd, true, func(ctx context.Context, s *Service, p *render.Printer) error {
			var list dispute.GameList
			if !viper.GetBool("l1.games.interactive") {
				return showPage(ctx, s, p, &list, query)
			}
			return browse(ctx, s, p, &list, query, cmd.InOrStdin(), cmd.OutOrStdout())
		})
	},
}

var gameCmd = &cobra.Command{
	Use:   "game <address>",
	Short: "Show a dispute game and its claim tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !common.IsHexAddress(args[0]) {
			return fmt.Errorf("invalid game address %q", args[0])
		}
		address := common.HexToAddress(args[0])

		return run(cmd, false, func(ctx context.Context, s *Service, p *render.Printer) error {
			ctx, cancel := s.withTimeout(ctx)
			defer cancel()

			view, err := s.Game(ctx, address)
			if errors.Is(err, contracts.ErrNoContract) {
				return p.Print(NoContractView{Address: address})
			}
			if err != nil {
				return err
			}
			return p.Print(view)
		})
	},
}

// run resolves the selected chain, dials its L1 and hands a Service to fn.
func run(cmd *cobra.Command, withRegistry bool, fn func(context.Context, *Service, *render.Printer) error) error {
	chain, err := chains.NewRegistry(configs.Values.Chains).Lookup(configs.Values.Network)
	if err != nil {
		return err
	}

	fetch := configs.Values.Fetch

	setupCtx, cancel := context.WithTimeout(cmd.Context(), fetch.Timeout)
	defer cancel()

	client, err := ethclient.DialContext(setupCtx, chain.L1RPCURL)
	if err != nil {
		return fmt.Errorf("failed to dial L1 RPC: %w", err)
	}
	defer client.Close()

	var registry chains.RegistryInfo
	if withRegistry {
		registry = chains.NewLoader(fetch.Timeout).Load(setupCtx, chain.SuperchainRegistryURL)
	}

	service := NewService(client, chain, registry, fetch)
	return fn(cmd.Context(), service, render.New(cmd.OutOrStdout(), configs.Values.Output))
}

// browse pages through the game list reading n, p and q commands from in.
func browse(ctx context.Context, s *Service, p *render.Printer, list *dispute.GameList, query url.Values, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		if err := showPage(ctx, s, p, list, query); err != nil {
			return err
		}

		fmt.Fprint(out, "[n]ext, [p]revious, [q]uit: ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "n", "next":
			if next, ok := list.Page.NextPage(query); ok {
				query = next
			}
		case "p", "prev", "previous":
			if prev, ok := list.Page.PrevPage(query); ok {
				query = prev
			}
		case "q", "quit":
			return nil
		}
	}
}

func showPage(ctx context.Context, s *Service, p *render.Printer, list *dispute.GameList, query url.Values) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	view, err := s.Games(ctx, list, query)
	if err != nil {
		return err
	}
	return p.Print(view)
}
