package l2

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"slices"

	"github.com/compose-network/dispute-explorer/internal/chains"
	"github.com/compose-network/dispute-explorer/internal/contracts"
	"github.com/compose-network/dispute-explorer/internal/fees"
	"github.com/compose-network/dispute-explorer/internal/logger"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
)

// defaultLookback is how many blocks back withdrawals are searched when no
// start block is given.
const defaultLookback = 50_000

type (
	client interface {
		bind.ContractCaller
		ethereum.LogFilterer
		HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	}

	Service struct {
		logger   *slog.Logger
		client   client
		chain    chains.Chain
		registry chains.RegistryInfo
	}
)

func NewService(client client, chain chains.Chain, registry chains.RegistryInfo) *Service {
	return &Service{
		logger:   logger.Named("l2").With("network", chain.Name),
		client:   client,
		chain:    chain,
		registry: registry,
	}
}

// Info reads the latest L2 header and derives the fee parameters and gas
// rates from it. The block time comes from the superchain registry; when the
// registry is unavailable the per-second figures fall back to "0".
func (s *Service) Info(ctx context.Context) (InfoView, error) {
	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return InfoView{}, fmt.Errorf("failed to get latest L2 header: %w", err)
	}

	gasLimit := new(big.Int).SetUint64(header.GasLimit)
	params := fees.DecodeEIP1559ParamsBytes(header.Extra)

	view := InfoView{
		Network:     s.chain.Name,
		DisplayName: s.chain.DisplayName,
		BlockNumber: header.Number,
		GasLimit:    header.GasLimit,
		BaseFee:     header.BaseFee,
		EIP1559:     params,
		Predeploys:  contracts.Predeploys(),
	}

	if cfg, err := s.registry.Config(); err != nil {
		s.logger.With("err", err).Warn("superchain registry unavailable, block time unknown")
		view.RegistryError = err.Error()
	} else {
		view.ChainID = cfg.ChainID
		view.BlockTime = cfg.BlockTime
	}

	view.GasRates = GasRates{
		LimitPerBlock:   fees.GasLimitPerBlock(gasLimit),
		LimitPerSecond:  fees.GasLimitPerSecond(gasLimit, view.BlockTime),
		TargetPerBlock:  fees.GasTargetPerBlock(gasLimit, params),
		TargetPerSecond: fees.GasTargetPerSecond(gasLimit, params, view.BlockTime),
	}

	l1Number, err := contracts.NewL1Block(s.client).Number(ctx)
	if err != nil {
		s.logger.With("err", err).Warn("failed to read L1 origin")
		view.L1OriginError = err.Error()
	} else {
		view.L1Origin = l1Number
	}

	return view, nil
}

// Withdrawals returns up to limit MessagePassed events, newest first, from
// fromBlock to the chain head. A zero fromBlock searches the last
// defaultLookback blocks.
func (s *Service) Withdrawals(ctx context.Context, limit int, fromBlock uint64) (WithdrawalsView, error) {
	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return WithdrawalsView{}, fmt.Errorf("failed to get latest L2 header: %w", err)
	}
	head := header.Number.Uint64()

	if fromBlock == 0 && head > defaultLookback {
		fromBlock = head - defaultLookback
	}

	passer := contracts.NewL2ToL1MessagePasser(s.client, s.client)
	msgs, err := passer.FilterMessagePassed(ctx, new(big.Int).SetUint64(fromBlock), header.Number)
	if err != nil {
		return WithdrawalsView{}, err
	}

	slices.SortFunc(msgs, func(a, b contracts.MessagePassed) int {
		if c := cmp.Compare(b.BlockNumber, a.BlockNumber); c != 0 {
			return c
		}
		return cmp.Compare(b.LogIndex, a.LogIndex)
	})

	view := WithdrawalsView{
		Network:   s.chain.Name,
		FromBlock: fromBlock,
		ToBlock:   head,
		Total:     len(msgs),
	}

	if limit > 0 && len(msgs) > limit {
		msgs = msgs[:limit]
	}
	for _, m := range msgs {
		view.Withdrawals = append(view.Withdrawals, newWithdrawalRow(m))
	}

	s.logger.With("found", view.Total).With("from", fromBlock).With("to", head).Debug("withdrawals scanned")

	return view, nil
}
