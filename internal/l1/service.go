package l1

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/compose-network/dispute-explorer/configs"
	"github.com/compose-network/dispute-explorer/internal/chains"
	"github.com/compose-network/dispute-explorer/internal/contracts"
	"github.com/compose-network/dispute-explorer/internal/logger"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

type client interface {
	bind.ContractCaller
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

// Service reads dispute game state from the L1 of one chain.
type Service struct {
	logger      *slog.Logger
	client      client
	chain       chains.Chain
	registry    chains.RegistryInfo
	concurrency int
	timeout     time.Duration
}

func NewService(client client, chain chains.Chain, registry chains.RegistryInfo, fetch configs.Fetch) *Service {
	return &Service{
		logger:      logger.Named("l1").With("network", chain.Name),
		client:      client,
		chain:       chain,
		registry:    registry,
		concurrency: max(1, fetch.Concurrency),
		timeout:     fetch.Timeout,
	}
}

// withTimeout bounds a single view load. A zero timeout leaves ctx unbounded.
func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) systemConfig() (*contracts.SystemConfig, error) {
	cfg, err := s.registry.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read superchain registry: %w", err)
	}

	addr, err := cfg.SystemConfigProxy()
	if err != nil {
		return nil, err
	}

	return contracts.NewSystemConfig(addr, s.client), nil
}

func (s *Service) factory(ctx context.Context) (*contracts.DisputeGameFactory, error) {
	sysCfg, err := s.systemConfig()
	if err != nil {
		return nil, err
	}

	addr, err := sysCfg.DisputeGameFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dispute game factory: %w", err)
	}

	return contracts.NewDisputeGameFactory(addr, s.client), nil
}

// Info reads the L1 chain head and the chain's SystemConfig addresses. The
// addresses are read as one batch and fail together.
func (s *Service) Info(ctx context.Context) (InfoView, error) {
	view := InfoView{Network: s.chain.Name, DisplayName: s.chain.DisplayName}

	var (
		chainID  *big.Int
		block    uint64
		gasPrice *big.Int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		chainID, err = s.client.ChainID(gctx)
		return err
	})
	g.Go(func() (err error) {
		block, err = s.client.BlockNumber(gctx)
		return err
	})
	g.Go(func() (err error) {
		gasPrice, err = s.client.SuggestGasPrice(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return InfoView{}, fmt.Errorf("failed to read L1 chain head: %w", err)
	}

	view.ChainID = chainID
	view.BlockNumber = block
	view.GasPrice = gasPrice

	addrs, err := s.systemConfigAddresses(ctx)
	if err != nil {
		s.logger.With("err", err).Warn("failed to read system config addresses")
		view.AddressesError = err.Error()
		return view, nil
	}
	view.Addresses = addrs

	return view, nil
}

func (s *Service) systemConfigAddresses(ctx context.Context) (*SystemConfigAddresses, error) {
	sysCfg, err := s.systemConfig()
	if err != nil {
		return nil, err
	}

	addrs := &SystemConfigAddresses{SystemConfig: sysCfg.Address()}
	reads := []struct {
		dst  *common.Address
		read func(context.Context) (common.Address, error)
	}{
		{&addrs.L1StandardBridge, sysCfg.L1StandardBridge},
		{&addrs.OptimismPortal, sysCfg.OptimismPortal},
		{&addrs.L1CrossDomainMessenger, sysCfg.L1CrossDomainMessenger},
		{&addrs.DisputeGameFactory, sysCfg.DisputeGameFactory},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, r := range reads {
		g.Go(func() error {
			addr, err := r.read(gctx)
			if err != nil {
				return err
			}
			*r.dst = addr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return addrs, nil
}
