package contracts

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

type SystemConfig struct {
	contract *boundContract
}

func NewSystemConfig(address common.Address, caller bind.ContractCaller) *SystemConfig {
	return &SystemConfig{
		contract: &boundContract{address: address, abi: SystemConfigABI, caller: caller},
	}
}

func (s *SystemConfig) Address() common.Address {
	return s.contract.address
}

func (s *SystemConfig) DisputeGameFactory(ctx context.Context) (common.Address, error) {
	return callAs[common.Address](ctx, s.contract, "disputeGameFactory")
}

func (s *SystemConfig) L1StandardBridge(ctx context.Context) (common.Address, error) {
	return callAs[common.Address](ctx, s.contract, "l1StandardBridge")
}

func (s *SystemConfig) OptimismPortal(ctx context.Context) (common.Address, error) {
	return callAs[common.Address](ctx, s.contract, "optimismPortal")
}

func (s *SystemConfig) L1CrossDomainMessenger(ctx context.Context) (common.Address, error) {
	return callAs[common.Address](ctx, s.contract, "l1CrossDomainMessenger")
}
