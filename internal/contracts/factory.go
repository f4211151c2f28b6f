package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// GameSearchResult is one entry returned by findLatestGames. Field names
// follow the ABI tuple components.
type GameSearchResult struct {
	Index     *big.Int
	Metadata  [32]byte
	Timestamp uint64
	RootClaim [32]byte
	ExtraData []byte
}

type DisputeGameFactory struct {
	contract *boundContract
}

func NewDisputeGameFactory(address common.Address, caller bind.ContractCaller) *DisputeGameFactory {
	return &DisputeGameFactory{
		contract: &boundContract{address: address, abi: DisputeGameFactoryABI, caller: caller},
	}
}

func (f *DisputeGameFactory) Address() common.Address {
	return f.contract.address
}

func (f *DisputeGameFactory) GameCount(ctx context.Context) (uint64, error) {
	n, err := callAs[*big.Int](ctx, f.contract, "gameCount")
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("gameCount %s out of range", n)
	}
	return n.Uint64(), nil
}

// FindLatestGames returns up to n games of gameType walking backwards from
// logical index start.
func (f *DisputeGameFactory) FindLatestGames(ctx context.Context, gameType uint32, start, n uint64) ([]GameSearchResult, error) {
	out, err := f.contract.call(ctx, "findLatestGames", gameType, new(big.Int).SetUint64(start), new(big.Int).SetUint64(n))
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new([]GameSearchResult)).(*[]GameSearchResult), nil
}
