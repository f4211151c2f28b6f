package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/compose-network/dispute-explorer/internal/dispute"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

type FaultDisputeGame struct {
	contract *boundContract
}

func NewFaultDisputeGame(address common.Address, caller bind.ContractCaller) *FaultDisputeGame {
	return &FaultDisputeGame{
		contract: &boundContract{address: address, abi: FaultDisputeGameABI, caller: caller},
	}
}

func (g *FaultDisputeGame) Address() common.Address {
	return g.contract.address
}

func (g *FaultDisputeGame) CreatedAt(ctx context.Context) (uint64, error) {
	return callAs[uint64](ctx, g.contract, "createdAt")
}

func (g *FaultDisputeGame) ResolvedAt(ctx context.Context) (uint64, error) {
	return callAs[uint64](ctx, g.contract, "resolvedAt")
}

func (g *FaultDisputeGame) GameType(ctx context.Context) (uint32, error) {
	return callAs[uint32](ctx, g.contract, "gameType")
}

func (g *FaultDisputeGame) RootClaim(ctx context.Context) (common.Hash, error) {
	raw, err := callAs[[32]byte](ctx, g.contract, "rootClaim")
	return common.Hash(raw), err
}

func (g *FaultDisputeGame) Status(ctx context.Context) (dispute.GameStatus, error) {
	raw, err := callAs[uint8](ctx, g.contract, "status")
	return dispute.GameStatus(raw), err
}

func (g *FaultDisputeGame) L1Head(ctx context.Context) (common.Hash, error) {
	raw, err := callAs[[32]byte](ctx, g.contract, "l1Head")
	return common.Hash(raw), err
}

func (g *FaultDisputeGame) GameCreator(ctx context.Context) (common.Address, error) {
	return callAs[common.Address](ctx, g.contract, "gameCreator")
}

func (g *FaultDisputeGame) L2BlockNumber(ctx context.Context) (*big.Int, error) {
	return callAs[*big.Int](ctx, g.contract, "l2BlockNumber")
}

func (g *FaultDisputeGame) L2ChainID(ctx context.Context) (*big.Int, error) {
	return callAs[*big.Int](ctx, g.contract, "l2ChainId")
}

func (g *FaultDisputeGame) ClaimDataLen(ctx context.Context) (uint64, error) {
	n, err := callAs[*big.Int](ctx, g.contract, "claimDataLen")
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("claimDataLen %s out of range", n)
	}
	return n.Uint64(), nil
}

// ClaimData reads and decodes the claim at index.
func (g *FaultDisputeGame) ClaimData(ctx context.Context, index int) (dispute.Claim, error) {
	out, err := g.contract.call(ctx, "claimData", big.NewInt(int64(index)))
	if err != nil {
		return dispute.Claim{}, err
	}
	return dispute.ParseClaimData(out, index)
}
