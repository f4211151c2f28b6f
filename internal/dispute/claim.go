package dispute

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// RootParentIndex is the parentIndex FaultDisputeGame stores for the root
// claim (type(uint32).max).
const RootParentIndex uint32 = math.MaxUint32

const claimTupleArity = 7

var ErrMalformedTuple = errors.New("malformed claim tuple")

type (
	// ClaimData mirrors the claimData(uint256) getter of FaultDisputeGame.
	ClaimData struct {
		ParentIndex uint32         `json:"parentIndex" yaml:"parentIndex"`
		CounteredBy common.Address `json:"counteredBy" yaml:"counteredBy"`
		Claimant    common.Address `json:"claimant" yaml:"claimant"`
		Bond        *big.Int       `json:"bond" yaml:"bond"`
		Claim       common.Hash    `json:"claim" yaml:"claim"`
		Position    *big.Int       `json:"position" yaml:"position"`
		Clock       Clock          `json:"clock" yaml:"clock"`
	}

	Claim struct {
		Index     int       `json:"index" yaml:"index"`
		ClaimData ClaimData `json:"claimData" yaml:"claimData"`
	}
)

// ParseClaimData maps the positional output of claimData(index) onto a Claim.
// Field order is parentIndex, counteredBy, claimant, bond, claim, position, clock.
func ParseClaimData(raw []any, index int) (Claim, error) {
	if len(raw) < claimTupleArity {
		return Claim{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedTuple, claimTupleArity, len(raw))
	}

	parentIndex, err := tupleField[uint32](raw, 0, "parentIndex")
	if err != nil {
		return Claim{}, err
	}
	counteredBy, err := tupleField[common.Address](raw, 1, "counteredBy")
	if err != nil {
		return Claim{}, err
	}
	claimant, err := tupleField[common.Address](raw, 2, "claimant")
	if err != nil {
		return Claim{}, err
	}
	bond, err := tupleField[*big.Int](raw, 3, "bond")
	if err != nil {
		return Claim{}, err
	}
	value, err := hashField(raw, 4, "claim")
	if err != nil {
		return Claim{}, err
	}
	position, err := tupleField[*big.Int](raw, 5, "position")
	if err != nil {
		return Claim{}, err
	}
	clock, err := tupleField[*big.Int](raw, 6, "clock")
	if err != nil {
		return Claim{}, err
	}

	return Claim{
		Index: index,
		ClaimData: ClaimData{
			ParentIndex: parentIndex,
			CounteredBy: counteredBy,
			Claimant:    claimant,
			Bond:        bond,
			Claim:       value,
			Position:    position,
			Clock:       UnpackClock(clock),
		},
	}, nil
}

func tupleField[T any](raw []any, pos int, name string) (T, error) {
	v, ok := raw[pos].(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: field %d (%s) is %T, want %T", ErrMalformedTuple, pos, name, raw[pos], zero)
	}
	return v, nil
}

func hashField(raw []any, pos int, name string) (common.Hash, error) {
	switch v := raw[pos].(type) {
	case [32]byte:
		return common.Hash(v), nil
	case common.Hash:
		return v, nil
	default:
		return common.Hash{}, fmt.Errorf("%w: field %d (%s) is %T, want bytes32", ErrMalformedTuple, pos, name, raw[pos])
	}
}

func (c Claim) IsRoot() bool {
	return c.ClaimData.ParentIndex == RootParentIndex
}

func (c Claim) Countered() bool {
	return c.ClaimData.CounteredBy != (common.Address{})
}
