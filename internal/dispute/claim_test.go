package dispute

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func repeatAddress(b byte) common.Address {
	return common.BytesToAddress(bytes.Repeat([]byte{b}, common.AddressLength))
}

func repeatHash(b byte) [32]byte {
	var h [32]byte
	copy(h[:], bytes.Repeat([]byte{b}, 32))
	return h
}

func claimTuple(parent uint32, counteredBy common.Address) []any {
	return []any{
		parent,
		counteredBy,
		repeatAddress(0x22),
		big.NewInt(10),
		repeatHash(0x33),
		big.NewInt(5),
		big.NewInt(7),
	}
}

func TestParseClaimData(t *testing.T) {
	claim, err := ParseClaimData(claimTuple(1, repeatAddress(0x11)), 0)
	require.NoError(t, err)

	require.Equal(t, 0, claim.Index)
	require.Equal(t, uint32(1), claim.ClaimData.ParentIndex)
	require.Equal(t, repeatAddress(0x11), claim.ClaimData.CounteredBy)
	require.Equal(t, repeatAddress(0x22), claim.ClaimData.Claimant)
	require.Equal(t, int64(10), claim.ClaimData.Bond.Int64())
	require.Equal(t, common.Hash(repeatHash(0x33)), claim.ClaimData.Claim)
	require.Equal(t, int64(5), claim.ClaimData.Position.Int64())
	require.Equal(t, int64(7), claim.ClaimData.Clock.Packed().Int64())
	require.Equal(t, Clock{Duration: 7}, claim.ClaimData.Clock)
	require.True(t, claim.Countered())
	require.False(t, claim.IsRoot())
}

func TestParseClaimDataRoot(t *testing.T) {
	claim, err := ParseClaimData(claimTuple(RootParentIndex, common.Address{}), 0)
	require.NoError(t, err)
	require.True(t, claim.IsRoot())
	require.False(t, claim.Countered())
}

func TestParseClaimDataErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  []any
	}{
		{name: "empty", raw: nil},
		{name: "short", raw: claimTuple(0, common.Address{})[:6]},
		{name: "parent index type", raw: func() []any {
			raw := claimTuple(0, common.Address{})
			raw[0] = big.NewInt(0)
			return raw
		}()},
		{name: "claim type", raw: func() []any {
			raw := claimTuple(0, common.Address{})
			raw[4] = "0x33"
			return raw
		}()},
		{name: "clock type", raw: func() []any {
			raw := claimTuple(0, common.Address{})
			raw[6] = uint64(7)
			return raw
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseClaimData(tt.raw, 0)
			require.ErrorIs(t, err, ErrMalformedTuple)
		})
	}
}

func TestParseClaimDataIdempotent(t *testing.T) {
	raw := claimTuple(1, repeatAddress(0x11))

	first, err := ParseClaimData(raw, 3)
	require.NoError(t, err)
	second, err := ParseClaimData(raw, 3)
	require.NoError(t, err)

	require.Equal(t, first, second)
}
