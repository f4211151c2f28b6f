package render

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
)

// ShortHash renders h as 0x12345678...12345678.
func ShortHash(h common.Hash) string {
	s := h.Hex()
	return s[:10] + "..." + s[len(s)-8:]
}

// AddressOrNone renders the zero address as None.
func AddressOrNone(addr common.Address) string {
	if addr == (common.Address{}) {
		return "None"
	}
	return addr.Hex()
}

// Ether renders a wei amount in ETH without losing precision.
func Ether(wei *big.Int) string {
	if wei == nil {
		return "0 ETH"
	}
	eth := new(big.Rat).SetFrac(wei, big.NewInt(params.Ether))
	return trimZeros(eth.FloatString(18)) + " ETH"
}

// Gwei renders a wei amount in gwei with two decimals.
func Gwei(wei *big.Int) string {
	if wei == nil {
		return "0 gwei"
	}
	gwei := new(big.Rat).SetFrac(wei, big.NewInt(params.GWei))
	return gwei.FloatString(2) + " gwei"
}

func Timestamp(unix uint64) string {
	if unix == 0 {
		return "-"
	}
	return time.Unix(int64(unix), 0).UTC().Format(time.RFC3339)
}

func trimZeros(s string) string {
	end := len(s)
	for end > 0 && s[end-1] == '0' {
		end--
	}
	if end > 0 && s[end-1] == '.' {
		end--
	}
	return s[:end]
}
