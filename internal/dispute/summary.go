package dispute

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// GameSummary is one row of the factory game list. The status comes from a
// secondary lookup and stays unset until that lookup succeeds.
type GameSummary struct {
	Index     *big.Int
	Address   common.Address
	Timestamp uint64
	Type      uint32
	RootClaim common.Hash

	status   GameStatus
	resolved bool
}

// ResolveStatus records the game status. There is no way to unset it.
func (g *GameSummary) ResolveStatus(status GameStatus) {
	g.status = status
	g.resolved = true
}

func (g GameSummary) Status() (GameStatus, bool) {
	return g.status, g.resolved
}

func (g GameSummary) StatusText() string {
	if !g.resolved {
		return "Unknown"
	}
	return g.status.String()
}
