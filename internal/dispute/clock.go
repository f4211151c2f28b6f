package dispute

import (
	"math/big"
	"time"

	"github.com/holiman/uint256"
)

// Clock is the chess clock of a claim, packed on chain into a uint128 as
// (timestamp << 64) | duration.
type Clock struct {
	Duration  uint64 `json:"duration" yaml:"duration"`
	Timestamp uint64 `json:"timestamp" yaml:"timestamp"`
}

// UnpackClock splits a packed clock. Bits above 128 are ignored and a nil
// value decodes to the zero clock.
func UnpackClock(raw *big.Int) Clock {
	if raw == nil {
		return Clock{}
	}

	var word uint256.Int
	word.SetFromBig(raw)

	return Clock{
		Duration:  word[0],
		Timestamp: word[1],
	}
}

// PackClock is the inverse of UnpackClock.
func PackClock(duration, timestamp uint64) *big.Int {
	word := uint256.Int{duration, timestamp, 0, 0}
	return word.ToBig()
}

func (c Clock) Packed() *big.Int {
	return PackClock(c.Duration, c.Timestamp)
}

func (c Clock) Time() time.Time {
	return time.Unix(int64(c.Timestamp), 0).UTC()
}

func (c Clock) Elapsed() time.Duration {
	return time.Duration(c.Duration) * time.Second
}
