package dispute

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	gameTypeHexLen  = 8
	timestampHexLen = 16
	addressHexLen   = 2 * common.AddressLength

	minMetadataHexLen = gameTypeHexLen + addressHexLen
	gameIDHexLen      = gameTypeHexLen + timestampHexLen + addressHexLen
)

var ErrMalformedMetadata = errors.New("malformed game metadata")

// GameMetadata is the decoded form of the packed word returned by the
// factory listing: a 4-byte game type in the leading position and the game
// address in the low 160 bits. Full 32-byte GameId words additionally carry
// the creation timestamp between the two.
type GameMetadata struct {
	Address   common.Address `json:"address" yaml:"address"`
	Type      uint32         `json:"type" yaml:"type"`
	Timestamp uint64         `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

func ParseGameMetadata(metadata string) (GameMetadata, error) {
	body := metadata
	if has0xPrefix(body) {
		body = body[2:]
	}

	if len(body) < minMetadataHexLen {
		return GameMetadata{}, fmt.Errorf("%w: need at least %d hex characters, got %d", ErrMalformedMetadata, minMetadataHexLen, len(body))
	}

	gameType, err := strconv.ParseUint(body[:gameTypeHexLen], 16, 32)
	if err != nil {
		return GameMetadata{}, fmt.Errorf("%w: game type: %v", ErrMalformedMetadata, err)
	}

	addrHex := body[len(body)-addressHexLen:]
	if _, err := hex.DecodeString(addrHex); err != nil {
		return GameMetadata{}, fmt.Errorf("%w: address: %v", ErrMalformedMetadata, err)
	}

	meta := GameMetadata{
		Address: common.HexToAddress(addrHex),
		Type:    uint32(gameType),
	}

	if len(body) == gameIDHexLen {
		ts, err := strconv.ParseUint(body[gameTypeHexLen:gameTypeHexLen+timestampHexLen], 16, 64)
		if err != nil {
			return GameMetadata{}, fmt.Errorf("%w: timestamp: %v", ErrMalformedMetadata, err)
		}
		meta.Timestamp = ts
	}

	return meta, nil
}

// ParseGameID decodes a raw 32-byte GameId word.
func ParseGameID(id [32]byte) (GameMetadata, error) {
	return ParseGameMetadata(hexutil.Encode(id[:]))
}

// PackGameMetadata produces the short type+address form accepted by ParseGameMetadata.
func PackGameMetadata(gameType uint32, addr common.Address) string {
	return fmt.Sprintf("0x%08x%s", gameType, hex.EncodeToString(addr.Bytes()))
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && strings.ContainsRune("xX", rune(s[1]))
}
