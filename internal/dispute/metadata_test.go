package dispute

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestGameMetadataRoundTrip(t *testing.T) {
	addr := common.BytesToAddress(bytes.Repeat([]byte{0xaa}, common.AddressLength))

	packed := PackGameMetadata(0x1234, addr)
	require.Equal(t, "0x00001234"+"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", packed)

	meta, err := ParseGameMetadata(packed)
	require.NoError(t, err)
	require.Equal(t, GameMetadata{Address: addr, Type: 0x1234}, meta)
}

func TestParseGameMetadataWithoutPrefix(t *testing.T) {
	meta, err := ParseGameMetadata("00000001" + "4200000000000000000000000000000000000016")
	require.NoError(t, err)
	require.Equal(t, uint32(1), meta.Type)
	require.Equal(t, common.HexToAddress("0x4200000000000000000000000000000000000016"), meta.Address)
}

func TestParseGameID(t *testing.T) {
	var id [32]byte
	id[3] = 0x01
	id[11] = 0x64
	addr := common.HexToAddress("0x00000000000000000000000000000000deadbeef")
	copy(id[12:], addr.Bytes())

	meta, err := ParseGameID(id)
	require.NoError(t, err)
	require.Equal(t, GameMetadata{Address: addr, Type: 1, Timestamp: 100}, meta)
}

func TestParseGameMetadataErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "prefix only", input: "0x"},
		{name: "too short", input: "0x0000000142000000000000000000000000000000000016"},
		{name: "bad type", input: "0xzz0000014200000000000000000000000000000000000016"},
		{name: "bad address", input: "0x00000001zz00000000000000000000000000000000000016"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGameMetadata(tt.input)
			require.ErrorIs(t, err, ErrMalformedMetadata)
		})
	}
}
