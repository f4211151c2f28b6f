package fees

import (
	"encoding/binary"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	eip1559ParamsLen = 9
	maxExtraDataLen  = 32
	supportedVersion = 0
)

// EIP1559Params are the fee adjustment parameters carried in the first nine
// bytes of a block's extraData.
type EIP1559Params struct {
	Version     uint8  `json:"version" yaml:"version"`
	Denominator uint32 `json:"denominator" yaml:"denominator"`
	Elasticity  uint32 `json:"elasticity" yaml:"elasticity"`
	IsValid     bool   `json:"isValid" yaml:"isValid"`
}

// DecodeEIP1559Params decodes a hex encoded extraData field. Malformed or
// short input yields the zero value, which is never valid.
func DecodeEIP1559Params(extraData string) EIP1559Params {
	if !strings.HasPrefix(extraData, "0x") && !strings.HasPrefix(extraData, "0X") {
		extraData = "0x" + extraData
	}

	raw, err := hexutil.Decode(extraData)
	if err != nil {
		return EIP1559Params{}
	}
	return DecodeEIP1559ParamsBytes(raw)
}

func DecodeEIP1559ParamsBytes(extraData []byte) EIP1559Params {
	if len(extraData) < eip1559ParamsLen {
		return EIP1559Params{}
	}

	p := EIP1559Params{
		Version:     extraData[0],
		Denominator: binary.BigEndian.Uint32(extraData[1:5]),
		Elasticity:  binary.BigEndian.Uint32(extraData[5:9]),
	}
	p.IsValid = p.Version == supportedVersion && p.Denominator != 0 && len(extraData) <= maxExtraDataLen
	return p
}
