package contracts

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

var (
	WETH9Address                  = common.HexToAddress("0x4200000000000000000000000000000000000006")
	L2CrossDomainMessengerAddress = common.HexToAddress("0x4200000000000000000000000000000000000007")
	L2StandardBridgeAddress       = common.HexToAddress("0x4200000000000000000000000000000000000010")
	SequencerFeeVaultAddress      = common.HexToAddress("0x4200000000000000000000000000000000000011")
	GasPriceOracleAddress         = common.HexToAddress("0x420000000000000000000000000000000000000F")
	L1BlockAddress                = common.HexToAddress("0x4200000000000000000000000000000000000015")
	L2ToL1MessagePasserAddress    = common.HexToAddress("0x4200000000000000000000000000000000000016")
	BaseFeeVaultAddress           = common.HexToAddress("0x4200000000000000000000000000000000000019")
	L1FeeVaultAddress             = common.HexToAddress("0x420000000000000000000000000000000000001a")
)

type Predeploy struct {
	Name    string         `json:"name" yaml:"name"`
	Address common.Address `json:"address" yaml:"address"`
}

// Predeploys lists the well-known L2 system contracts in address order.
func Predeploys() []Predeploy {
	return []Predeploy{
		{Name: "WETH9", Address: WETH9Address},
		{Name: "L2CrossDomainMessenger", Address: L2CrossDomainMessengerAddress},
		{Name: "GasPriceOracle", Address: GasPriceOracleAddress},
		{Name: "L2StandardBridge", Address: L2StandardBridgeAddress},
		{Name: "SequencerFeeVault", Address: SequencerFeeVaultAddress},
		{Name: "L1Block", Address: L1BlockAddress},
		{Name: "L2ToL1MessagePasser", Address: L2ToL1MessagePasserAddress},
		{Name: "BaseFeeVault", Address: BaseFeeVaultAddress},
		{Name: "L1FeeVault", Address: L1FeeVaultAddress},
	}
}

// L1Block is the predeploy exposing the L1 origin of the current L2 block.
type L1Block struct {
	contract *boundContract
}

func NewL1Block(caller bind.ContractCaller) *L1Block {
	return &L1Block{
		contract: &boundContract{address: L1BlockAddress, abi: L1BlockABI, caller: caller},
	}
}

func (b *L1Block) Number(ctx context.Context) (uint64, error) {
	return callAs[uint64](ctx, b.contract, "number")
}

func (b *L1Block) Timestamp(ctx context.Context) (uint64, error) {
	return callAs[uint64](ctx, b.contract, "timestamp")
}
