package contracts

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Minimal read-only ABIs of the contracts-bedrock contracts this tool reads.
const (
	faultDisputeGameABIJSON = `[
		{"type":"function","name":"createdAt","inputs":[],"outputs":[{"name":"","type":"uint64"}],"stateMutability":"view"},
		{"type":"function","name":"resolvedAt","inputs":[],"outputs":[{"name":"","type":"uint64"}],"stateMutability":"view"},
		{"type":"function","name":"gameType","inputs":[],"outputs":[{"name":"gameType_","type":"uint32"}],"stateMutability":"view"},
		{"type":"function","name":"rootClaim","inputs":[],"outputs":[{"name":"rootClaim_","type":"bytes32"}],"stateMutability":"view"},
		{"type":"function","name":"status","inputs":[],"outputs":[{"name":"","type":"uint8"}],"stateMutability":"view"},
		{"type":"function","name":"l1Head","inputs":[],"outputs":[{"name":"l1Head_","type":"bytes32"}],"stateMutability":"view"},
		{"type":"function","name":"gameCreator","inputs":[],"outputs":[{"name":"creator_","type":"address"}],"stateMutability":"view"},
		{"type":"function","name":"l2BlockNumber","inputs":[],"outputs":[{"name":"l2BlockNumber_","type":"uint256"}],"stateMutability":"view"},
		{"type":"function","name":"l2ChainId","inputs":[],"outputs":[{"name":"l2ChainId_","type":"uint256"}],"stateMutability":"view"},
		{"type":"function","name":"claimDataLen","inputs":[],"outputs":[{"name":"len_","type":"uint256"}],"stateMutability":"view"},
		{"type":"function","name":"claimData","inputs":[{"name":"","type":"uint256"}],"outputs":[
			{"name":"parentIndex","type":"uint32"},
			{"name":"counteredBy","type":"address"},
			{"name":"claimant","type":"address"},
			{"name":"bond","type":"uint128"},
			{"name":"claim","type":"bytes32"},
			{"name":"position","type":"uint128"},
			{"name":"clock","type":"uint128"}
		],"stateMutability":"view"}
	]`

	disputeGameFactoryABIJSON = `[
		{"type":"function","name":"gameCount","inputs":[],"outputs":[{"name":"gameCount_","type":"uint256"}],"stateMutability":"view"},
		{"type":"function","name":"findLatestGames","inputs":[
			{"name":"_gameType","type":"uint32"},
			{"name":"_start","type":"uint256"},
			{"name":"_n","type":"uint256"}
		],"outputs":[{"name":"games_","type":"tuple[]","components":[
			{"name":"index","type":"uint256"},
			{"name":"metadata","type":"bytes32"},
			{"name":"timestamp","type":"uint64"},
			{"name":"rootClaim","type":"bytes32"},
			{"name":"extraData","type":"bytes"}
		]}],"stateMutability":"view"}
	]`

	systemConfigABIJSON = `[
		{"type":"function","name":"disputeGameFactory","inputs":[],"outputs":[{"name":"addr_","type":"address"}],"stateMutability":"view"},
		{"type":"function","name":"l1StandardBridge","inputs":[],"outputs":[{"name":"addr_","type":"address"}],"stateMutability":"view"},
		{"type":"function","name":"optimismPortal","inputs":[],"outputs":[{"name":"addr_","type":"address"}],"stateMutability":"view"},
		{"type":"function","name":"l1CrossDomainMessenger","inputs":[],"outputs":[{"name":"addr_","type":"address"}],"stateMutability":"view"}
	]`

	l1BlockABIJSON = `[
		{"type":"function","name":"number","inputs":[],"outputs":[{"name":"","type":"uint64"}],"stateMutability":"view"},
		{"type":"function","name":"timestamp","inputs":[],"outputs":[{"name":"","type":"uint64"}],"stateMutability":"view"}
	]`

	l2ToL1MessagePasserABIJSON = `[
		{"type":"function","name":"messageNonce","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
		{"type":"event","name":"MessagePassed","anonymous":false,"inputs":[
			{"name":"nonce","type":"uint256","indexed":true},
			{"name":"sender","type":"address","indexed":true},
			{"name":"target","type":"address","indexed":true},
			{"name":"value","type":"uint256","indexed":false},
			{"name":"gasLimit","type":"uint256","indexed":false},
			{"name":"data","type":"bytes","indexed":false},
			{"name":"withdrawalHash","type":"bytes32","indexed":false}
		]}
	]`
)

var (
	FaultDisputeGameABI    = mustParseABI("FaultDisputeGame", faultDisputeGameABIJSON)
	DisputeGameFactoryABI  = mustParseABI("DisputeGameFactory", disputeGameFactoryABIJSON)
	SystemConfigABI        = mustParseABI("SystemConfig", systemConfigABIJSON)
	L1BlockABI             = mustParseABI("L1Block", l1BlockABIJSON)
	L2ToL1MessagePasserABI = mustParseABI("L2ToL1MessagePasser", l2ToL1MessagePasserABIJSON)
)

func mustParseABI(name, raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse %s ABI: %v", name, err))
	}
	return parsed
}
