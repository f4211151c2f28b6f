package chains

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var ErrRegistryNotLoaded = errors.New("superchain registry not loaded")

const SystemConfigProxy = "SystemConfigProxy"

type (
	// SuperchainConfig is the subset of a superchain-registry chain TOML
	// file this tool reads.
	SuperchainConfig struct {
		Name                 string            `toml:"name" json:"name" yaml:"name"`
		ChainID              uint64            `toml:"chain_id" json:"chainId" yaml:"chainId"`
		PublicRPC            string            `toml:"public_rpc" json:"publicRpc" yaml:"publicRpc"`
		SequencerRPC         string            `toml:"sequencer_rpc" json:"sequencerRpc" yaml:"sequencerRpc"`
		Explorer             string            `toml:"explorer" json:"explorer" yaml:"explorer"`
		SuperchainLevel      int               `toml:"superchain_level" json:"superchainLevel" yaml:"superchainLevel"`
		DataAvailabilityType string            `toml:"data_availability_type" json:"dataAvailabilityType" yaml:"dataAvailabilityType"`
		BlockTime            uint64            `toml:"block_time" json:"blockTime" yaml:"blockTime"`
		SeqWindowSize        uint64            `toml:"seq_window_size" json:"seqWindowSize" yaml:"seqWindowSize"`
		MaxSequencerDrift    uint64            `toml:"max_sequencer_drift" json:"maxSequencerDrift" yaml:"maxSequencerDrift"`
		BatchInboxAddr       string            `toml:"batch_inbox_addr" json:"batchInboxAddr" yaml:"batchInboxAddr"`
		Hardforks            map[string]int64  `toml:"hardforks" json:"hardforks" yaml:"hardforks"`
		Optimism             OptimismConfig    `toml:"optimism" json:"optimism" yaml:"optimism"`
		Roles                map[string]string `toml:"roles" json:"roles" yaml:"roles"`
		Addresses            map[string]string `toml:"addresses" json:"addresses" yaml:"addresses"`
	}

	OptimismConfig struct {
		EIP1559Elasticity        uint64 `toml:"eip1559_elasticity" json:"eip1559Elasticity" yaml:"eip1559Elasticity"`
		EIP1559Denominator       uint64 `toml:"eip1559_denominator" json:"eip1559Denominator" yaml:"eip1559Denominator"`
		EIP1559DenominatorCanyon uint64 `toml:"eip1559_denominator_canyon" json:"eip1559DenominatorCanyon" yaml:"eip1559DenominatorCanyon"`
	}
)

// Address looks up a named contract address from the [addresses] table.
func (c *SuperchainConfig) Address(name string) (common.Address, error) {
	raw, ok := c.Addresses[name]
	if !ok || raw == "" {
		return common.Address{}, fmt.Errorf("address %s not present in superchain registry for %s", name, c.Name)
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("address %s has invalid value %q", name, raw)
	}
	return common.HexToAddress(raw), nil
}

func (c *SuperchainConfig) SystemConfigProxy() (common.Address, error) {
	return c.Address(SystemConfigProxy)
}

type RegistryState uint8

const (
	RegistryUnloaded RegistryState = iota
	RegistryLoaded
	RegistryFailed
)

func (s RegistryState) String() string {
	switch s {
	case RegistryLoaded:
		return "loaded"
	case RegistryFailed:
		return "failed"
	default:
		return "unloaded"
	}
}

// RegistryInfo is the load state of a chain's superchain registry entry.
// The zero value is Unloaded.
type RegistryInfo struct {
	state  RegistryState
	config *SuperchainConfig
	err    error
}

func Loaded(cfg *SuperchainConfig) RegistryInfo {
	return RegistryInfo{state: RegistryLoaded, config: cfg}
}

func Failed(err error) RegistryInfo {
	return RegistryInfo{state: RegistryFailed, err: err}
}

func (r RegistryInfo) State() RegistryState {
	return r.state
}

// Config returns the loaded record, the load error, or ErrRegistryNotLoaded.
func (r RegistryInfo) Config() (*SuperchainConfig, error) {
	switch r.state {
	case RegistryLoaded:
		return r.config, nil
	case RegistryFailed:
		return nil, r.err
	default:
		return nil, ErrRegistryNotLoaded
	}
}
