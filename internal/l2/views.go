package l2

import (
	"fmt"
	"math/big"

	"github.com/compose-network/dispute-explorer/configs"
	"github.com/compose-network/dispute-explorer/internal/contracts"
	"github.com/compose-network/dispute-explorer/internal/fees"
	"github.com/compose-network/dispute-explorer/internal/render"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type (
	InfoView struct {
		Network       configs.ChainName     `json:"network" yaml:"network"`
		DisplayName   string                `json:"displayName" yaml:"displayName"`
		ChainID       uint64                `json:"chainId,omitempty" yaml:"chainId,omitempty"`
		BlockNumber   *big.Int              `json:"blockNumber" yaml:"blockNumber"`
		BlockTime     uint64                `json:"blockTime" yaml:"blockTime"`
		GasLimit      uint64                `json:"gasLimit" yaml:"gasLimit"`
		BaseFee       *big.Int              `json:"baseFee,omitempty" yaml:"baseFee,omitempty"`
		EIP1559       fees.EIP1559Params    `json:"eip1559" yaml:"eip1559"`
		GasRates      GasRates              `json:"gasRates" yaml:"gasRates"`
		L1Origin      uint64                `json:"l1Origin,omitempty" yaml:"l1Origin,omitempty"`
		L1OriginError string                `json:"l1OriginError,omitempty" yaml:"l1OriginError,omitempty"`
		RegistryError string                `json:"registryError,omitempty" yaml:"registryError,omitempty"`
		Predeploys    []contracts.Predeploy `json:"predeploys" yaml:"predeploys"`
	}

	// GasRates are expressed in millions of gas.
	GasRates struct {
		LimitPerBlock   string `json:"limitPerBlock" yaml:"limitPerBlock"`
		LimitPerSecond  string `json:"limitPerSecond" yaml:"limitPerSecond"`
		TargetPerBlock  string `json:"targetPerBlock" yaml:"targetPerBlock"`
		TargetPerSecond string `json:"targetPerSecond" yaml:"targetPerSecond"`
	}
)

func (v InfoView) Sections() []render.Section {
	l1Origin := fmt.Sprint(v.L1Origin)
	if v.L1OriginError != "" {
		l1Origin = "unavailable"
	}

	head := render.KeyValues(fmt.Sprintf("L2 %s", v.DisplayName),
		render.KV{Key: "Block Number", Value: v.BlockNumber},
		render.KV{Key: "Block Time", Value: blockTime(v.BlockTime)},
		render.KV{Key: "L1 Origin Block", Value: l1Origin},
		render.KV{Key: "Base Fee", Value: render.Gwei(v.BaseFee)},
	)
	if v.RegistryError != "" {
		head.Notes = append(head.Notes, "Superchain registry unavailable: "+v.RegistryError)
	}

	valid := "no"
	if v.EIP1559.IsValid {
		valid = "yes"
	}
	eip1559 := render.KeyValues("EIP-1559 Parameters",
		render.KV{Key: "Version", Value: v.EIP1559.Version},
		render.KV{Key: "Denominator", Value: v.EIP1559.Denominator},
		render.KV{Key: "Elasticity", Value: v.EIP1559.Elasticity},
		render.KV{Key: "Valid", Value: valid},
	)

	gas := render.Section{
		Title:   "Gas (Mgas)",
		Headers: []string{"", "Per Block", "Per Second"},
		Rows: [][]any{
			{"Limit", v.GasRates.LimitPerBlock, v.GasRates.LimitPerSecond},
			{"Target", v.GasRates.TargetPerBlock, v.GasRates.TargetPerSecond},
		},
	}

	predeploys := render.Section{Title: "Predeploys", Headers: []string{"Name", "Address"}}
	for _, p := range v.Predeploys {
		predeploys.Rows = append(predeploys.Rows, []any{p.Name, p.Address.Hex()})
	}

	return []render.Section{head, eip1559, gas, predeploys}
}

func blockTime(seconds uint64) string {
	if seconds == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%ds", seconds)
}

type (
	WithdrawalsView struct {
		Network     configs.ChainName `json:"network" yaml:"network"`
		FromBlock   uint64            `json:"fromBlock" yaml:"fromBlock"`
		ToBlock     uint64            `json:"toBlock" yaml:"toBlock"`
		Total       int               `json:"total" yaml:"total"`
		Withdrawals []WithdrawalRow   `json:"withdrawals" yaml:"withdrawals"`
	}

	WithdrawalRow struct {
		Nonce          *big.Int       `json:"nonce" yaml:"nonce"`
		Sender         common.Address `json:"sender" yaml:"sender"`
		Target         common.Address `json:"target" yaml:"target"`
		Value          *big.Int       `json:"value" yaml:"value"`
		GasLimit       *big.Int       `json:"gasLimit" yaml:"gasLimit"`
		Data           hexutil.Bytes  `json:"data" yaml:"data"`
		WithdrawalHash common.Hash    `json:"withdrawalHash" yaml:"withdrawalHash"`
		BlockNumber    uint64         `json:"blockNumber" yaml:"blockNumber"`
		TxHash         common.Hash    `json:"txHash" yaml:"txHash"`
	}
)

func newWithdrawalRow(m contracts.MessagePassed) WithdrawalRow {
	return WithdrawalRow{
		Nonce:          m.Nonce,
		Sender:         m.Sender,
		Target:         m.Target,
		Value:          m.Value,
		GasLimit:       m.GasLimit,
		Data:           m.Data,
		WithdrawalHash: common.Hash(m.WithdrawalHash),
		BlockNumber:    m.BlockNumber,
		TxHash:         m.TxHash,
	}
}

func (v WithdrawalsView) Sections() []render.Section {
	s := render.Section{
		Title:   fmt.Sprintf("Withdrawals (blocks %d to %d)", v.FromBlock, v.ToBlock),
		Headers: []string{"Block", "Tx", "Sender", "Target", "Value", "Withdrawal Hash"},
	}
	for _, w := range v.Withdrawals {
		s.Rows = append(s.Rows, []any{
			w.BlockNumber,
			render.ShortHash(w.TxHash),
			w.Sender.Hex(),
			w.Target.Hex(),
			render.Ether(w.Value),
			render.ShortHash(w.WithdrawalHash),
		})
	}
	s.Notes = append(s.Notes, fmt.Sprintf("Showing %d of %d", len(v.Withdrawals), v.Total))
	return []render.Section{s}
}
