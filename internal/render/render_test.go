package render

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/compose-network/dispute-explorer/configs"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

type sampleView struct {
	Name  string         `json:"name" yaml:"name"`
	Owner common.Address `json:"owner" yaml:"owner"`
}

func (v sampleView) Sections() []Section {
	return []Section{
		KeyValues("Sample", KV{"Name", v.Name}, KV{"Owner", v.Owner.Hex()}),
		{Title: "Empty", Notes: []string{"nothing here"}},
	}
}

func TestPrintTable(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	view := sampleView{Name: "op-mainnet", Owner: common.HexToAddress("0x01")}
	require.NoError(t, New(&buf, configs.OutputTable).Print(view))

	out := buf.String()
	require.Contains(t, out, "Sample")
	require.Contains(t, out, "Field")
	require.Contains(t, out, "op-mainnet")
	require.Contains(t, out, "0x0000000000000000000000000000000000000001")
	require.Contains(t, out, "nothing here")
}

func TestPrintTableRequiresTabular(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, configs.OutputTable).Print(struct{}{})
	require.ErrorIs(t, err, ErrNotTabular)
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	view := sampleView{Name: "base", Owner: common.HexToAddress("0x02")}
	require.NoError(t, New(&buf, configs.OutputJSON).Print(view))
	require.JSONEq(t, `{"name":"base","owner":"0x0000000000000000000000000000000000000002"}`, buf.String())
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	view := sampleView{Name: "ink", Owner: common.HexToAddress("0x03")}
	require.NoError(t, New(&buf, configs.OutputYAML).Print(view))
	require.YAMLEq(t, "name: ink\nowner: \"0x0000000000000000000000000000000000000003\"\n", buf.String())
}

func TestFormatting(t *testing.T) {
	h := common.HexToHash("0x1234567800000000000000000000000000000000000000000000000087654321")
	require.Equal(t, "0x12345678...87654321", ShortHash(h))

	require.Equal(t, "None", AddressOrNone(common.Address{}))
	require.Equal(t, "0x0000000000000000000000000000000000000001", AddressOrNone(common.HexToAddress("0x01")))

	require.Equal(t, "0.08 ETH", Ether(big.NewInt(80_000_000_000_000_000)))
	require.Equal(t, "1 ETH", Ether(big.NewInt(1_000_000_000_000_000_000)))
	require.Equal(t, "0 ETH", Ether(big.NewInt(0)))
	require.Equal(t, "1.50 gwei", Gwei(big.NewInt(1_500_000_000)))

	require.Equal(t, "-", Timestamp(0))
	require.Equal(t, "2023-11-14T22:13:20Z", Timestamp(1_700_000_000))
}
