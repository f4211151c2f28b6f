// Package contractstest provides an in-memory chain backend that answers
// contract calls from ABI-encoded handlers.
package contractstest

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrReverted = errors.New("execution reverted")

// Handler receives the decoded call arguments and returns the output values.
type Handler func(args []any) ([]any, error)

type method struct {
	abi     abi.Method
	handler Handler
}

type Backend struct {
	mu      sync.Mutex
	code    map[common.Address][]byte
	methods map[common.Address]map[[4]byte]method
	calls   map[string]int
	logs    []types.Log

	Header      *types.Header
	ChainIDVal  *big.Int
	GasPriceVal *big.Int
}

func New() *Backend {
	return &Backend{
		code:    make(map[common.Address][]byte),
		methods: make(map[common.Address]map[[4]byte]method),
		calls:   make(map[string]int),
	}
}

// Deploy marks addr as holding code.
func (b *Backend) Deploy(addr common.Address) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.code[addr] = []byte{0x60, 0x80}
}

// Handle registers fn for calls of name on addr and deploys addr.
func (b *Backend) Handle(addr common.Address, contractABI abi.ABI, name string, fn Handler) {
	m, ok := contractABI.Methods[name]
	if !ok {
		panic(fmt.Sprintf("unknown method %s", name))
	}

	b.Deploy(addr)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.methods[addr] == nil {
		b.methods[addr] = make(map[[4]byte]method)
	}
	b.methods[addr][[4]byte(m.ID)] = method{abi: m, handler: fn}
}

// Return registers constant output values for name on addr.
func (b *Backend) Return(addr common.Address, contractABI abi.ABI, name string, values ...any) {
	b.Handle(addr, contractABI, name, func([]any) ([]any, error) { return values, nil })
}

// Revert makes every call of name on addr fail.
func (b *Backend) Revert(addr common.Address, contractABI abi.ABI, name string) {
	b.Handle(addr, contractABI, name, func([]any) ([]any, error) { return nil, ErrReverted })
}

func (b *Backend) AddLogs(logs ...types.Log) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logs = append(b.logs, logs...)
}

// Calls reports how many times name was called across all addresses.
func (b *Backend) Calls(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[name]
}

func (b *Backend) CodeAt(_ context.Context, account common.Address, _ *big.Int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.code[account], nil
}

func (b *Backend) CallContract(ctx context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if call.To == nil || len(call.Data) < 4 {
		return nil, fmt.Errorf("invalid call")
	}

	b.mu.Lock()
	if _, ok := b.code[*call.To]; !ok {
		b.mu.Unlock()
		return nil, nil
	}
	m, ok := b.methods[*call.To][[4]byte(call.Data[:4])]
	if ok {
		b.calls[m.abi.Name]++
	}
	b.mu.Unlock()

	if !ok {
		return nil, ErrReverted
	}

	args, err := m.abi.Inputs.Unpack(call.Data[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s inputs: %w", m.abi.Name, err)
	}

	out, err := m.handler(args)
	if err != nil {
		return nil, err
	}

	return m.abi.Outputs.Pack(out...)
}

func (b *Backend) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []types.Log
	for _, log := range b.logs {
		if q.FromBlock != nil && log.BlockNumber < q.FromBlock.Uint64() {
			continue
		}
		if q.ToBlock != nil && log.BlockNumber > q.ToBlock.Uint64() {
			continue
		}
		if len(q.Addresses) > 0 && !slices.Contains(q.Addresses, log.Address) {
			continue
		}
		if len(q.Topics) > 0 && len(q.Topics[0]) > 0 && (len(log.Topics) == 0 || !slices.Contains(q.Topics[0], log.Topics[0])) {
			continue
		}
		out = append(out, log)
	}
	return out, nil
}

func (b *Backend) SubscribeFilterLogs(context.Context, ethereum.FilterQuery, chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errors.New("subscriptions not supported")
}

func (b *Backend) HeaderByNumber(_ context.Context, number *big.Int) (*types.Header, error) {
	if b.Header == nil {
		return nil, ethereum.NotFound
	}
	if number != nil && number.Cmp(b.Header.Number) != 0 {
		return nil, ethereum.NotFound
	}
	return b.Header, nil
}

func (b *Backend) BlockNumber(context.Context) (uint64, error) {
	if b.Header == nil {
		return 0, nil
	}
	return b.Header.Number.Uint64(), nil
}

func (b *Backend) ChainID(context.Context) (*big.Int, error) {
	if b.ChainIDVal == nil {
		return nil, errors.New("chain id not set")
	}
	return b.ChainIDVal, nil
}

func (b *Backend) SuggestGasPrice(context.Context) (*big.Int, error) {
	if b.GasPriceVal == nil {
		return big.NewInt(0), nil
	}
	return b.GasPriceVal, nil
}

func (b *Backend) Close() {}
