package contracts

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// ErrNoContract is returned when the target address holds no code.
var ErrNoContract = errors.New("no contract code at address")

// boundContract pairs an address with its ABI for constant calls.
type boundContract struct {
	address common.Address
	abi     abi.ABI
	caller  bind.ContractCaller
}

func (c *boundContract) call(ctx context.Context, method string, args ...any) ([]any, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	output, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s on %s: %w", method, c.address.Hex(), err)
	}

	if len(output) == 0 {
		if err := EnsureCode(ctx, c.caller, c.address); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("empty result from %s on %s", method, c.address.Hex())
	}

	values, err := c.abi.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no outputs for %s", method)
	}

	return values, nil
}

// EnsureCode returns ErrNoContract when addr has no deployed bytecode.
func EnsureCode(ctx context.Context, caller bind.ContractCaller, addr common.Address) error {
	code, err := caller.CodeAt(ctx, addr, nil)
	if err != nil {
		return fmt.Errorf("failed to get code at %s: %w", addr.Hex(), err)
	}
	if len(code) == 0 {
		return fmt.Errorf("%w: %s", ErrNoContract, addr.Hex())
	}
	return nil
}

func callAs[T any](ctx context.Context, c *boundContract, method string, args ...any) (T, error) {
	out, err := c.call(ctx, method, args...)
	if err != nil {
		return *new(T), err
	}
	return *abi.ConvertType(out[0], new(T)).(*T), nil
}
