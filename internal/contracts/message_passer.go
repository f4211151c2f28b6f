package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const messagePassedEvent = "MessagePassed"

// MessagePassed is a withdrawal initiated on L2.
type MessagePassed struct {
	Nonce          *big.Int
	Sender         common.Address
	Target         common.Address
	Value          *big.Int
	GasLimit       *big.Int
	Data           []byte
	WithdrawalHash [32]byte

	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
}

type L2ToL1MessagePasser struct {
	contract *boundContract
	filterer ethereum.LogFilterer
}

func NewL2ToL1MessagePasser(caller bind.ContractCaller, filterer ethereum.LogFilterer) *L2ToL1MessagePasser {
	return &L2ToL1MessagePasser{
		contract: &boundContract{address: L2ToL1MessagePasserAddress, abi: L2ToL1MessagePasserABI, caller: caller},
		filterer: filterer,
	}
}

func (p *L2ToL1MessagePasser) MessageNonce(ctx context.Context) (*big.Int, error) {
	return callAs[*big.Int](ctx, p.contract, "messageNonce")
}

// FilterMessagePassed returns MessagePassed events in [from, to] in log order.
// A nil bound is open.
func (p *L2ToL1MessagePasser) FilterMessagePassed(ctx context.Context, from, to *big.Int) ([]MessagePassed, error) {
	event := p.contract.abi.Events[messagePassedEvent]

	logs, err := p.filterer.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: from,
		ToBlock:   to,
		Addresses: []common.Address{p.contract.address},
		Topics:    [][]common.Hash{{event.ID}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to filter %s logs: %w", messagePassedEvent, err)
	}

	out := make([]MessagePassed, 0, len(logs))
	for _, log := range logs {
		msg, err := p.ParseMessagePassed(log)
		if err != nil {
			return nil, err
		}
		out = append(out, msg)
	}

	return out, nil
}

func (p *L2ToL1MessagePasser) ParseMessagePassed(log types.Log) (MessagePassed, error) {
	event := p.contract.abi.Events[messagePassedEvent]
	if len(log.Topics) == 0 || log.Topics[0] != event.ID {
		return MessagePassed{}, fmt.Errorf("log %s/%d is not %s", log.TxHash.Hex(), log.Index, messagePassedEvent)
	}

	var msg MessagePassed
	if len(log.Data) > 0 {
		if err := p.contract.abi.UnpackIntoInterface(&msg, messagePassedEvent, log.Data); err != nil {
			return MessagePassed{}, fmt.Errorf("failed to unpack %s data: %w", messagePassedEvent, err)
		}
	}

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if err := abi.ParseTopics(&msg, indexed, log.Topics[1:]); err != nil {
		return MessagePassed{}, fmt.Errorf("failed to parse %s topics: %w", messagePassedEvent, err)
	}

	msg.BlockNumber = log.BlockNumber
	msg.TxHash = log.TxHash
	msg.LogIndex = log.Index

	return msg, nil
}
