package fees

import "math/big"

var oneMillion = big.NewInt(1_000_000)

const zero = "0"

// GasLimitPerBlock is the gas limit in millions of gas.
func GasLimitPerBlock(gasLimit *big.Int) string {
	if gasLimit == nil {
		return zero
	}
	return millions(gasLimit)
}

func GasLimitPerSecond(gasLimit *big.Int, blockTime uint64) string {
	if gasLimit == nil || blockTime == 0 {
		return zero
	}
	return millions(quo(gasLimit, new(big.Int).SetUint64(blockTime)))
}

// GasTargetPerBlock is the gas limit divided by the elasticity multiplier.
func GasTargetPerBlock(gasLimit *big.Int, params EIP1559Params) string {
	target := gasTarget(gasLimit, params)
	if target == nil {
		return zero
	}
	return millions(target)
}

func GasTargetPerSecond(gasLimit *big.Int, params EIP1559Params, blockTime uint64) string {
	target := gasTarget(gasLimit, params)
	if target == nil || blockTime == 0 {
		return zero
	}
	return millions(quo(target, new(big.Int).SetUint64(blockTime)))
}

// gasTarget returns nil when the target cannot be derived.
func gasTarget(gasLimit *big.Int, params EIP1559Params) *big.Int {
	if gasLimit == nil || !params.IsValid || params.Elasticity == 0 {
		return nil
	}
	return quo(gasLimit, new(big.Int).SetUint64(uint64(params.Elasticity)))
}

func millions(v *big.Int) string {
	return quo(v, oneMillion).String()
}

func quo(a, b *big.Int) *big.Int {
	return new(big.Int).Quo(a, b)
}
