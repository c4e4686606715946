package gen

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Method converts a function member into go-ethereum's ABI method, which
// knows the canonical signature and 4-byte selector.
func Method(m Member) (abi.Method, error) {
	inputs, err := arguments(m.Inputs)
	if err != nil {
		return abi.Method{}, fmt.Errorf("%s inputs: %w", m.Name, err)
	}
	outputs, err := arguments(m.Outputs)
	if err != nil {
		return abi.Method{}, fmt.Errorf("%s outputs: %w", m.Name, err)
	}
	constant := m.StateMutability == View || m.StateMutability == Pure
	return abi.NewMethod(m.Name, m.Name, abi.Function, m.StateMutability, constant, m.IsPayable(), inputs, outputs), nil
}

// Selector returns the hex encoded 4-byte selector of m.
func Selector(m Member) (string, error) {
	method, err := Method(m)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(method.ID), nil
}

func arguments(params []Param) (abi.Arguments, error) {
	args := make(abi.Arguments, len(params))
	for i, p := range params {
		typ, err := abi.NewType(p.Type, p.InternalType, p.Components)
		if err != nil {
			return nil, err
		}
		args[i] = abi.Argument{Name: p.Name, Type: typ, Indexed: p.Indexed}
	}
	return args, nil
}
