// Package gen turns a compiled contract's ABI into a Solidity wrapper unit
// whose functions forward every call to the original contract while
// impersonating a configurable account through the cheatcode contract.
//
// Everything in this package is a pure function of its input: no I/O, no
// shared state, identical output for identical descriptors.
package gen

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Member types as they appear in the "type" field of an ABI entry.
const (
	FunctionType = "function"
	ReceiveType  = "receive"
)

// Mutability values of the "stateMutability" field.
const (
	Pure       = "pure"
	View       = "view"
	NonPayable = "nonpayable"
	Payable    = "payable"
)

// Param is a single input or output of an ABI member. The JSON layout is
// the one solc and forge emit, so go-ethereum's marshaling type is reused.
type Param = abi.ArgumentMarshaling

// Member is one entry of a contract ABI. Type carries both the member kind
// ("function", "event", "receive", ...) and the declared type that the
// receive detection looks at.
type Member struct {
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	StateMutability string  `json:"stateMutability,omitempty"`
	Inputs          []Param `json:"inputs"`
	Outputs         []Param `json:"outputs"`
}

// IsFunction reports whether the member takes part in generation.
func (m Member) IsFunction() bool {
	return m.Type == FunctionType
}

// IsPayable reports whether the member accepts native currency.
func (m Member) IsPayable() bool {
	return m.StateMutability == Payable
}

// IsReceive reports whether the member's declared type is a receive entry.
func (m Member) IsReceive() bool {
	return strings.HasPrefix(m.Type, ReceiveType)
}

// Descriptor is the ordered ABI of one contract.
type Descriptor []Member

// Functions returns the function members in declaration order.
func (d Descriptor) Functions() []Member {
	fns := make([]Member, 0, len(d))
	for _, m := range d {
		if m.IsFunction() {
			fns = append(fns, m)
		}
	}
	return fns
}

// Last returns the final member of the descriptor, or the zero Member for
// an empty descriptor.
func (d Descriptor) Last() Member {
	if len(d) == 0 {
		return Member{}
	}
	return d[len(d)-1]
}

// Target identifies a contract to wrap: its name and the logical path of
// the source file that declares it (e.g. "src/Token.sol").
type Target struct {
	Name   string `json:"name" yaml:"name"`
	Source string `json:"source" yaml:"source"`
}

// UnitFileName is the file name of the generated unit for t.
func (t Target) UnitFileName() string {
	return t.Name + UnitSuffix
}

// TypeTag returns the raw type tag that drives formatting. Older compilers
// omit internalType; the canonical ABI type is used then. Such artifacts
// carry no struct name, so tuples come out as "tuple" and the unit will not
// compile until the project is rebuilt with a newer solc.
func TypeTag(p Param) string {
	if p.InternalType != "" {
		return p.InternalType
	}
	return p.Type
}
