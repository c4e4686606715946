package gen

import (
	"fmt"
	"strings"
)

// PrankModifier is the modifier every wrapper runs under.
const PrankModifier = "prank"

// Signature renders the wrapper's declaration line without the opening
// brace, e.g.
//
//	function deposit(uint256 amount) public payable prank returns (uint256)
func Signature(fn Member) string {
	var b strings.Builder
	fmt.Fprintf(&b, "function %s(%s) public ", fn.Name, FormatArgs(fn.Inputs, true, true))
	if fn.IsPayable() {
		b.WriteString("payable ")
	}
	b.WriteString(PrankModifier)
	if len(fn.Outputs) > 0 {
		fmt.Fprintf(&b, " returns (%s)", FormatArgs(fn.Outputs, true, false))
	}
	return b.String()
}

// GenerateFunction renders the complete forwarding function for fn, a
// function member of abi. The result is not indented.
func GenerateFunction(contract string, abi Descriptor, fn Member) string {
	call := BuildCall(contract, fn, abi.Last())
	return fmt.Sprintf("%s {\n    %s\n}",
		Signature(fn),
		call.Statement(FormatArgs(fn.Inputs, false, true)),
	)
}
