package gen

import "fmt"

const (
	valueAnnotation = "{value: msg.value}"
	targetVar       = "target"
)

// Call describes how a wrapper forwards to the wrapped contract.
type Call struct {
	Contract string // wrapped contract type
	Function string
	Forward  bool // forward msg.value
	Cast     bool // cast the target to address payable first
	Returns  bool // the function has outputs
}

// BuildCall derives the forwarding call for fn. last is the final member of
// the contract's descriptor; a trailing receive entry requires the target
// to be converted through payable(...).
func BuildCall(contract string, fn, last Member) Call {
	return Call{
		Contract: contract,
		Function: fn.Name,
		Forward:  fn.IsPayable(),
		Cast:     last.IsReceive(),
		Returns:  len(fn.Outputs) > 0,
	}
}

// Value returns the call-option annotation forwarding msg.value, if any.
func (c Call) Value() string {
	if c.Forward {
		return valueAnnotation
	}
	return ""
}

// Target returns the contract expression the call is made on.
func (c Call) Target() string {
	if c.Cast {
		return fmt.Sprintf("%s(payable(%s))", c.Contract, targetVar)
	}
	return fmt.Sprintf("%s(%s)", c.Contract, targetVar)
}

// Expression returns the call expression for the given argument names.
func (c Call) Expression(args string) string {
	return fmt.Sprintf("%s.%s%s(%s)", c.Target(), c.Function, c.Value(), args)
}

// Statement returns the complete forwarding statement, returning the
// call's result when the function has outputs.
func (c Call) Statement(args string) string {
	if c.Returns {
		return "return " + c.Expression(args) + ";"
	}
	return c.Expression(args) + ";"
}
