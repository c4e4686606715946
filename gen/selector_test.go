package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector(t *testing.T) {
	transfer := Member{
		Type: FunctionType, Name: "transfer", StateMutability: NonPayable,
		Inputs: []Param{
			{Name: "to", Type: "address", InternalType: "address"},
			{Name: "amount", Type: "uint256", InternalType: "uint256"},
		},
		Outputs: []Param{{Type: "bool", InternalType: "bool"}},
	}
	sel, err := Selector(transfer)
	require.NoError(t, err)
	assert.Equal(t, "0xa9059cbb", sel)

	m, err := Method(transfer)
	require.NoError(t, err)
	assert.Equal(t, "transfer(address,uint256)", m.Sig)
}

func TestMethod_Tuple(t *testing.T) {
	abi := decode(t, vaultABI)
	m, err := Method(abi.Functions()[1])
	require.NoError(t, err)
	assert.Equal(t, "position(uint256)", m.Sig)
	assert.True(t, m.IsConstant())
}

func TestMethod_BadType(t *testing.T) {
	_, err := Method(Member{Type: FunctionType, Name: "f", Inputs: []Param{{Type: "bogus"}}})
	assert.Error(t, err)
}
