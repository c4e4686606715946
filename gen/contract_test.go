package gen

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fooABI = `[
	{
		"type": "function",
		"name": "setX",
		"inputs": [{"name": "", "type": "uint256", "internalType": "uint256"}],
		"outputs": [],
		"stateMutability": "nonpayable"
	}
]`

const fooUnit = `// SPDX-License-Identifier: Unlicense
pragma solidity ^0.8.0;
import "./Blacksmith.sol";
import "../../Foo.sol";

contract FooBS {
    Bsvm constant bsvm = Bsvm(0x7109709ECfa91a80626fF3989D68f67F5b1DD12D);

    address addr;
    uint256 privateKey;
    address payable target;

    constructor(address _addr, uint256 _privateKey, address _target) {
        addr = _privateKey == 0 ? _addr : bsvm.addr(_privateKey);
        privateKey = _privateKey;
        target = payable(_target);
    }

    modifier prank() {
        bsvm.startPrank(addr, addr);
        _;
    }

    function setX(uint256 arg0) public prank {
        Foo(target).setX(arg0);
    }
}
`

// vaultABI mixes every member kind and ends with a receive entry.
const vaultABI = `[
	{"type": "constructor", "inputs": [{"name": "asset", "type": "address", "internalType": "contract IERC20"}], "stateMutability": "nonpayable"},
	{"type": "event", "name": "Deposit", "inputs": [{"name": "who", "type": "address", "indexed": true, "internalType": "address"}], "anonymous": false},
	{"type": "error", "name": "Unauthorized", "inputs": []},
	{
		"type": "function", "name": "deposit", "stateMutability": "payable",
		"inputs": [{"name": "receiver", "type": "address", "internalType": "address"}],
		"outputs": [{"name": "shares", "type": "uint256", "internalType": "uint256"}]
	},
	{
		"type": "function", "name": "position", "stateMutability": "view",
		"inputs": [{"name": "id", "type": "uint256", "internalType": "uint256"}],
		"outputs": [{"name": "", "type": "tuple", "internalType": "struct Vault.Position",
			"components": [{"name": "amount", "type": "uint256", "internalType": "uint256"}]}]
	},
	{
		"type": "function", "name": "sweep", "stateMutability": "nonpayable",
		"inputs": [{"name": "tokens", "type": "address[]", "internalType": "contract IERC20[]"}, {"name": "", "type": "uint8", "internalType": "enum Vault.Mode"}],
		"outputs": []
	},
	{"type": "fallback", "stateMutability": "payable"},
	{"type": "receive", "stateMutability": "payable"}
]`

func decode(t *testing.T, raw string) Descriptor {
	t.Helper()
	var abi Descriptor
	require.NoError(t, json.Unmarshal([]byte(raw), &abi))
	return abi
}

func TestGenerateContract_EndToEnd(t *testing.T) {
	target := Target{Name: "Foo", Source: "src/Foo.sol"}
	out, err := GenerateContract(target, decode(t, fooABI), UnitOptions{OutputDir: "src/test/blacksmith"})
	require.NoError(t, err)
	assert.Equal(t, fooUnit, out)
	assert.Contains(t, out, "Foo(target).setX(arg0);")
	assert.NotContains(t, out, "payable prank")
}

func TestGenerateContract_Deterministic(t *testing.T) {
	target := Target{Name: "Vault", Source: "src/vault/Vault.sol"}
	opts := UnitOptions{OutputDir: "src/test/blacksmith"}
	first, err := GenerateContract(target, decode(t, vaultABI), opts)
	require.NoError(t, err)
	second, err := GenerateContract(target, decode(t, vaultABI), opts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateContract_Vault(t *testing.T) {
	target := Target{Name: "Vault", Source: "src/vault/Vault.sol"}
	out, err := GenerateContract(target, decode(t, vaultABI), UnitOptions{OutputDir: "src/test/blacksmith"})
	require.NoError(t, err)

	assert.Contains(t, out, `import "../../vault/Vault.sol";`)
	assert.Contains(t, out, "contract VaultBS {")

	// Only functions are wrapped.
	assert.Equal(t, 3, strings.Count(out, "public "))
	assert.NotContains(t, out, "function Deposit")
	assert.NotContains(t, out, "function Unauthorized")

	assert.Contains(t, out,
		"    function deposit(address receiver) public payable prank returns (uint256) {\n"+
			"        return Vault(payable(target)).deposit{value: msg.value}(receiver);\n"+
			"    }")
	assert.Contains(t, out,
		"    function position(uint256 id) public prank returns (Vault.Position memory) {\n"+
			"        return Vault(payable(target)).position(id);\n"+
			"    }")
	assert.Contains(t, out,
		"    function sweep(IERC20[] memory tokens, Vault.Mode arg1) public prank {\n"+
			"        Vault(payable(target)).sweep(tokens, arg1);\n"+
			"    }")

	// Wrappers are separated by one blank line and appear in ABI order.
	assert.Less(t, strings.Index(out, "function deposit"), strings.Index(out, "function position"))
	assert.Less(t, strings.Index(out, "function position"), strings.Index(out, "function sweep"))
	assert.Contains(t, out, "    }\n\n    function position")
}

func TestGenerateContract_NoReceiveNoCast(t *testing.T) {
	abi := decode(t, vaultABI)
	abi = abi[:len(abi)-1] // drop receive; fallback is now last
	out, err := GenerateContract(Target{Name: "Vault", Source: "src/Vault.sol"}, abi, UnitOptions{OutputDir: "src/test/blacksmith"})
	require.NoError(t, err)
	assert.NotContains(t, out, "payable(target))")
	assert.Contains(t, out, "return Vault(target).deposit{value: msg.value}(receiver);")
}

func TestGenerateContract_NoFunctions(t *testing.T) {
	out, err := GenerateContract(Target{Name: "Empty", Source: "src/Empty.sol"}, nil, UnitOptions{OutputDir: "src/test/blacksmith"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "        _;\n    }\n}\n"))
}

func TestImportPath(t *testing.T) {
	testCases := []struct {
		out, src, want string
	}{
		{"src/test/blacksmith", "src/Foo.sol", "../../Foo.sol"},
		{"src/test/blacksmith", "src/tokens/ERC20.sol", "../../tokens/ERC20.sol"},
		{"test/blacksmith", "src/Foo.sol", "../../src/Foo.sol"},
		{"", "src/Foo.sol", "./src/Foo.sol"},
		{"src", "src/Foo.sol", "./Foo.sol"},
	}
	for _, tt := range testCases {
		t.Run(tt.out+"|"+tt.src, func(t *testing.T) {
			got, err := ImportPath(tt.out, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImportPath_MixedRoots(t *testing.T) {
	_, err := ImportPath("/abs/out", "src/Foo.sol")
	assert.Error(t, err)
}

func TestGenerateContract_SourcePath(t *testing.T) {
	target := Target{Name: "Vault", Source: "src/vault/Vault.sol"}
	out, err := GenerateContract(target, decode(t, vaultABI), UnitOptions{
		OutputDir:  "/work/generated",
		SourcePath: "/work/project/src/vault/Vault.sol",
	})
	require.NoError(t, err)
	assert.Contains(t, out, `import "../project/src/vault/Vault.sol";`)
}
