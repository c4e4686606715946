package gen

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// cheatcodeSeed is hashed to obtain the cheatcode contract's address.
const cheatcodeSeed = "hevm cheat code"

// CheatcodeAddress is where forge (and hevm before it) installs the
// cheatcode contract that provides prank, deal, addr and sign.
var CheatcodeAddress = common.HexToAddress("0x7109709ECfa91a80626fF3989D68f67F5b1DD12D")

// DeriveCheatcodeAddress recomputes the cheatcode address as the low 20
// bytes of keccak256("hevm cheat code").
func DeriveCheatcodeAddress() common.Address {
	return common.BytesToAddress(crypto.Keccak256([]byte(cheatcodeSeed)))
}
