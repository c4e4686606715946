package gen

// SupportFileName is the file name of the fixed support unit.
const SupportFileName = "Blacksmith.sol"

var supportUnit = mustRender(supportTemplate, struct{ Cheatcode string }{
	Cheatcode: CheatcodeAddress.Hex(),
})

// SupportUnit returns the Blacksmith support unit: the cheatcode interface
// and a standalone impersonating account contract. It takes no input and
// is identical on every call.
func SupportUnit() string {
	return supportUnit
}

func mustRender(name string, data any) string {
	s, err := render(name, data)
	if err != nil {
		panic(err)
	}
	return s
}
