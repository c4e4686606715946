package gen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/openconfig/goyang/pkg/indent"
)

// UnitSuffix is appended to the contract name to form a unit's file name.
const UnitSuffix = ".bs.sol"

const bodyIndent = "    "

// UnitOptions parameterizes a generated unit.
type UnitOptions struct {
	// OutputDir is the directory the unit is written to, relative to the
	// project root. The wrapped contract's import is made relative to it.
	OutputDir string
	// SourcePath locates the wrapped source when OutputDir is not relative
	// to the project root. Empty means target.Source.
	SourcePath string
}

type contractData struct {
	Name      string
	Support   string
	Import    string
	Cheatcode string
	Functions []string
}

// ImportPath returns source relative to outputDir in slash form, always
// starting with "./" or "../" so solc resolves it relative to the unit.
func ImportPath(outputDir, source string) (string, error) {
	rel, err := filepath.Rel(filepath.FromSlash(outputDir), filepath.FromSlash(source))
	if err != nil {
		return "", fmt.Errorf("import path for %s: %w", source, err)
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return rel, nil
}

// GenerateContract renders the wrapper unit <Name>BS for target from its
// ABI. Only function members are wrapped, in ABI order.
func GenerateContract(target Target, abi Descriptor, opts UnitOptions) (string, error) {
	source := opts.SourcePath
	if source == "" {
		source = target.Source
	}
	imp, err := ImportPath(opts.OutputDir, source)
	if err != nil {
		return "", err
	}
	fns := abi.Functions()
	data := contractData{
		Name:      target.Name,
		Support:   SupportFileName,
		Import:    imp,
		Cheatcode: CheatcodeAddress.Hex(),
		Functions: make([]string, len(fns)),
	}
	for i, fn := range fns {
		data.Functions[i] = indent.String(bodyIndent, GenerateFunction(target.Name, abi, fn))
	}
	return render(contractTemplate, data)
}
