package gen

import (
	"strconv"
	"strings"
)

// SyntheticName is the name given to an unnamed parameter at index i.
func SyntheticName(i int) string {
	return "arg" + strconv.Itoa(i)
}

// reservedNames are declared by every wrapper contract. A parameter with one
// of these names would shadow it inside the wrapper body, so it gets its
// synthetic name instead.
var reservedNames = map[string]bool{
	"addr":        true,
	"privateKey":  true,
	"target":      true,
	"bsvm":        true,
	PrankModifier: true,
}

// ParamName returns the parameter's own name, or its synthetic one when it
// is unnamed or reserved.
func ParamName(p Param, i int) string {
	if p.Name != "" && !reservedNames[p.Name] {
		return p.Name
	}
	return SyntheticName(i)
}

// FormatArgs renders params as a comma separated list. withType includes
// the formatted type of each parameter, withName its (possibly synthetic)
// name. With both disabled every fragment is empty, leaving only the
// separators.
func FormatArgs(params []Param, withType, withName bool) string {
	parts := make([]string, len(params))
	for i, p := range params {
		var typ, name string
		if withType {
			typ = FormatType(TypeTag(p))
		}
		if withName {
			name = ParamName(p, i)
		}
		if typ != "" && name != "" {
			parts[i] = typ + " " + name
		} else {
			parts[i] = typ + name
		}
	}
	return strings.Join(parts, ", ")
}
