package gen

import "strings"

// Prefixes and markers of solc's internalType tags.
const (
	structPrefix   = "struct "
	enumPrefix     = "enum "
	contractPrefix = "contract "
	arraySuffix    = "]"

	// MemoryLocation is the data location appended to reference types.
	MemoryLocation = "memory"
)

// TypeKind classifies a type tag for formatting purposes.
type TypeKind int

const (
	Primitive TypeKind = iota
	Bytes
	String
	Struct
	Enum
	ContractRef
	Array
)

var typeKindNames = [...]string{
	Primitive:   "primitive",
	Bytes:       "bytes",
	String:      "string",
	Struct:      "struct",
	Enum:        "enum",
	ContractRef: "contract",
	Array:       "array",
}

func (k TypeKind) String() string {
	if k < 0 || int(k) >= len(typeKindNames) {
		return "unknown"
	}
	return typeKindNames[k]
}

// TypeClass is the result of classifying a type tag once. Base is the type
// expression with any storage-class prefix removed; IsArray is set for
// contract and enum tags carrying an array suffix, and for Array itself.
type TypeClass struct {
	Kind    TypeKind
	Base    string
	IsArray bool
}

// Classify maps a raw internalType tag to its TypeClass. The checks run in
// a fixed order and exactly one applies:
//
//	bytes | string      exact match
//	struct X            any struct, arrays included
//	contract X[...]     contract array
//	contract X          contract handle
//	enum X[...]         prefix stripped, then the array suffix is tested
//	T[...]              any other array
//	T                   everything else, unchanged
//
// Unknown tags are never rejected; they classify as Primitive.
func Classify(tag string) TypeClass {
	switch {
	case tag == "bytes":
		return TypeClass{Kind: Bytes, Base: tag}
	case tag == "string":
		return TypeClass{Kind: String, Base: tag}
	case strings.HasPrefix(tag, structPrefix):
		base := strings.TrimPrefix(tag, structPrefix)
		return TypeClass{Kind: Struct, Base: base, IsArray: strings.HasSuffix(base, arraySuffix)}
	case strings.HasPrefix(tag, contractPrefix):
		return TypeClass{
			Kind:    ContractRef,
			Base:    strings.TrimPrefix(tag, contractPrefix),
			IsArray: strings.HasSuffix(tag, arraySuffix),
		}
	case strings.HasPrefix(tag, enumPrefix):
		base := strings.TrimPrefix(tag, enumPrefix)
		return TypeClass{Kind: Enum, Base: base, IsArray: strings.HasSuffix(base, arraySuffix)}
	case strings.HasSuffix(tag, arraySuffix):
		return TypeClass{Kind: Array, Base: tag, IsArray: true}
	default:
		return TypeClass{Kind: Primitive, Base: tag}
	}
}

// Location returns the data location the type needs when it appears as a
// function parameter, or "" for value types.
func (c TypeClass) Location() string {
	switch c.Kind {
	case Bytes, String, Struct, Array:
		return MemoryLocation
	case ContractRef, Enum:
		if c.IsArray {
			return MemoryLocation
		}
		return ""
	default:
		return ""
	}
}

// String renders the type expression with its data location.
func (c TypeClass) String() string {
	if loc := c.Location(); loc != "" {
		return c.Base + " " + loc
	}
	return c.Base
}

// FormatType renders a raw internalType tag as a Solidity parameter type,
// e.g. "struct Pool" -> "Pool memory", "contract IERC20" -> "IERC20".
func FormatType(tag string) string {
	return Classify(tag).String()
}
