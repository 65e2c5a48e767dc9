package ccompiler

import "fmt"

// TypeKind tags the variant a TypeInfo value holds.
type TypeKind int

const (
	TypeVoid TypeKind = iota
	TypeInt
	TypeChar
	TypePointer
	TypeArray
	TypeStruct
)

// StructField is one (name, type) entry of a Struct TypeInfo.
type StructField struct {
	Name string
	Type *TypeInfo
}

// TypeInfo describes one of the scalar, pointer, array or struct types this
// compiler's analyzer understands. Struct is a dormant variant: no parser
// production builds one, but the registry that would hold named struct
// types exists (see StructRegistry below) exactly as spec.md §9 directs
// ("An implementer may omit the Struct variant or keep it dormant" — kept,
// to leave the hook in place without guessing at syntax for it).
type TypeInfo struct {
	Kind   TypeKind
	Base   *TypeInfo     // Pointer, Array
	Length int           // Array
	Name   string        // Struct
	Fields []StructField // Struct
}

var (
	voidType = &TypeInfo{Kind: TypeVoid}
	intType  = &TypeInfo{Kind: TypeInt}
	charType = &TypeInfo{Kind: TypeChar}
)

func pointerType(base *TypeInfo) *TypeInfo { return &TypeInfo{Kind: TypePointer, Base: base} }
func arrayType(base *TypeInfo, length int) *TypeInfo {
	return &TypeInfo{Kind: TypeArray, Base: base, Length: length}
}

// StructRegistry maps struct names to their TypeInfo. It is populated only
// through RegisterStruct, which nothing in this grammar calls; it exists so
// a future revision admitting `struct` declarations has somewhere to put
// them without reshaping the analyzer (spec.md §9).
type StructRegistry struct {
	types map[string]*TypeInfo
}

func NewStructRegistry() *StructRegistry {
	return &StructRegistry{types: map[string]*TypeInfo{}}
}

func (r *StructRegistry) RegisterStruct(name string, fields []StructField) *TypeInfo {
	t := &TypeInfo{Kind: TypeStruct, Name: name, Fields: fields}
	r.types[name] = t
	return t
}

func (r *StructRegistry) Lookup(name string) (*TypeInfo, bool) {
	t, ok := r.types[name]
	return t, ok
}

// resolveTypeSpelling turns the textual spelling a VariableDecl/FunctionDecl
// carries ("int", "char", "void") into a TypeInfo. Any other spelling
// resolves only if registry holds a struct of that name; otherwise it
// returns an unknown-type-name error, which the caller reports.
func resolveTypeSpelling(spelling string, registry *StructRegistry) (*TypeInfo, error) {
	switch spelling {
	case "int":
		return intType, nil
	case "char":
		return charType, nil
	case "void":
		return voidType, nil
	default:
		if registry != nil {
			if t, ok := registry.Lookup(spelling); ok {
				return t, nil
			}
		}
		return nil, fmt.Errorf("unknown type name: %s", spelling)
	}
}

// irType maps a TypeInfo to its LLVM textual spelling, per spec.md §4.4.
func irType(t *TypeInfo) string {
	switch t.Kind {
	case TypeVoid:
		return "void"
	case TypeInt:
		return "i32"
	case TypeChar:
		return "i8"
	case TypePointer:
		return irType(t.Base) + "*"
	case TypeArray:
		return fmt.Sprintf("[%d x %s]", t.Length, irType(t.Base))
	case TypeStruct:
		return "%struct." + t.Name
	default:
		return "i32"
	}
}
