package ast

// Identifier is a name that is either plain or qualified by a module, as in
// "math::add". Qualified identifiers are mangled only at generation time.
type Identifier struct {
	Module string // empty for a plain identifier
	Name   string
}

// Plain returns an unqualified identifier.
func Plain(name string) Identifier {
	return Identifier{Name: name}
}

// Qualified returns an identifier referring to member of module.
func Qualified(module, member string) Identifier {
	return Identifier{Module: module, Name: member}
}

// IsQualified reports whether the identifier names a module member.
func (i Identifier) IsQualified() bool {
	return i.Module != ""
}

// String returns the identifier as written in MiniC source.
func (i Identifier) String() string {
	if i.Module == "" {
		return i.Name
	}
	return i.Module + "::" + i.Name
}

// TypeCategory distinguishes plain type names from tagged references.
type TypeCategory int

const (
	PlainType TypeCategory = iota
	StructRef
	EnumRef
	UnionRef
)

// Keyword returns the C keyword introducing a tagged reference, or "" for a
// plain type name.
func (c TypeCategory) Keyword() string {
	switch c {
	case StructRef:
		return "struct"
	case EnumRef:
		return "enum"
	case UnionRef:
		return "union"
	default:
		return ""
	}
}

// String returns a readable name for the category.
func (c TypeCategory) String() string {
	if kw := c.Keyword(); kw != "" {
		return kw
	}
	return "plain"
}

// Type is a possibly tagged, possibly pointer type such as "struct node**".
type Type struct {
	Category     TypeCategory
	Name         Identifier
	PointerDepth uint
}

func (t Type) node() {}

func (t Type) typeDefTargetNode() {}

// Named returns a plain type with the given name and no indirection.
func Named(name string) Type {
	return Type{Name: Plain(name)}
}

// Pointer returns the type with one more level of indirection.
func (t Type) Pointer() Type {
	t.PointerDepth++
	return t
}

// Modifier is a declaration specifier that precedes the type.
type Modifier string

const (
	Static   Modifier = "static"
	Const    Modifier = "const"
	Extern   Modifier = "extern"
	Volatile Modifier = "volatile"
	Register Modifier = "register"
	Inline   Modifier = "inline"
	Unsigned Modifier = "unsigned"
	Signed   Modifier = "signed"
)

var modifiers = map[string]Modifier{
	string(Static):   Static,
	string(Const):    Const,
	string(Extern):   Extern,
	string(Volatile): Volatile,
	string(Register): Register,
	string(Inline):   Inline,
	string(Unsigned): Unsigned,
	string(Signed):   Signed,
}

// LookupModifier returns the modifier spelled s.
func LookupModifier(s string) (Modifier, bool) {
	m, ok := modifiers[s]
	return m, ok
}
