package ast

// VarDeclaration declares a file-scope or module-scope variable.
type VarDeclaration struct {
	Modifiers []Modifier
	Type      Type
	Name      string
	Value     *Expression // optional initializer
}

func (d *VarDeclaration) node()         {}
func (d *VarDeclaration) topLevelNode() {}

// Import includes a header. Library paths render in angle brackets, file
// relative paths in quotes.
type Import struct {
	Path      string
	IsLibrary bool
}

func (d *Import) node()         {}
func (d *Import) topLevelNode() {}

// Parameter is a single function parameter.
type Parameter struct {
	Type Type
	Name string
}

// FunctionHeader is a function signature. At top level it is a forward
// declaration.
type FunctionHeader struct {
	ReturnType Type
	Name       string
	Params     []Parameter
	IsExtern   bool
}

func (d *FunctionHeader) node()         {}
func (d *FunctionHeader) topLevelNode() {}

// Function is a function definition.
type Function struct {
	Header FunctionHeader
	Body   Block
}

func (d *Function) node()         {}
func (d *Function) topLevelNode() {}

// AggregateKind selects between struct and union.
type AggregateKind int

const (
	StructKind AggregateKind = iota
	UnionKind
)

// Keyword returns "struct" or "union".
func (k AggregateKind) Keyword() string {
	if k == UnionKind {
		return "union"
	}
	return "struct"
}

// Aggregate is a struct or union declaration. An aggregate without a name
// is anonymous; there is no separate flag, so an anonymous aggregate can
// never carry a name.
type Aggregate struct {
	Kind    AggregateKind
	Name    string
	Members []Member
}

func (d *Aggregate) node()              {}
func (d *Aggregate) topLevelNode()      {}
func (d *Aggregate) typeDefTargetNode() {}

// IsAnonymous reports whether the aggregate has no name.
func (d *Aggregate) IsAnonymous() bool { return d.Name == "" }

// IsUnion reports whether the aggregate is a union.
func (d *Aggregate) IsUnion() bool { return d.Kind == UnionKind }

// Field is a named, typed aggregate member.
type Field struct {
	Type Type
	Name string
}

func (m *Field) node()       {}
func (m *Field) memberNode() {}

// NestedAggregate is an anonymous struct or union embedded in another
// aggregate.
type NestedAggregate struct {
	Aggregate *Aggregate
}

func (m *NestedAggregate) node()       {}
func (m *NestedAggregate) memberNode() {}

// EnumEntry is one enumerator with an optional explicit value.
type EnumEntry struct {
	Name  string
	Value *int64
}

// Enum is an enumeration. An enum without a name is anonymous.
type Enum struct {
	Name    string
	Entries []EnumEntry
}

func (d *Enum) node()              {}
func (d *Enum) topLevelNode()      {}
func (d *Enum) typeDefTargetNode() {}

// IsAnonymous reports whether the enum has no name.
func (d *Enum) IsAnonymous() bool { return d.Name == "" }

// TypeDef introduces Name as an alias for Target.
type TypeDef struct {
	Name   string
	Target TypeDefTarget
}

func (d *TypeDef) node()         {}
func (d *TypeDef) topLevelNode() {}

// Module is a lexical scope. It has no runtime representation: its members
// are flattened into the enclosing scope under a mangled prefix.
type Module struct {
	Name  string
	Items []TopLevel
}

func (d *Module) node()         {}
func (d *Module) topLevelNode() {}

// PreprocessorDirective is passed through verbatim.
type PreprocessorDirective struct {
	Text string
}

func (d *PreprocessorDirective) node()         {}
func (d *PreprocessorDirective) topLevelNode() {}
