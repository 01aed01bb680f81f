package codegen

import "github.com/DanielGaull/miniC/ast"

const (
	moduleMarker = "mod__"
	separator    = "__"
)

// ModulePrefix returns the name prefix for members of module name nested in
// a scope whose prefix is outer. Prefixes accumulate outermost first:
// ModulePrefix(ModulePrefix("", "a"), "b") is "mod__a__mod__b__".
func ModulePrefix(outer, name string) string {
	return outer + moduleMarker + name + separator
}

// Identifier renders an identifier. A module-qualified identifier is
// mangled the same way a declaration inside that module is named.
func (g *Generator) Identifier(id ast.Identifier) string {
	if !id.IsQualified() {
		return id.Name
	}
	return ModulePrefix("", id.Module) + id.Name
}

func tagName(name string, kind string) string {
	return name + separator + kind
}

// Type renders a type such as "int", "char**" or "struct node__struct*".
// A tagged reference to an aggregate or enum the program declares points at
// the tag the generator gives that declaration. Other tags, such as
// "struct tm" from a library header, are rendered as written.
func (g *Generator) Type(t ast.Type) string {
	var out string
	if kw := t.Category.Keyword(); kw != "" {
		out = kw + " " + g.tagReference(kw, t.Name)
	} else {
		out = g.Identifier(t.Name)
	}
	for i := uint(0); i < t.PointerDepth; i++ {
		out += "*"
	}
	return out
}

// tagReference resolves a tagged reference. Unqualified names are looked
// up in the enclosing modules innermost first, then at file scope.
func (g *Generator) tagReference(kw string, id ast.Identifier) string {
	if id.IsQualified() {
		name := g.Identifier(id)
		if g.tags.has(kw, name) {
			return tagName(name, kw)
		}
		return name
	}
	for i := len(g.scopes) - 1; i >= 0; i-- {
		if name := g.scopes[i] + id.Name; g.tags.has(kw, name) {
			return tagName(name, kw)
		}
	}
	if g.tags.has(kw, id.Name) {
		return tagName(id.Name, kw)
	}
	return id.Name
}

// tagSet holds the tags a program declares, keyed by keyword and the name
// the declaration is emitted under.
type tagSet map[string]struct{}

func (s tagSet) add(kw, name string) {
	s[kw+" "+name] = struct{}{}
}

func (s tagSet) has(kw, name string) bool {
	_, ok := s[kw+" "+name]
	return ok
}

// declaredTags collects the named structs, unions and enums of program.
// Member-mode declarations are recorded under their module prefix;
// pure-mode ones (nested members, typedef targets) under their bare name.
func declaredTags(program *ast.Program) tagSet {
	tags := tagSet{}
	var pure func(a *ast.Aggregate)
	nested := func(members []ast.Member) {
		for _, m := range members {
			if n, ok := m.(*ast.NestedAggregate); ok {
				pure(n.Aggregate)
			}
		}
	}
	pure = func(a *ast.Aggregate) {
		if !a.IsAnonymous() {
			tags.add(a.Kind.Keyword(), a.Name)
		}
		nested(a.Members)
	}
	var items func(list []ast.TopLevel, prefix string)
	items = func(list []ast.TopLevel, prefix string) {
		for _, item := range list {
			switch t := item.(type) {
			case *ast.Aggregate:
				if !t.IsAnonymous() {
					tags.add(t.Kind.Keyword(), prefix+t.Name)
				}
				nested(t.Members)
			case *ast.Enum:
				if !t.IsAnonymous() {
					tags.add("enum", prefix+t.Name)
				}
			case *ast.TypeDef:
				switch target := t.Target.(type) {
				case *ast.Aggregate:
					pure(target)
				case *ast.Enum:
					if !target.IsAnonymous() {
						tags.add("enum", target.Name)
					}
				}
			case *ast.Module:
				items(t.Items, ModulePrefix(prefix, t.Name))
			}
		}
	}
	items(program.Items, "")
	return tags
}
