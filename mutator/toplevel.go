package mutator

import (
	"slices"

	"github.com/DanielGaull/miniC/ast"
	"github.com/DanielGaull/miniC/errz"
)

// TopLevel returns a rewritten copy of one top-level item. Errors raised
// inside a function, module or variable carry a path frame for it.
func (m *Mutator) TopLevel(t ast.TopLevel) (ast.TopLevel, error) {
	switch t := t.(type) {
	case *ast.VarDeclaration:
		out := &ast.VarDeclaration{
			Modifiers: slices.Clone(t.Modifiers),
			Type:      t.Type,
			Name:      t.Name,
		}
		if t.Value != nil {
			value, err := m.Expression(*t.Value)
			if err != nil {
				return nil, errz.AddFrame(err, "variable", t.Name)
			}
			out.Value = &value
		}
		return out, nil
	case *ast.Function:
		body, err := m.Body(t.Body)
		if err != nil {
			return nil, errz.AddFrame(err, "function", t.Header.Name)
		}
		return &ast.Function{Header: *t.Header.Copy(), Body: body}, nil
	case *ast.Module:
		var items []ast.TopLevel
		for _, item := range t.Items {
			out, err := m.TopLevel(item)
			if err != nil {
				return nil, errz.AddFrame(err, "module", t.Name)
			}
			items = append(items, out)
		}
		return &ast.Module{Name: t.Name, Items: items}, nil
	case *ast.Import:
		return t.Copy(), nil
	case *ast.FunctionHeader:
		return t.Copy(), nil
	case *ast.Aggregate:
		return t.Copy(), nil
	case *ast.Enum:
		return t.Copy(), nil
	case *ast.TypeDef:
		return t.Copy(), nil
	case *ast.PreprocessorDirective:
		return t.Copy(), nil
	default:
		return nil, unhandled("top-level item", t)
	}
}
