package ast

import "slices"

// Copy returns a deep copy of the aggregate, including nested members.
func (d *Aggregate) Copy() *Aggregate {
	if d == nil {
		return nil
	}
	var members []Member
	for _, m := range d.Members {
		switch m := m.(type) {
		case *Field:
			members = append(members, &Field{Type: m.Type, Name: m.Name})
		case *NestedAggregate:
			members = append(members, &NestedAggregate{Aggregate: m.Aggregate.Copy()})
		}
	}
	return &Aggregate{Kind: d.Kind, Name: d.Name, Members: members}
}

// Copy returns a deep copy of the enum.
func (d *Enum) Copy() *Enum {
	if d == nil {
		return nil
	}
	var entries []EnumEntry
	for _, e := range d.Entries {
		entry := EnumEntry{Name: e.Name}
		if e.Value != nil {
			v := *e.Value
			entry.Value = &v
		}
		entries = append(entries, entry)
	}
	return &Enum{Name: d.Name, Entries: entries}
}

// Copy returns a deep copy of the typedef and its target.
func (d *TypeDef) Copy() *TypeDef {
	if d == nil {
		return nil
	}
	var target TypeDefTarget
	switch t := d.Target.(type) {
	case Type:
		target = t
	case *Aggregate:
		target = t.Copy()
	case *Enum:
		target = t.Copy()
	}
	return &TypeDef{Name: d.Name, Target: target}
}

// Copy returns a deep copy of the header.
func (d *FunctionHeader) Copy() *FunctionHeader {
	if d == nil {
		return nil
	}
	return &FunctionHeader{
		ReturnType: d.ReturnType,
		Name:       d.Name,
		Params:     slices.Clone(d.Params),
		IsExtern:   d.IsExtern,
	}
}

// Copy returns a copy of the import.
func (d *Import) Copy() *Import {
	if d == nil {
		return nil
	}
	return &Import{Path: d.Path, IsLibrary: d.IsLibrary}
}

// Copy returns a copy of the directive.
func (d *PreprocessorDirective) Copy() *PreprocessorDirective {
	if d == nil {
		return nil
	}
	return &PreprocessorDirective{Text: d.Text}
}
