package sparsetable

import (
	"context"
	"errors"
	"maps"
	"reflect"
)

var _ CellFormatter = new(ReflectTypeCellFormatter)

// ReflectTypeCellFormatter selects a CellFormatter
// by the reflected type of a cell value.
//
// Matching order:
//  1. Exact type match in Types
//  2. Interface implemented by the type in InterfaceTypes
//  3. Kind match in Kinds
//  4. Default
//
// A formatter returning errors.ErrUnsupported passes on to the next step.
// All With* methods return a modified copy, a nil *ReflectTypeCellFormatter
// is valid and returns errors.ErrUnsupported for every cell.
type ReflectTypeCellFormatter struct {
	Types          map[reflect.Type]CellFormatter
	InterfaceTypes map[reflect.Type]CellFormatter
	Kinds          map[reflect.Kind]CellFormatter
	Default        CellFormatter
}

// NewReflectTypeCellFormatter creates a new empty ReflectTypeCellFormatter.
func NewReflectTypeCellFormatter() *ReflectTypeCellFormatter {
	return new(ReflectTypeCellFormatter)
}

func (f *ReflectTypeCellFormatter) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	if f == nil {
		return "", false, errors.ErrUnsupported
	}
	if err = ctx.Err(); err != nil {
		return "", false, err
	}
	cellVal := AsReflectCellView(view).ReflectCell(row, col)
	if cellVal.IsValid() {
		cellType := cellVal.Type()
		if typeFmt, ok := f.Types[cellType]; ok {
			str, raw, err := typeFmt.FormatCell(ctx, view, row, col)
			if !errors.Is(err, errors.ErrUnsupported) {
				return str, raw, err
			}
		}
		for interfaceType, interfaceFmt := range f.InterfaceTypes {
			if cellType.Implements(interfaceType) {
				str, raw, err := interfaceFmt.FormatCell(ctx, view, row, col)
				if !errors.Is(err, errors.ErrUnsupported) {
					return str, raw, err
				}
			}
		}
		if kindFmt, ok := f.Kinds[cellType.Kind()]; ok {
			str, raw, err := kindFmt.FormatCell(ctx, view, row, col)
			if !errors.Is(err, errors.ErrUnsupported) {
				return str, raw, err
			}
		}
	}
	if f.Default != nil {
		return f.Default.FormatCell(ctx, view, row, col)
	}
	return "", false, errors.ErrUnsupported
}

// WithTypeFormatter returns a copy with fmt registered for the exact type typ.
func (f *ReflectTypeCellFormatter) WithTypeFormatter(typ reflect.Type, fmt CellFormatter) *ReflectTypeCellFormatter {
	mod := f.cloneOrNew()
	if mod.Types == nil {
		mod.Types = make(map[reflect.Type]CellFormatter)
	}
	mod.Types[typ] = fmt
	return mod
}

// WithInterfaceTypeFormatter returns a copy with fmt registered
// for all types implementing the interface type typ.
func (f *ReflectTypeCellFormatter) WithInterfaceTypeFormatter(typ reflect.Type, fmt CellFormatter) *ReflectTypeCellFormatter {
	mod := f.cloneOrNew()
	if mod.InterfaceTypes == nil {
		mod.InterfaceTypes = make(map[reflect.Type]CellFormatter)
	}
	mod.InterfaceTypes[typ] = fmt
	return mod
}

// WithKindFormatter returns a copy with fmt registered for kind.
func (f *ReflectTypeCellFormatter) WithKindFormatter(kind reflect.Kind, fmt CellFormatter) *ReflectTypeCellFormatter {
	mod := f.cloneOrNew()
	if mod.Kinds == nil {
		mod.Kinds = make(map[reflect.Kind]CellFormatter)
	}
	mod.Kinds[kind] = fmt
	return mod
}

// WithDefaultFormatter returns a copy using fmt for unmatched cells.
func (f *ReflectTypeCellFormatter) WithDefaultFormatter(fmt CellFormatter) *ReflectTypeCellFormatter {
	mod := f.cloneOrNew()
	mod.Default = fmt
	return mod
}

func (f *ReflectTypeCellFormatter) cloneOrNew() *ReflectTypeCellFormatter {
	if f == nil {
		return new(ReflectTypeCellFormatter)
	}
	return &ReflectTypeCellFormatter{
		Types:          maps.Clone(f.Types),
		InterfaceTypes: maps.Clone(f.InterfaceTypes),
		Kinds:          maps.Clone(f.Kinds),
		Default:        f.Default,
	}
}
