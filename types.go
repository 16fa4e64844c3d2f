package gir

import "github.com/jacoelho/gir/internal/schema"

// AnyType is a type position holding either a *Type or an *Array.
type AnyType interface {
	isAnyType()
}

// FieldType is the shape of a record or class field: *Type, *Callback or *Array.
type FieldType interface {
	isFieldType()
}

// ParameterType is the shape of a parameter: *Type, *Array or VarArgs.
type ParameterType interface {
	isParameterType()
}

// VarArgs marks a variadic parameter.
type VarArgs struct{}

func (VarArgs) isParameterType() {}

// Type names a type, optionally parameterized by element types as in
// GLib.HashTable or GLib.List.
type Type struct {
	documentation
	name           *string
	cType          *string
	introspectable *bool
	parameters     []AnyType
}

func (*Type) isAnyType()       {}
func (*Type) isFieldType()     {}
func (*Type) isParameterType() {}

// Name returns the GIR type name, for example "utf8" or "Gtk.Widget".
func (t *Type) Name() string { return str(t.name) }

// CType returns the C type.
func (t *Type) CType() string { return str(t.cType) }

// IsIntrospectable defaults to true.
func (t *Type) IsIntrospectable() bool { return flag(t.introspectable, true) }

// Parameters returns the element types of a container type in document order.
func (t *Type) Parameters() []AnyType { return t.parameters }

// Array is a C array or one of the GLib array containers.
type Array struct {
	name           *string
	cType          *string
	zeroTerminated *bool
	fixedSize      *uint
	length         *uint
	introspectable *bool
	element        AnyType
}

func (*Array) isAnyType()       {}
func (*Array) isFieldType()     {}
func (*Array) isParameterType() {}

// Name returns the container name for GLib arrays, or "" for C arrays.
func (a *Array) Name() string { return str(a.name) }

// CType returns the C type.
func (a *Array) CType() string { return str(a.cType) }

// ZeroTerminated returns the zero-terminated attribute.
func (a *Array) ZeroTerminated() (bool, bool) { return opt(a.zeroTerminated) }

// FixedSize returns the fixed element count.
func (a *Array) FixedSize() (uint, bool) { return opt(a.fixedSize) }

// Length returns the index of the parameter holding the element count.
func (a *Array) Length() (uint, bool) { return opt(a.length) }

// IsIntrospectable defaults to true.
func (a *Array) IsIntrospectable() bool { return flag(a.introspectable, true) }

// ElementType returns the element type, or nil when absent.
func (a *Array) ElementType() AnyType { return a.element }

var (
	typeSpec  = schema.New[Type]("type")
	arraySpec = schema.New[Array]("array")
)

func anyTypeCases() []schema.Case[AnyType] {
	return []schema.Case[AnyType]{
		schema.On[AnyType](typeSpec),
		schema.On[AnyType](arraySpec),
	}
}

func parameterTypeCases() []schema.Case[ParameterType] {
	return []schema.Case[ParameterType]{
		schema.On[ParameterType](typeSpec),
		schema.On[ParameterType](arraySpec),
		schema.Marker[ParameterType]("varargs", VarArgs{}),
	}
}

func init() {
	typeSpec.Define(concat(
		[]schema.Field[Type]{
			schema.OptionalAttr("name", stringCodec, func(t *Type) **string { return &t.name }),
			schema.OptionalAttr("c:type", stringCodec, func(t *Type) **string { return &t.cType }),
			schema.OptionalAttr("introspectable", boolCodec, func(t *Type) **bool { return &t.introspectable }),
			schema.Variants(func(t *Type) *[]AnyType { return &t.parameters }, anyTypeCases()...),
		},
		documentationFields(func(t *Type) *documentation { return &t.documentation }),
	)...)
	arraySpec.Define(
		schema.OptionalAttr("name", stringCodec, func(a *Array) **string { return &a.name }),
		schema.OptionalAttr("c:type", stringCodec, func(a *Array) **string { return &a.cType }),
		schema.OptionalAttr("zero-terminated", boolCodec, func(a *Array) **bool { return &a.zeroTerminated }),
		schema.OptionalAttr("fixed-size", indexCodec, func(a *Array) **uint { return &a.fixedSize }),
		schema.OptionalAttr("length", indexCodec, func(a *Array) **uint { return &a.length }),
		schema.OptionalAttr("introspectable", boolCodec, func(a *Array) **bool { return &a.introspectable }),
		schema.Variant(false, func(a *Array) *AnyType { return &a.element }, anyTypeCases()...),
	)
}
