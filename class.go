package gir

import "github.com/jacoelho/gir/internal/schema"

// CompoundField is an element of a class, interface, record or union body:
// *Field, *Union, *Record or *Callback, kept in declaration order.
type CompoundField interface {
	isCompoundField()
}

func compoundFieldCases() []schema.Case[CompoundField] {
	return []schema.Case[CompoundField]{
		schema.On[CompoundField](fieldSpec),
		schema.On[CompoundField](unionSpec),
		schema.On[CompoundField](recordSpec),
		schema.On[CompoundField](callbackSpec),
	}
}

type nameRef struct {
	name string
}

func nameRefSpec(tag string) *schema.Spec[nameRef] {
	return schema.New[nameRef](tag).Strict().Define(
		schema.Attr("name", stringCodec, func(r *nameRef) *string { return &r.name }),
	)
}

func refNames(refs []*nameRef) []string {
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.name
	}
	return names
}

// members holds the callable and data members shared by classes and interfaces.
type members struct {
	constructors    []*Function
	functions       []*Function
	functionInlines []*Function
	methods         []*Method
	methodInlines   []*Method
	virtualMethods  []*VirtualMethod
	properties      []*Property
	signals         []*Signal
	constants       []*Constant
	body            []CompoundField
}

// Constructors returns the constructors in declaration order.
func (m *members) Constructors() []*Function { return m.constructors }

// Functions returns the static functions in declaration order.
func (m *members) Functions() []*Function { return m.functions }

// InlineFunctions returns the static inline functions.
func (m *members) InlineFunctions() []*Function { return m.functionInlines }

// Methods returns the instance methods in declaration order.
func (m *members) Methods() []*Method { return m.methods }

// InlineMethods returns the inline instance methods.
func (m *members) InlineMethods() []*Method { return m.methodInlines }

// VirtualMethods returns the vfuncs in declaration order.
func (m *members) VirtualMethods() []*VirtualMethod { return m.virtualMethods }

// Properties returns the properties in declaration order.
func (m *members) Properties() []*Property { return m.properties }

// Signals returns the signals in declaration order.
func (m *members) Signals() []*Signal { return m.signals }

// Constants returns the constants in declaration order.
func (m *members) Constants() []*Constant { return m.constants }

// Fields returns the instance structure body in declaration order.
func (m *members) Fields() []CompoundField { return m.body }

func memberFields[T any](loc func(*T) *members) []schema.Field[T] {
	return []schema.Field[T]{
		schema.Children(constructorSpec, func(v *T) *[]*Function { return &loc(v).constructors }),
		schema.Children(functionSpec, func(v *T) *[]*Function { return &loc(v).functions }),
		schema.Children(functionInlineSpec, func(v *T) *[]*Function { return &loc(v).functionInlines }),
		schema.Children(methodSpec, func(v *T) *[]*Method { return &loc(v).methods }),
		schema.Children(methodInlineSpec, func(v *T) *[]*Method { return &loc(v).methodInlines }),
		schema.Children(virtualMethodSpec, func(v *T) *[]*VirtualMethod { return &loc(v).virtualMethods }),
		schema.Children(propertySpec, func(v *T) *[]*Property { return &loc(v).properties }),
		schema.Children(signalSpec, func(v *T) *[]*Signal { return &loc(v).signals }),
		schema.Children(constantSpec, func(v *T) *[]*Constant { return &loc(v).constants }),
		schema.Variants(func(v *T) *[]CompoundField { return &loc(v).body }, compoundFieldCases()...),
	}
}

// Class is a GObject class or fundamental type.
type Class struct {
	info
	members
	name         string
	symbolPrefix *string
	cType        *string
	parent       *string
	gTypeName    string
	getType      string
	typeStruct   *string
	fundamental  *bool
	final        *bool
	abstract     *bool
	refFunc      *string
	unrefFunc    *string
	setValueFunc *string
	getValueFunc *string
	implements   []*nameRef
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// SymbolPrefix returns the C symbol prefix.
func (c *Class) SymbolPrefix() string { return str(c.symbolPrefix) }

// CType returns the C instance structure name.
func (c *Class) CType() string { return str(c.cType) }

// Parent returns the parent class name, unresolved. It is "" for root classes.
func (c *Class) Parent() string { return str(c.parent) }

// GTypeName returns the registered GType name.
func (c *Class) GTypeName() string { return c.gTypeName }

// GetType returns the GType getter function.
func (c *Class) GetType() string { return c.getType }

// TypeStruct returns the class structure record name.
func (c *Class) TypeStruct() string { return str(c.typeStruct) }

// IsFundamental defaults to false.
func (c *Class) IsFundamental() bool { return flag(c.fundamental, false) }

// IsFinal defaults to false.
func (c *Class) IsFinal() bool { return flag(c.final, false) }

// IsAbstract defaults to false.
func (c *Class) IsAbstract() bool { return flag(c.abstract, false) }

// RefFunc returns the ref function of a fundamental type.
func (c *Class) RefFunc() string { return str(c.refFunc) }

// UnrefFunc returns the unref function of a fundamental type.
func (c *Class) UnrefFunc() string { return str(c.unrefFunc) }

// SetValueFunc returns the GValue setter of a fundamental type.
func (c *Class) SetValueFunc() string { return str(c.setValueFunc) }

// GetValueFunc returns the GValue getter of a fundamental type.
func (c *Class) GetValueFunc() string { return str(c.getValueFunc) }

// Implements returns the names of the implemented interfaces.
func (c *Class) Implements() []string { return refNames(c.implements) }

// Interface is a GObject interface.
type Interface struct {
	info
	members
	name          string
	symbolPrefix  *string
	cType         *string
	gTypeName     string
	getType       string
	typeStruct    *string
	prerequisites []*nameRef
}

// Name returns the interface name.
func (i *Interface) Name() string { return i.name }

// SymbolPrefix returns the C symbol prefix.
func (i *Interface) SymbolPrefix() string { return str(i.symbolPrefix) }

// CType returns the C instance structure name.
func (i *Interface) CType() string { return str(i.cType) }

// GTypeName returns the registered GType name.
func (i *Interface) GTypeName() string { return i.gTypeName }

// GetType returns the GType getter function.
func (i *Interface) GetType() string { return i.getType }

// TypeStruct returns the interface structure record name.
func (i *Interface) TypeStruct() string { return str(i.typeStruct) }

// Prerequisites returns the names of the prerequisite types.
func (i *Interface) Prerequisites() []string { return refNames(i.prerequisites) }

var (
	classSpec        = schema.New[Class]("class").Strict()
	interfaceSpec    = schema.New[Interface]("interface").Strict()
	implementsSpec   = nameRefSpec("implements")
	prerequisiteSpec = nameRefSpec("prerequisite")
)

func init() {
	classSpec.Define(concat(
		[]schema.Field[Class]{
			schema.Attr("name", stringCodec, func(c *Class) *string { return &c.name }),
			schema.OptionalAttr("c:symbol-prefix", stringCodec, func(c *Class) **string { return &c.symbolPrefix }),
			schema.OptionalAttr("c:type", stringCodec, func(c *Class) **string { return &c.cType }),
			schema.OptionalAttr("parent", stringCodec, func(c *Class) **string { return &c.parent }),
			schema.Attr("glib:type-name", stringCodec, func(c *Class) *string { return &c.gTypeName }),
			schema.Attr("glib:get-type", stringCodec, func(c *Class) *string { return &c.getType }),
			schema.OptionalAttr("glib:type-struct", stringCodec, func(c *Class) **string { return &c.typeStruct }),
			schema.OptionalAttr("glib:fundamental", boolCodec, func(c *Class) **bool { return &c.fundamental }),
			schema.OptionalAttr("final", boolCodec, func(c *Class) **bool { return &c.final }),
			schema.OptionalAttr("abstract", boolCodec, func(c *Class) **bool { return &c.abstract }),
			schema.OptionalAttr("glib:ref-func", stringCodec, func(c *Class) **string { return &c.refFunc }),
			schema.OptionalAttr("glib:unref-func", stringCodec, func(c *Class) **string { return &c.unrefFunc }),
			schema.OptionalAttr("glib:set-value-func", stringCodec, func(c *Class) **string { return &c.setValueFunc }),
			schema.OptionalAttr("glib:get-value-func", stringCodec, func(c *Class) **string { return &c.getValueFunc }),
			schema.Children(implementsSpec, func(c *Class) *[]*nameRef { return &c.implements }),
		},
		memberFields(func(c *Class) *members { return &c.members }),
		infoFields(func(c *Class) *info { return &c.info }),
	)...)
	interfaceSpec.Define(concat(
		[]schema.Field[Interface]{
			schema.Attr("name", stringCodec, func(i *Interface) *string { return &i.name }),
			schema.OptionalAttr("c:symbol-prefix", stringCodec, func(i *Interface) **string { return &i.symbolPrefix }),
			schema.OptionalAttr("c:type", stringCodec, func(i *Interface) **string { return &i.cType }),
			schema.Attr("glib:type-name", stringCodec, func(i *Interface) *string { return &i.gTypeName }),
			schema.Attr("glib:get-type", stringCodec, func(i *Interface) *string { return &i.getType }),
			schema.OptionalAttr("glib:type-struct", stringCodec, func(i *Interface) **string { return &i.typeStruct }),
			schema.Children(prerequisiteSpec, func(i *Interface) *[]*nameRef { return &i.prerequisites }),
		},
		memberFields(func(i *Interface) *members { return &i.members }),
		infoFields(func(i *Interface) *info { return &i.info }),
	)...)
}
