package gir

import "github.com/jacoelho/gir/internal/schema"

// Property is a GObject property.
type Property struct {
	info
	name          string
	readable      *bool
	writable      *bool
	construct     *bool
	constructOnly *bool
	setter        *string
	getter        *string
	defaultValue  *string
	transfer      *TransferOwnership
	typ           AnyType
}

// Name returns the property name.
func (p *Property) Name() string { return p.name }

// IsReadable defaults to true.
func (p *Property) IsReadable() bool { return flag(p.readable, true) }

// IsWritable defaults to false.
func (p *Property) IsWritable() bool { return flag(p.writable, false) }

// IsConstruct defaults to false.
func (p *Property) IsConstruct() bool { return flag(p.construct, false) }

// IsConstructOnly defaults to false.
func (p *Property) IsConstructOnly() bool { return flag(p.constructOnly, false) }

// Setter returns the setter method name.
func (p *Property) Setter() string { return str(p.setter) }

// Getter returns the getter method name.
func (p *Property) Getter() string { return str(p.getter) }

// DefaultValue returns the default value as written.
func (p *Property) DefaultValue() string { return str(p.defaultValue) }

// TransferOwnership defaults to TransferNone.
func (p *Property) TransferOwnership() TransferOwnership {
	if p.transfer == nil {
		return TransferNone
	}
	return *p.transfer
}

// Type returns the property type.
func (p *Property) Type() AnyType { return p.typ }

// Signal is a GObject signal.
type Signal struct {
	info
	name        string
	detailed    *bool
	when        *SignalEmission
	action      *bool
	noHooks     *bool
	noRecurse   *bool
	emitter     *string
	returnValue *ReturnValue
	parameters  *Parameters
}

// Name returns the signal name.
func (s *Signal) Name() string { return s.name }

// IsDetailed defaults to false.
func (s *Signal) IsDetailed() bool { return flag(s.detailed, false) }

// When returns the emission stage, or "" when absent.
func (s *Signal) When() SignalEmission { return enum(s.when) }

// IsAction defaults to false.
func (s *Signal) IsAction() bool { return flag(s.action, false) }

// NoHooks defaults to false.
func (s *Signal) NoHooks() bool { return flag(s.noHooks, false) }

// NoRecurse defaults to false.
func (s *Signal) NoRecurse() bool { return flag(s.noRecurse, false) }

// Emitter returns the method that emits the signal.
func (s *Signal) Emitter() string { return str(s.emitter) }

// ReturnValue returns the return value description, or nil.
func (s *Signal) ReturnValue() *ReturnValue { return s.returnValue }

// Parameters returns the parameter list.
func (s *Signal) Parameters() *Parameters { return s.parameters }

// Constant is a named constant value.
type Constant struct {
	info
	name        string
	value       string
	cType       *string
	cIdentifier *string
	typ         AnyType
}

// Name returns the constant name.
func (c *Constant) Name() string { return c.name }

// Value returns the value as written.
func (c *Constant) Value() string { return c.value }

// CType returns the C type.
func (c *Constant) CType() string { return str(c.cType) }

// CIdentifier returns the C macro name.
func (c *Constant) CIdentifier() string { return str(c.cIdentifier) }

// Type returns the constant type.
func (c *Constant) Type() AnyType { return c.typ }

var (
	propertySpec = schema.New[Property]("property")
	signalSpec   = schema.New[Signal]("glib:signal")
	constantSpec = schema.New[Constant]("constant")
)

func init() {
	propertySpec.Define(concat(
		[]schema.Field[Property]{
			schema.Attr("name", stringCodec, func(p *Property) *string { return &p.name }),
			schema.OptionalAttr("readable", boolCodec, func(p *Property) **bool { return &p.readable }),
			schema.OptionalAttr("writable", boolCodec, func(p *Property) **bool { return &p.writable }),
			schema.OptionalAttr("construct", boolCodec, func(p *Property) **bool { return &p.construct }),
			schema.OptionalAttr("construct-only", boolCodec, func(p *Property) **bool { return &p.constructOnly }),
			schema.OptionalAttr("setter", stringCodec, func(p *Property) **string { return &p.setter }),
			schema.OptionalAttr("getter", stringCodec, func(p *Property) **string { return &p.getter }),
			schema.OptionalAttr("default-value", stringCodec, func(p *Property) **string { return &p.defaultValue }),
			schema.OptionalAttr("transfer-ownership", transferCodec, func(p *Property) **TransferOwnership { return &p.transfer }),
			schema.Variant(true, func(p *Property) *AnyType { return &p.typ }, anyTypeCases()...),
		},
		infoFields(func(p *Property) *info { return &p.info }),
	)...)
	signalSpec.Define(concat(
		[]schema.Field[Signal]{
			schema.Attr("name", stringCodec, func(s *Signal) *string { return &s.name }),
			schema.OptionalAttr("detailed", boolCodec, func(s *Signal) **bool { return &s.detailed }),
			schema.OptionalAttr("when", emissionCodec, func(s *Signal) **SignalEmission { return &s.when }),
			schema.OptionalAttr("action", boolCodec, func(s *Signal) **bool { return &s.action }),
			schema.OptionalAttr("no-hooks", boolCodec, func(s *Signal) **bool { return &s.noHooks }),
			schema.OptionalAttr("no-recurse", boolCodec, func(s *Signal) **bool { return &s.noRecurse }),
			schema.OptionalAttr("emitter", stringCodec, func(s *Signal) **string { return &s.emitter }),
			schema.Child(returnValueSpec, func(s *Signal) **ReturnValue { return &s.returnValue }),
			schema.RequiredChild(parametersSpec, func(s *Signal) **Parameters { return &s.parameters }),
		},
		infoFields(func(s *Signal) *info { return &s.info }),
	)...)
	constantSpec.Define(concat(
		[]schema.Field[Constant]{
			schema.Attr("name", stringCodec, func(c *Constant) *string { return &c.name }),
			schema.Attr("value", stringCodec, func(c *Constant) *string { return &c.value }),
			schema.OptionalAttr("c:type", stringCodec, func(c *Constant) **string { return &c.cType }),
			schema.OptionalAttr("c:identifier", stringCodec, func(c *Constant) **string { return &c.cIdentifier }),
			schema.Variant(true, func(c *Constant) *AnyType { return &c.typ }, anyTypeCases()...),
		},
		infoFields(func(c *Constant) *info { return &c.info }),
	)...)
}
