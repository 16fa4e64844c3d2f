package gir

import "github.com/jacoelho/gir/internal/schema"

// Member is one value of an enumeration or bitfield.
type Member struct {
	info
	name        string
	value       int64
	cIdentifier string
	nick        *string
	gName       *string
}

// Name returns the member name.
func (m *Member) Name() string { return m.name }

// Value returns the numeric value.
func (m *Member) Value() int64 { return m.value }

// CIdentifier returns the C enumerator.
func (m *Member) CIdentifier() string { return m.cIdentifier }

// Nick returns the GEnumValue nick.
func (m *Member) Nick() string { return str(m.nick) }

// GName returns the GEnumValue name.
func (m *Member) GName() string { return str(m.gName) }

type enumBody struct {
	info
	name            string
	cType           string
	getType         *string
	gTypeName       *string
	members         []*Member
	functions       []*Function
	functionInlines []*Function
}

// Name returns the type name.
func (e *enumBody) Name() string { return e.name }

// CType returns the C type.
func (e *enumBody) CType() string { return e.cType }

// GetType returns the GType getter function.
func (e *enumBody) GetType() string { return str(e.getType) }

// GTypeName returns the registered GType name.
func (e *enumBody) GTypeName() string { return str(e.gTypeName) }

// Members returns the values in declaration order.
func (e *enumBody) Members() []*Member { return e.members }

// Functions returns the static functions.
func (e *enumBody) Functions() []*Function { return e.functions }

// InlineFunctions returns the static inline functions.
func (e *enumBody) InlineFunctions() []*Function { return e.functionInlines }

func enumBodyFields[T any](loc func(*T) *enumBody) []schema.Field[T] {
	return concat(
		[]schema.Field[T]{
			schema.Attr("name", stringCodec, func(v *T) *string { return &loc(v).name }),
			schema.Attr("c:type", stringCodec, func(v *T) *string { return &loc(v).cType }),
			schema.OptionalAttr("glib:get-type", stringCodec, func(v *T) **string { return &loc(v).getType }),
			schema.OptionalAttr("glib:type-name", stringCodec, func(v *T) **string { return &loc(v).gTypeName }),
			schema.Children(memberSpec, func(v *T) *[]*Member { return &loc(v).members }),
			schema.Children(functionSpec, func(v *T) *[]*Function { return &loc(v).functions }),
			schema.Children(functionInlineSpec, func(v *T) *[]*Function { return &loc(v).functionInlines }),
		},
		infoFields(func(v *T) *info { return &loc(v).info }),
	)
}

// Enumeration is a C enum.
type Enumeration struct {
	enumBody
	errorDomain *string
}

// ErrorDomain returns the GError quark domain when the enum lists error codes.
func (e *Enumeration) ErrorDomain() string { return str(e.errorDomain) }

// BitField is a C enum of flags.
type BitField struct {
	enumBody
}

var (
	memberSpec      = schema.New[Member]("member").Strict()
	enumerationSpec = schema.New[Enumeration]("enumeration").Strict()
	bitFieldSpec    = schema.New[BitField]("bitfield").Strict()
)

func init() {
	memberSpec.Define(concat(
		[]schema.Field[Member]{
			schema.Attr("name", stringCodec, func(m *Member) *string { return &m.name }),
			schema.Attr("value", schema.Int[int64](64), func(m *Member) *int64 { return &m.value }),
			schema.Attr("c:identifier", stringCodec, func(m *Member) *string { return &m.cIdentifier }),
			schema.OptionalAttr("glib:nick", stringCodec, func(m *Member) **string { return &m.nick }),
			schema.OptionalAttr("glib:name", stringCodec, func(m *Member) **string { return &m.gName }),
		},
		infoFields(func(m *Member) *info { return &m.info }),
	)...)
	enumerationSpec.Define(concat(
		[]schema.Field[Enumeration]{
			schema.OptionalAttr("glib:error-domain", stringCodec, func(e *Enumeration) **string { return &e.errorDomain }),
		},
		enumBodyFields(func(e *Enumeration) *enumBody { return &e.enumBody }),
	)...)
	bitFieldSpec.Define(enumBodyFields(func(b *BitField) *enumBody { return &b.enumBody })...)
}
