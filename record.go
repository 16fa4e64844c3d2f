package gir

import "github.com/jacoelho/gir/internal/schema"

// compound holds the callables and body shared by records and unions.
type compound struct {
	constructors    []*Function
	functions       []*Function
	functionInlines []*Function
	methods         []*Method
	methodInlines   []*Method
	body            []CompoundField
}

// Constructors returns the constructors in declaration order.
func (c *compound) Constructors() []*Function { return c.constructors }

// Functions returns the static functions in declaration order.
func (c *compound) Functions() []*Function { return c.functions }

// InlineFunctions returns the static inline functions.
func (c *compound) InlineFunctions() []*Function { return c.functionInlines }

// Methods returns the instance methods in declaration order.
func (c *compound) Methods() []*Method { return c.methods }

// InlineMethods returns the inline instance methods.
func (c *compound) InlineMethods() []*Method { return c.methodInlines }

// Fields returns the structure body in declaration order.
func (c *compound) Fields() []CompoundField { return c.body }

func compoundFields[T any](loc func(*T) *compound) []schema.Field[T] {
	return []schema.Field[T]{
		schema.Children(constructorSpec, func(v *T) *[]*Function { return &loc(v).constructors }),
		schema.Children(functionSpec, func(v *T) *[]*Function { return &loc(v).functions }),
		schema.Children(functionInlineSpec, func(v *T) *[]*Function { return &loc(v).functionInlines }),
		schema.Children(methodSpec, func(v *T) *[]*Method { return &loc(v).methods }),
		schema.Children(methodInlineSpec, func(v *T) *[]*Method { return &loc(v).methodInlines }),
		schema.Variants(func(v *T) *[]CompoundField { return &loc(v).body }, compoundFieldCases()...),
	}
}

// Record is a C structure. Nested anonymous records have no name.
type Record struct {
	info
	compound
	name           *string
	cType          *string
	disguised      *bool
	pointer        *bool
	opaque         *bool
	foreign        *bool
	gTypeStructFor *string
	gTypeName      *string
	getType        *string
	symbolPrefix   *string
	copyFunction   *string
	freeFunction   *string
}

func (*Record) isCompoundField() {}

// Name returns the record name, or "" for anonymous records.
func (r *Record) Name() string { return str(r.name) }

// CType returns the C structure name.
func (r *Record) CType() string { return str(r.cType) }

// IsDisguised defaults to false.
func (r *Record) IsDisguised() bool { return flag(r.disguised, false) }

// IsPointer defaults to false.
func (r *Record) IsPointer() bool { return flag(r.pointer, false) }

// IsOpaque defaults to false.
func (r *Record) IsOpaque() bool { return flag(r.opaque, false) }

// IsForeign defaults to false.
func (r *Record) IsForeign() bool { return flag(r.foreign, false) }

// GTypeStructFor returns the class or interface this record is the type structure of.
func (r *Record) GTypeStructFor() string { return str(r.gTypeStructFor) }

// GTypeName returns the registered boxed GType name.
func (r *Record) GTypeName() string { return str(r.gTypeName) }

// GetType returns the GType getter function.
func (r *Record) GetType() string { return str(r.getType) }

// SymbolPrefix returns the C symbol prefix.
func (r *Record) SymbolPrefix() string { return str(r.symbolPrefix) }

// CopyFunction returns the copy function.
func (r *Record) CopyFunction() string { return str(r.copyFunction) }

// FreeFunction returns the free function.
func (r *Record) FreeFunction() string { return str(r.freeFunction) }

// Union is a C union. Nested anonymous unions have no name.
type Union struct {
	info
	compound
	name         *string
	cType        *string
	symbolPrefix *string
	gTypeName    *string
	getType      *string
	copyFunction *string
	freeFunction *string
}

func (*Union) isCompoundField() {}

// Name returns the union name, or "" for anonymous unions.
func (u *Union) Name() string { return str(u.name) }

// CType returns the C union name.
func (u *Union) CType() string { return str(u.cType) }

// SymbolPrefix returns the C symbol prefix.
func (u *Union) SymbolPrefix() string { return str(u.symbolPrefix) }

// GTypeName returns the registered boxed GType name.
func (u *Union) GTypeName() string { return str(u.gTypeName) }

// GetType returns the GType getter function.
func (u *Union) GetType() string { return str(u.getType) }

// CopyFunction returns the copy function.
func (u *Union) CopyFunction() string { return str(u.copyFunction) }

// FreeFunction returns the free function.
func (u *Union) FreeFunction() string { return str(u.freeFunction) }

// Field is a structure member.
type Field struct {
	info
	name     string
	readable *bool
	writable *bool
	nullable *bool
	private  *bool
	bits     *uint8
	typ      FieldType
}

func (*Field) isCompoundField() {}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// IsReadable defaults to true.
func (f *Field) IsReadable() bool { return flag(f.readable, true) }

// IsWritable defaults to false.
func (f *Field) IsWritable() bool { return flag(f.writable, false) }

// IsNullable defaults to false.
func (f *Field) IsNullable() bool { return flag(f.nullable, false) }

// IsPrivate defaults to false.
func (f *Field) IsPrivate() bool { return flag(f.private, false) }

// Bits returns the bitfield width.
func (f *Field) Bits() (uint8, bool) { return opt(f.bits) }

// Type returns the field shape.
func (f *Field) Type() FieldType { return f.typ }

// Boxed is a boxed type registered without a backing C structure.
type Boxed struct {
	info
	name           string
	symbolPrefix   *string
	gTypeName      *string
	getType        *string
	foreign        *bool
	gTypeStructFor *string
	copyFunction   *string
	freeFunction   *string
	functions      []*Function
	functionInline []*Function
}

// Name returns the glib:name of the boxed type.
func (b *Boxed) Name() string { return b.name }

// SymbolPrefix returns the C symbol prefix.
func (b *Boxed) SymbolPrefix() string { return str(b.symbolPrefix) }

// GTypeName returns the registered GType name.
func (b *Boxed) GTypeName() string { return str(b.gTypeName) }

// GetType returns the GType getter function.
func (b *Boxed) GetType() string { return str(b.getType) }

// IsForeign defaults to false.
func (b *Boxed) IsForeign() bool { return flag(b.foreign, false) }

// GTypeStructFor returns the type this boxed type is the structure of.
func (b *Boxed) GTypeStructFor() string { return str(b.gTypeStructFor) }

// CopyFunction returns the copy function.
func (b *Boxed) CopyFunction() string { return str(b.copyFunction) }

// FreeFunction returns the free function.
func (b *Boxed) FreeFunction() string { return str(b.freeFunction) }

// Functions returns the static functions.
func (b *Boxed) Functions() []*Function { return b.functions }

// InlineFunctions returns the static inline functions.
func (b *Boxed) InlineFunctions() []*Function { return b.functionInline }

var (
	recordSpec = schema.New[Record]("record").Strict()
	unionSpec  = schema.New[Union]("union").Strict()
	fieldSpec  = schema.New[Field]("field").Strict()
	boxedSpec  = schema.New[Boxed]("glib:boxed").Strict()
)

func init() {
	recordSpec.Define(concat(
		[]schema.Field[Record]{
			schema.OptionalAttr("name", stringCodec, func(r *Record) **string { return &r.name }),
			schema.OptionalAttr("c:type", stringCodec, func(r *Record) **string { return &r.cType }),
			schema.OptionalAttr("disguised", boolCodec, func(r *Record) **bool { return &r.disguised }),
			schema.OptionalAttr("pointer", boolCodec, func(r *Record) **bool { return &r.pointer }),
			schema.OptionalAttr("opaque", boolCodec, func(r *Record) **bool { return &r.opaque }),
			schema.OptionalAttr("foreign", boolCodec, func(r *Record) **bool { return &r.foreign }),
			schema.OptionalAttr("glib:is-gtype-struct-for", stringCodec, func(r *Record) **string { return &r.gTypeStructFor }),
			schema.OptionalAttr("glib:type-name", stringCodec, func(r *Record) **string { return &r.gTypeName }),
			schema.OptionalAttr("glib:get-type", stringCodec, func(r *Record) **string { return &r.getType }),
			schema.OptionalAttr("c:symbol-prefix", stringCodec, func(r *Record) **string { return &r.symbolPrefix }),
			schema.OptionalAttr("copy-function", stringCodec, func(r *Record) **string { return &r.copyFunction }),
			schema.OptionalAttr("free-function", stringCodec, func(r *Record) **string { return &r.freeFunction }),
		},
		compoundFields(func(r *Record) *compound { return &r.compound }),
		infoFields(func(r *Record) *info { return &r.info }),
	)...)
	unionSpec.Define(concat(
		[]schema.Field[Union]{
			schema.OptionalAttr("name", stringCodec, func(u *Union) **string { return &u.name }),
			schema.OptionalAttr("c:type", stringCodec, func(u *Union) **string { return &u.cType }),
			schema.OptionalAttr("c:symbol-prefix", stringCodec, func(u *Union) **string { return &u.symbolPrefix }),
			schema.OptionalAttr("glib:type-name", stringCodec, func(u *Union) **string { return &u.gTypeName }),
			schema.OptionalAttr("glib:get-type", stringCodec, func(u *Union) **string { return &u.getType }),
			schema.OptionalAttr("copy-function", stringCodec, func(u *Union) **string { return &u.copyFunction }),
			schema.OptionalAttr("free-function", stringCodec, func(u *Union) **string { return &u.freeFunction }),
		},
		compoundFields(func(u *Union) *compound { return &u.compound }),
		infoFields(func(u *Union) *info { return &u.info }),
	)...)
	fieldSpec.Define(concat(
		[]schema.Field[Field]{
			schema.Attr("name", stringCodec, func(f *Field) *string { return &f.name }),
			schema.OptionalAttr("readable", boolCodec, func(f *Field) **bool { return &f.readable }),
			schema.OptionalAttr("writable", boolCodec, func(f *Field) **bool { return &f.writable }),
			schema.OptionalAttr("nullable", boolCodec, func(f *Field) **bool { return &f.nullable }),
			schema.OptionalAttr("private", boolCodec, func(f *Field) **bool { return &f.private }),
			schema.OptionalAttr("bits", schema.Uint[uint8](8), func(f *Field) **uint8 { return &f.bits }),
			schema.Variant(true, func(f *Field) *FieldType { return &f.typ },
				schema.On[FieldType](typeSpec),
				schema.On[FieldType](callbackSpec),
				schema.On[FieldType](arraySpec),
			),
		},
		infoFields(func(f *Field) *info { return &f.info }),
	)...)
	boxedSpec.Define(concat(
		[]schema.Field[Boxed]{
			schema.Attr("glib:name", stringCodec, func(b *Boxed) *string { return &b.name }),
			schema.OptionalAttr("c:symbol-prefix", stringCodec, func(b *Boxed) **string { return &b.symbolPrefix }),
			schema.OptionalAttr("glib:type-name", stringCodec, func(b *Boxed) **string { return &b.gTypeName }),
			schema.OptionalAttr("glib:get-type", stringCodec, func(b *Boxed) **string { return &b.getType }),
			schema.OptionalAttr("foreign", boolCodec, func(b *Boxed) **bool { return &b.foreign }),
			schema.OptionalAttr("glib:is-gtype-struct-for", stringCodec, func(b *Boxed) **string { return &b.gTypeStructFor }),
			schema.OptionalAttr("copy-function", stringCodec, func(b *Boxed) **string { return &b.copyFunction }),
			schema.OptionalAttr("free-function", stringCodec, func(b *Boxed) **string { return &b.freeFunction }),
			schema.Children(functionSpec, func(b *Boxed) *[]*Function { return &b.functions }),
			schema.Children(functionInlineSpec, func(b *Boxed) *[]*Function { return &b.functionInline }),
		},
		infoFields(func(b *Boxed) *info { return &b.info }),
	)...)
}
