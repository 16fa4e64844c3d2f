package gir

import "github.com/jacoelho/gir/internal/schema"

// Well-known attribute names used by GTK to link properties and accessors.
const (
	AttrPropertyGet       = "org.gtk.Property.get"
	AttrPropertySet       = "org.gtk.Property.set"
	AttrMethodGetProperty = "org.gtk.Method.get_property"
	AttrMethodSetProperty = "org.gtk.Method.set_property"
)

// Documentable is implemented by entities carrying documentation blocks.
type Documentable interface {
	Doc() *Doc
	DocDeprecated() *DocNote
	DocStability() *DocNote
	DocVersion() *DocNote
	SourcePosition() *SourcePosition
}

// Attributable is implemented by entities carrying free-form attributes.
type Attributable interface {
	Attributes() []*Attribute
	Attribute(name string) (string, bool)
}

// Info is implemented by entities with introspection and deprecation metadata.
type Info interface {
	Documentable
	Attributable
	IsIntrospectable() bool
	IsDeprecated() bool
	Version() (Version, bool)
	DeprecatedVersion() (Version, bool)
	Stability() Stability
}

// Callable is implemented by functions, methods and their variants.
type Callable interface {
	Info
	Name() string
	CIdentifier() string
	Shadows() string
	ShadowedBy() string
	Throws() bool
	MovedTo() string
	AsyncFunc() string
	FinishFunc() string
	SyncFunc() string
}

type documentation struct {
	doc            *Doc
	docDeprecated  *DocNote
	docStability   *DocNote
	docVersion     *DocNote
	sourcePosition *SourcePosition
}

func (d *documentation) Doc() *Doc                       { return d.doc }
func (d *documentation) DocDeprecated() *DocNote         { return d.docDeprecated }
func (d *documentation) DocStability() *DocNote          { return d.docStability }
func (d *documentation) DocVersion() *DocNote            { return d.docVersion }
func (d *documentation) SourcePosition() *SourcePosition { return d.sourcePosition }

func documentationFields[T any](loc func(*T) *documentation) []schema.Field[T] {
	return []schema.Field[T]{
		schema.Child(docSpec, func(v *T) **Doc { return &loc(v).doc }),
		schema.Child(docDeprecatedSpec, func(v *T) **DocNote { return &loc(v).docDeprecated }),
		schema.Child(docStabilitySpec, func(v *T) **DocNote { return &loc(v).docStability }),
		schema.Child(docVersionSpec, func(v *T) **DocNote { return &loc(v).docVersion }),
		schema.Child(sourcePositionSpec, func(v *T) **SourcePosition { return &loc(v).sourcePosition }),
	}
}

type attributes struct {
	attrs []*Attribute
}

// Attributes returns the free-form attributes in document order.
func (a *attributes) Attributes() []*Attribute {
	return a.attrs
}

// Attribute returns the value of the first attribute named name.
func (a *attributes) Attribute(name string) (string, bool) {
	for _, attr := range a.attrs {
		if attr.name == name {
			return attr.value, true
		}
	}
	return "", false
}

// GtkPropertyGet returns the getter linked from a property.
func (a *attributes) GtkPropertyGet() string {
	v, _ := a.Attribute(AttrPropertyGet)
	return v
}

// GtkPropertySet returns the setter linked from a property.
func (a *attributes) GtkPropertySet() string {
	v, _ := a.Attribute(AttrPropertySet)
	return v
}

// GtkMethodGetProperty returns the property a getter method reads.
func (a *attributes) GtkMethodGetProperty() string {
	v, _ := a.Attribute(AttrMethodGetProperty)
	return v
}

// GtkMethodSetProperty returns the property a setter method writes.
func (a *attributes) GtkMethodSetProperty() string {
	v, _ := a.Attribute(AttrMethodSetProperty)
	return v
}

func attributeFields[T any](loc func(*T) *attributes) []schema.Field[T] {
	return []schema.Field[T]{
		schema.Children(attributeSpec, func(v *T) *[]*Attribute { return &loc(v).attrs }),
	}
}

type info struct {
	documentation
	attributes
	introspectable    *bool
	deprecated        *bool
	version           *Version
	deprecatedVersion *Version
	stability         *Stability
}

// IsIntrospectable defaults to true.
func (i *info) IsIntrospectable() bool { return flag(i.introspectable, true) }

// IsDeprecated defaults to false.
func (i *info) IsDeprecated() bool { return flag(i.deprecated, false) }

// Version returns the version that introduced the entity.
func (i *info) Version() (Version, bool) { return opt(i.version) }

// DeprecatedVersion returns the version that deprecated the entity.
func (i *info) DeprecatedVersion() (Version, bool) { return opt(i.deprecatedVersion) }

// Stability returns the declared stability, or "" when absent.
func (i *info) Stability() Stability { return enum(i.stability) }

func infoFields[T any](loc func(*T) *info) []schema.Field[T] {
	return concat(
		[]schema.Field[T]{
			schema.OptionalAttr("introspectable", boolCodec, func(v *T) **bool { return &loc(v).introspectable }),
			schema.OptionalAttr("deprecated", boolCodec, func(v *T) **bool { return &loc(v).deprecated }),
			schema.OptionalAttr("version", versionCodec, func(v *T) **Version { return &loc(v).version }),
			schema.OptionalAttr("deprecated-version", versionCodec, func(v *T) **Version { return &loc(v).deprecatedVersion }),
			schema.OptionalAttr("stability", stabilityCodec, func(v *T) **Stability { return &loc(v).stability }),
		},
		documentationFields(func(v *T) *documentation { return &loc(v).documentation }),
		attributeFields(func(v *T) *attributes { return &loc(v).attributes }),
	)
}

type callable struct {
	info
	name        string
	cIdentifier *string
	shadows     *string
	shadowedBy  *string
	throws      *bool
	movedTo     *string
	asyncFunc   *string
	finishFunc  *string
	syncFunc    *string
}

// Name returns the callable name.
func (c *callable) Name() string { return c.name }

// CIdentifier returns the C symbol, or "" when absent.
func (c *callable) CIdentifier() string { return str(c.cIdentifier) }

// Shadows returns the name of the callable this one replaces in bindings.
func (c *callable) Shadows() string { return str(c.shadows) }

// ShadowedBy returns the name of the callable replacing this one in bindings.
func (c *callable) ShadowedBy() string { return str(c.shadowedBy) }

// Throws defaults to false.
func (c *callable) Throws() bool { return flag(c.throws, false) }

// MovedTo returns the new location of a moved callable.
func (c *callable) MovedTo() string { return str(c.movedTo) }

// AsyncFunc returns the asynchronous variant of a synchronous callable.
func (c *callable) AsyncFunc() string { return str(c.asyncFunc) }

// FinishFunc returns the finish function of an asynchronous callable.
func (c *callable) FinishFunc() string { return str(c.finishFunc) }

// SyncFunc returns the synchronous variant of an asynchronous callable.
func (c *callable) SyncFunc() string { return str(c.syncFunc) }

func callableFields[T any](loc func(*T) *callable) []schema.Field[T] {
	return concat(
		[]schema.Field[T]{
			schema.Attr("name", stringCodec, func(v *T) *string { return &loc(v).name }),
			schema.OptionalAttr("c:identifier", stringCodec, func(v *T) **string { return &loc(v).cIdentifier }),
			schema.OptionalAttr("shadows", stringCodec, func(v *T) **string { return &loc(v).shadows }),
			schema.OptionalAttr("shadowed-by", stringCodec, func(v *T) **string { return &loc(v).shadowedBy }),
			schema.OptionalAttr("throws", boolCodec, func(v *T) **bool { return &loc(v).throws }),
			schema.OptionalAttr("moved-to", stringCodec, func(v *T) **string { return &loc(v).movedTo }),
			schema.OptionalAttr("glib:async-func", stringCodec, func(v *T) **string { return &loc(v).asyncFunc }),
			schema.OptionalAttr("glib:finish-func", stringCodec, func(v *T) **string { return &loc(v).finishFunc }),
			schema.OptionalAttr("glib:sync-func", stringCodec, func(v *T) **string { return &loc(v).syncFunc }),
		},
		infoFields(func(v *T) *info { return &loc(v).info }),
	)
}

func concat[T any](groups ...[]schema.Field[T]) []schema.Field[T] {
	var out []schema.Field[T]
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
