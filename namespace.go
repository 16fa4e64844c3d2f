package gir

import (
	"strings"

	"github.com/jacoelho/gir/internal/schema"
)

// Namespace is the library described by one repository.
type Namespace struct {
	name             string
	version          Version
	identifierPrefix *string
	symbolPrefix     *string
	cPrefix          *string
	sharedLibrary    *string
	aliases          []*Alias
	classes          []*Class
	interfaces       []*Interface
	records          []*Record
	unions           []*Union
	bitFields        []*BitField
	enumerations     []*Enumeration
	boxed            []*Boxed
	callbacks        []*Callback
	functions        []*Function
	functionInlines  []*Function
	functionMacros   []*FunctionMacro
	constants        []*Constant
	docSections      []*DocSection
}

// Name returns the namespace name, for example "Gtk".
func (n *Namespace) Name() string { return n.name }

// Version returns the namespace version.
func (n *Namespace) Version() Version { return n.version }

// Package returns the package identifier Name-Version.
func (n *Namespace) Package() string { return packageID(n.name, n.version) }

// FileName returns the conventional file name Name-Version.gir.
func (n *Namespace) FileName() string { return n.Package() + ".gir" }

// IdentifierPrefixes returns the comma separated c:identifier-prefixes.
func (n *Namespace) IdentifierPrefixes() []string { return splitList(n.identifierPrefix) }

// SymbolPrefixes returns the comma separated c:symbol-prefixes.
func (n *Namespace) SymbolPrefixes() []string { return splitList(n.symbolPrefix) }

// CPrefix returns the legacy c:prefix attribute.
func (n *Namespace) CPrefix() string { return str(n.cPrefix) }

// SharedLibraries returns the comma separated shared-library list.
func (n *Namespace) SharedLibraries() []string { return splitList(n.sharedLibrary) }

// Aliases returns the typedefs in document order.
func (n *Namespace) Aliases() []*Alias { return n.aliases }

// Classes returns the classes in document order.
func (n *Namespace) Classes() []*Class { return n.classes }

// Interfaces returns the interfaces in document order.
func (n *Namespace) Interfaces() []*Interface { return n.interfaces }

// Records returns the records in document order.
func (n *Namespace) Records() []*Record { return n.records }

// Unions returns the unions in document order.
func (n *Namespace) Unions() []*Union { return n.unions }

// BitFields returns the bitfields in document order.
func (n *Namespace) BitFields() []*BitField { return n.bitFields }

// Enumerations returns the enumerations in document order.
func (n *Namespace) Enumerations() []*Enumeration { return n.enumerations }

// Boxed returns the glib:boxed types in document order.
func (n *Namespace) Boxed() []*Boxed { return n.boxed }

// Callbacks returns the callbacks in document order.
func (n *Namespace) Callbacks() []*Callback { return n.callbacks }

// Functions returns the functions in document order.
func (n *Namespace) Functions() []*Function { return n.functions }

// InlineFunctions returns the function-inline declarations in document order.
func (n *Namespace) InlineFunctions() []*Function { return n.functionInlines }

// FunctionMacros returns the function-macro declarations in document order.
func (n *Namespace) FunctionMacros() []*FunctionMacro { return n.functionMacros }

// Constants returns the constants in document order.
func (n *Namespace) Constants() []*Constant { return n.constants }

// DocSections returns the doc sections in document order.
func (n *Namespace) DocSections() []*DocSection { return n.docSections }

// Class returns the class named name.
func (n *Namespace) Class(name string) (*Class, bool) {
	return find(n.classes, name, (*Class).Name)
}

// Interface returns the interface named name.
func (n *Namespace) Interface(name string) (*Interface, bool) {
	return find(n.interfaces, name, (*Interface).Name)
}

// Record returns the record named name.
func (n *Namespace) Record(name string) (*Record, bool) {
	return find(n.records, name, (*Record).Name)
}

// Function returns the function named name.
func (n *Namespace) Function(name string) (*Function, bool) {
	return find(n.functions, name, func(f *Function) string { return f.Name() })
}

func find[E any](items []*E, name string, key func(*E) string) (*E, bool) {
	for _, item := range items {
		if key(item) == name {
			return item, true
		}
	}
	return nil, false
}

func splitList(p *string) []string {
	if p == nil || *p == "" {
		return nil
	}
	return strings.Split(*p, ",")
}

func packageID(name string, version Version) string {
	return name + "-" + version.String()
}

var namespaceSpec = schema.New[Namespace]("namespace")

func init() {
	namespaceSpec.Define(
		schema.Attr("name", stringCodec, func(n *Namespace) *string { return &n.name }),
		schema.Attr("version", versionCodec, func(n *Namespace) *Version { return &n.version }),
		schema.OptionalAttr("c:identifier-prefixes", stringCodec, func(n *Namespace) **string { return &n.identifierPrefix }),
		schema.OptionalAttr("c:symbol-prefixes", stringCodec, func(n *Namespace) **string { return &n.symbolPrefix }),
		schema.OptionalAttr("c:prefix", stringCodec, func(n *Namespace) **string { return &n.cPrefix }),
		schema.OptionalAttr("shared-library", stringCodec, func(n *Namespace) **string { return &n.sharedLibrary }),
		schema.Children(aliasSpec, func(n *Namespace) *[]*Alias { return &n.aliases }),
		schema.Children(classSpec, func(n *Namespace) *[]*Class { return &n.classes }),
		schema.Children(interfaceSpec, func(n *Namespace) *[]*Interface { return &n.interfaces }),
		schema.Children(recordSpec, func(n *Namespace) *[]*Record { return &n.records }),
		schema.Children(unionSpec, func(n *Namespace) *[]*Union { return &n.unions }),
		schema.Children(bitFieldSpec, func(n *Namespace) *[]*BitField { return &n.bitFields }),
		schema.Children(enumerationSpec, func(n *Namespace) *[]*Enumeration { return &n.enumerations }),
		schema.Children(boxedSpec, func(n *Namespace) *[]*Boxed { return &n.boxed }),
		schema.Children(callbackSpec, func(n *Namespace) *[]*Callback { return &n.callbacks }),
		schema.Children(functionSpec, func(n *Namespace) *[]*Function { return &n.functions }),
		schema.Children(functionInlineSpec, func(n *Namespace) *[]*Function { return &n.functionInlines }),
		schema.Children(functionMacroSpec, func(n *Namespace) *[]*FunctionMacro { return &n.functionMacros }),
		schema.Children(constantSpec, func(n *Namespace) *[]*Constant { return &n.constants }),
		schema.Children(docSectionSpec, func(n *Namespace) *[]*DocSection { return &n.docSections }),
	)
}
