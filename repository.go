package gir

import "github.com/jacoelho/gir/internal/schema"

// NamespaceInclude is a dependency on another namespace.
type NamespaceInclude struct {
	name    string
	version Version
}

// Name returns the included namespace name.
func (i *NamespaceInclude) Name() string { return i.name }

// Version returns the included namespace version.
func (i *NamespaceInclude) Version() Version { return i.version }

// Package returns the package identifier Name-Version.
func (i *NamespaceInclude) Package() string { return packageID(i.name, i.version) }

// FileName returns the file expected to hold the namespace, Name-Version.gir.
func (i *NamespaceInclude) FileName() string { return i.Package() + ".gir" }

type docFormat struct {
	name DocFormat
}

// Repository is the root of a GIR document.
type Repository struct {
	version            *Version
	identifierPrefixes *string
	symbolPrefixes     *string
	xmlns              *string
	xmlnsC             *string
	xmlnsGLib          *string
	xmlnsDoc           *string
	includes           []*NamespaceInclude
	headers            []*nameRef
	packages           []*nameRef
	docFormat          *docFormat
	namespace          *Namespace
}

// Version returns the GIR format version.
func (r *Repository) Version() (Version, bool) { return opt(r.version) }

// IdentifierPrefixes returns the repository level c:identifier-prefixes.
func (r *Repository) IdentifierPrefixes() []string { return splitList(r.identifierPrefixes) }

// SymbolPrefixes returns the repository level c:symbol-prefixes.
func (r *Repository) SymbolPrefixes() []string { return splitList(r.symbolPrefixes) }

// XMLNS returns the default namespace declaration.
func (r *Repository) XMLNS() string { return str(r.xmlns) }

// XMLNSC returns the c: namespace declaration.
func (r *Repository) XMLNSC() string { return str(r.xmlnsC) }

// XMLNSGLib returns the glib: namespace declaration.
func (r *Repository) XMLNSGLib() string { return str(r.xmlnsGLib) }

// XMLNSDoc returns the doc: namespace declaration.
func (r *Repository) XMLNSDoc() string { return str(r.xmlnsDoc) }

// Includes returns the namespace dependencies in declaration order.
func (r *Repository) Includes() []*NamespaceInclude { return r.includes }

// HeaderIncludes returns the C headers in declaration order.
func (r *Repository) HeaderIncludes() []string { return refNames(r.headers) }

// Packages returns the pkg-config package names.
func (r *Repository) Packages() []string { return refNames(r.packages) }

// DocFormat returns the documentation markup dialect, DocFormatUnknown when
// the repository does not declare one.
func (r *Repository) DocFormat() DocFormat {
	if r.docFormat == nil {
		return DocFormatUnknown
	}
	return r.docFormat.name
}

// Namespace returns the namespace the repository describes.
func (r *Repository) Namespace() *Namespace { return r.namespace }

var (
	repositorySpec       = schema.New[Repository]("repository").Strict()
	namespaceIncludeSpec = schema.New[NamespaceInclude]("include").Strict()
	headerIncludeSpec    = nameRefSpec("c:include")
	packageSpec          = nameRefSpec("package")
	docFormatSpec        = schema.New[docFormat]("doc:format").Strict()
)

func init() {
	namespaceIncludeSpec.Define(
		schema.Attr("name", stringCodec, func(i *NamespaceInclude) *string { return &i.name }),
		schema.Attr("version", versionCodec, func(i *NamespaceInclude) *Version { return &i.version }),
	)
	docFormatSpec.Define(
		schema.Attr("name", docFormatCodec, func(d *docFormat) *DocFormat { return &d.name }),
	)
	repositorySpec.Define(
		schema.OptionalAttr("version", versionCodec, func(r *Repository) **Version { return &r.version }),
		schema.OptionalAttr("c:identifier-prefixes", stringCodec, func(r *Repository) **string { return &r.identifierPrefixes }),
		schema.OptionalAttr("c:symbol-prefixes", stringCodec, func(r *Repository) **string { return &r.symbolPrefixes }),
		schema.OptionalAttr("xmlns", stringCodec, func(r *Repository) **string { return &r.xmlns }),
		schema.OptionalAttr("xmlns:c", stringCodec, func(r *Repository) **string { return &r.xmlnsC }),
		schema.OptionalAttr("xmlns:glib", stringCodec, func(r *Repository) **string { return &r.xmlnsGLib }),
		schema.OptionalAttr("xmlns:doc", stringCodec, func(r *Repository) **string { return &r.xmlnsDoc }),
		schema.Children(namespaceIncludeSpec, func(r *Repository) *[]*NamespaceInclude { return &r.includes }),
		schema.Children(headerIncludeSpec, func(r *Repository) *[]*nameRef { return &r.headers }),
		schema.Children(packageSpec, func(r *Repository) *[]*nameRef { return &r.packages }),
		schema.Child(docFormatSpec, func(r *Repository) **docFormat { return &r.docFormat }),
		schema.RequiredChild(namespaceSpec, func(r *Repository) **Namespace { return &r.namespace }),
	)
}
