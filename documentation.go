package gir

import "github.com/jacoelho/gir/internal/schema"

// Doc is a long-form documentation block.
type Doc struct {
	space      *string
	whitespace *string
	filename   *string
	line       *int
	column     *int
	text       string
}

// Text returns the documentation text as written.
func (d *Doc) Text() string { return d.text }

// Space returns the xml:space attribute.
func (d *Doc) Space() string { return str(d.space) }

// Whitespace returns the xml:whitespace attribute.
func (d *Doc) Whitespace() string { return str(d.whitespace) }

// Filename returns the source file the documentation was extracted from.
func (d *Doc) Filename() string { return str(d.filename) }

// Line returns the source line of the documentation.
func (d *Doc) Line() (int, bool) { return opt(d.line) }

// Column returns the source column of the documentation.
func (d *Doc) Column() (int, bool) { return opt(d.column) }

// DocNote is a short documentation note for deprecation, stability or version.
type DocNote struct {
	space      *string
	whitespace *string
	text       string
}

// Text returns the note text as written.
func (d *DocNote) Text() string { return d.text }

// Space returns the xml:space attribute.
func (d *DocNote) Space() string { return str(d.space) }

// Whitespace returns the xml:whitespace attribute.
func (d *DocNote) Whitespace() string { return str(d.whitespace) }

// SourcePosition locates a declaration in the C sources.
type SourcePosition struct {
	filename string
	column   *int
	line     int
}

// Filename returns the source file.
func (s *SourcePosition) Filename() string { return s.filename }

// Line returns the source line.
func (s *SourcePosition) Line() int { return s.line }

// Column returns the source column.
func (s *SourcePosition) Column() (int, bool) { return opt(s.column) }

// Attribute is a free-form name/value annotation.
type Attribute struct {
	name  string
	value string
}

// Name returns the attribute name.
func (a *Attribute) Name() string { return a.name }

// Value returns the attribute value.
func (a *Attribute) Value() string { return a.value }

// DocSection is a free-standing documentation section of a namespace.
type DocSection struct {
	documentation
	name string
}

// Name returns the section name.
func (d *DocSection) Name() string { return d.name }

var (
	docSpec            = schema.New[Doc]("doc").Strict()
	docDeprecatedSpec  = schema.New[DocNote]("doc-deprecated").Strict()
	docStabilitySpec   = schema.New[DocNote]("doc-stability").Strict()
	docVersionSpec     = schema.New[DocNote]("doc-version").Strict()
	sourcePositionSpec = schema.New[SourcePosition]("source-position").Strict()
	attributeSpec      = schema.New[Attribute]("attribute").Strict()
	docSectionSpec     = schema.New[DocSection]("docsection")
)

func init() {
	docSpec.Define(
		schema.OptionalAttr("xml:space", stringCodec, func(d *Doc) **string { return &d.space }),
		schema.OptionalAttr("xml:whitespace", stringCodec, func(d *Doc) **string { return &d.whitespace }),
		schema.OptionalAttr("filename", stringCodec, func(d *Doc) **string { return &d.filename }),
		schema.OptionalAttr("line", intCodec, func(d *Doc) **int { return &d.line }),
		schema.OptionalAttr("column", intCodec, func(d *Doc) **int { return &d.column }),
		schema.Text(func(d *Doc) *string { return &d.text }),
	)
	for _, spec := range []*schema.Spec[DocNote]{docDeprecatedSpec, docStabilitySpec, docVersionSpec} {
		spec.Define(
			schema.OptionalAttr("xml:space", stringCodec, func(d *DocNote) **string { return &d.space }),
			schema.OptionalAttr("xml:whitespace", stringCodec, func(d *DocNote) **string { return &d.whitespace }),
			schema.Text(func(d *DocNote) *string { return &d.text }),
		)
	}
	sourcePositionSpec.Define(
		schema.Attr("filename", stringCodec, func(s *SourcePosition) *string { return &s.filename }),
		schema.Attr("line", intCodec, func(s *SourcePosition) *int { return &s.line }),
		schema.OptionalAttr("column", intCodec, func(s *SourcePosition) **int { return &s.column }),
	)
	attributeSpec.Define(
		schema.Attr("name", stringCodec, func(a *Attribute) *string { return &a.name }),
		schema.Attr("value", stringCodec, func(a *Attribute) *string { return &a.value }),
	)
	docSectionSpec.Define(concat(
		[]schema.Field[DocSection]{
			schema.Attr("name", stringCodec, func(d *DocSection) *string { return &d.name }),
		},
		documentationFields(func(d *DocSection) *documentation { return &d.documentation }),
	)...)
}
