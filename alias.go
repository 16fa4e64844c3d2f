package gir

import "github.com/jacoelho/gir/internal/schema"

// Alias is a typedef.
type Alias struct {
	info
	name  string
	cType string
	typ   AnyType
}

// Name returns the alias name.
func (a *Alias) Name() string { return a.name }

// CType returns the C typedef name.
func (a *Alias) CType() string { return a.cType }

// Type returns the aliased type, or nil when absent.
func (a *Alias) Type() AnyType { return a.typ }

var aliasSpec = schema.New[Alias]("alias").Strict()

func init() {
	aliasSpec.Define(concat(
		[]schema.Field[Alias]{
			schema.Attr("name", stringCodec, func(a *Alias) *string { return &a.name }),
			schema.Attr("c:type", stringCodec, func(a *Alias) *string { return &a.cType }),
			schema.Variant(false, func(a *Alias) *AnyType { return &a.typ }, anyTypeCases()...),
		},
		infoFields(func(a *Alias) *info { return &a.info }),
	)...)
}
