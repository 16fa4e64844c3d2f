package gir

import (
	"fmt"
	"slices"

	"github.com/jacoelho/gir/internal/schema"
)

// Stability marks how stable an API is.
type Stability string

const (
	StabilityStable   Stability = "Stable"
	StabilityUnstable Stability = "Unstable"
	StabilityPrivate  Stability = "Private"
)

func (s Stability) String() string { return string(s) }

// ParseStability parses a stability attribute value.
func ParseStability(s string) (Stability, error) {
	return parseEnum("stability", s, StabilityStable, StabilityUnstable, StabilityPrivate)
}

// TransferOwnership says which side of a call releases a value.
type TransferOwnership string

const (
	TransferNone      TransferOwnership = "none"
	TransferContainer TransferOwnership = "container"
	TransferFull      TransferOwnership = "full"
)

// ParseTransferOwnership parses a transfer-ownership attribute value.
func ParseTransferOwnership(s string) (TransferOwnership, error) {
	return parseEnum("transfer ownership", s, TransferNone, TransferContainer, TransferFull)
}

func (t TransferOwnership) String() string { return string(t) }

// IsNone reports whether no ownership is transferred.
func (t TransferOwnership) IsNone() bool { return t == TransferNone }

// IsContainer reports whether only the container is transferred.
func (t TransferOwnership) IsContainer() bool { return t == TransferContainer }

// IsFull reports whether the value and its contents are transferred.
func (t TransferOwnership) IsFull() bool { return t == TransferFull }

// FunctionScope bounds the lifetime of a callback argument.
type FunctionScope string

const (
	ScopeCall     FunctionScope = "call"
	ScopeNotified FunctionScope = "notified"
	ScopeAsync    FunctionScope = "async"
	ScopeForever  FunctionScope = "forever"
)

func (f FunctionScope) String() string { return string(f) }

// ParseFunctionScope parses a scope attribute value.
func ParseFunctionScope(s string) (FunctionScope, error) {
	return parseEnum("function scope", s, ScopeCall, ScopeNotified, ScopeAsync, ScopeForever)
}

// IsCall reports whether the callback is valid only during the call.
func (f FunctionScope) IsCall() bool { return f == ScopeCall }

// IsNotified reports whether the callback lives until a destroy notify runs.
func (f FunctionScope) IsNotified() bool { return f == ScopeNotified }

// IsAsync reports whether the callback is invoked once, asynchronously.
func (f FunctionScope) IsAsync() bool { return f == ScopeAsync }

// IsForever reports whether the callback is never released.
func (f FunctionScope) IsForever() bool { return f == ScopeForever }

// SignalEmission is the stage at which a signal's class handler runs.
type SignalEmission string

const (
	EmissionFirst   SignalEmission = "first"
	EmissionLast    SignalEmission = "last"
	EmissionCleanup SignalEmission = "cleanup"
)

func (e SignalEmission) String() string { return string(e) }

// ParseSignalEmission parses a signal when attribute value.
func ParseSignalEmission(s string) (SignalEmission, error) {
	return parseEnum("signal emission", s, EmissionFirst, EmissionLast, EmissionCleanup)
}

// Direction is the data flow direction of a parameter.
type Direction string

const (
	DirectionIn    Direction = "in"
	DirectionOut   Direction = "out"
	DirectionInOut Direction = "inout"
)

func (d Direction) String() string { return string(d) }

// ParseDirection parses a direction attribute value.
func ParseDirection(s string) (Direction, error) {
	return parseEnum("direction", s, DirectionIn, DirectionOut, DirectionInOut)
}

// DocFormat is the markup dialect of documentation blocks.
type DocFormat string

const (
	DocFormatGtkDocMarkdown DocFormat = "gtk-doc-markdown"
	DocFormatGtkDocDocbook  DocFormat = "gtk-doc-docbook"
	DocFormatGiDocgen       DocFormat = "gi-docgen"
	DocFormatHotdoc         DocFormat = "hotdoc"
	DocFormatUnknown        DocFormat = "unknown"
)

func (f DocFormat) String() string { return string(f) }

// ParseDocFormat never fails: unrecognized values map to DocFormatUnknown.
func ParseDocFormat(s string) DocFormat {
	f, err := parseEnum("doc format", s,
		DocFormatGtkDocMarkdown, DocFormatGtkDocDocbook, DocFormatGiDocgen, DocFormatHotdoc, DocFormatUnknown)
	if err != nil {
		return DocFormatUnknown
	}
	return f
}

func parseEnum[E ~string](kind, s string, values ...E) (E, error) {
	if slices.Contains(values, E(s)) {
		return E(s), nil
	}
	return "", fmt.Errorf("invalid %s %q", kind, s)
}

var (
	stringCodec    = schema.String()
	boolCodec      = schema.Bool()
	intCodec       = schema.Int[int](0)
	indexCodec     = schema.Uint[uint](0)
	versionCodec   = schema.Codec[Version]{Parse: func(s string) (Version, error) { return ParseVersion(s), nil }, Format: Version.String}
	docFormatCodec = schema.Codec[DocFormat]{Parse: func(s string) (DocFormat, error) { return ParseDocFormat(s), nil }, Format: func(f DocFormat) string { return string(f) }}
	stabilityCodec = schema.Enum(ParseStability)
	transferCodec  = schema.Enum(ParseTransferOwnership)
	scopeCodec     = schema.Enum(ParseFunctionScope)
	emissionCodec  = schema.Enum(ParseSignalEmission)
	directionCodec = schema.Enum(ParseDirection)
)

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func flag(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func opt[V any](p *V) (V, bool) {
	if p == nil {
		var zero V
		return zero, false
	}
	return *p, true
}

func enum[E ~string](p *E) E {
	if p == nil {
		return ""
	}
	return *p
}
