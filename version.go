package gir

import (
	"cmp"
	"strconv"
	"strings"
)

// Version is a dotted version number with an optional minor and patch
// component. The zero value is version 0.
type Version struct {
	major    uint16
	minor    uint16
	patch    uint16
	hasMinor bool
	hasPatch bool
}

// NewVersion returns major.minor.patch.
func NewVersion(major, minor, patch uint16) Version {
	return Version{major: major, minor: minor, patch: patch, hasMinor: true, hasPatch: true}
}

// MajorVersion returns a version with only a major component.
func MajorVersion(major uint16) Version {
	return Version{major: major}
}

// WithMinor returns a copy of v with the minor component set.
func (v Version) WithMinor(minor uint16) Version {
	v.minor, v.hasMinor = minor, true
	return v
}

// WithPatch returns a copy of v with the patch component set.
func (v Version) WithPatch(patch uint16) Version {
	v.patch, v.hasPatch = patch, true
	return v
}

// ParseVersion parses s leniently. It never fails: a component that is missing
// or is not an unsigned 16-bit integer is absent, together with every
// component after it. Components past the third are ignored.
func ParseVersion(s string) Version {
	if !strings.Contains(s, ".") {
		major, _ := parseComponent(s)
		return Version{major: major}
	}

	var v Version
	for i, part := range strings.SplitN(s, ".", 4) {
		n, ok := parseComponent(part)
		if !ok || i > 2 {
			break
		}
		switch i {
		case 0:
			v.major = n
		case 1:
			v.minor, v.hasMinor = n, true
		case 2:
			v.patch, v.hasPatch = n, true
		}
	}
	return v
}

// parseComponent accepts one optional leading '+'.
func parseComponent(s string) (uint16, bool) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// Major returns the major component.
func (v Version) Major() uint16 {
	return v.major
}

// Minor returns the minor component and whether it is present.
func (v Version) Minor() (uint16, bool) {
	return v.minor, v.hasMinor
}

// Patch returns the patch component and whether it is present.
func (v Version) Patch() (uint16, bool) {
	return v.patch, v.hasPatch
}

// String renders the present components. An absent minor followed by a
// present patch renders as major.0.patch.
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(v.major), 10))
	if v.hasMinor || v.hasPatch {
		b.WriteByte('.')
		b.WriteString(strconv.FormatUint(uint64(v.minor), 10))
	}
	if v.hasPatch {
		b.WriteByte('.')
		b.WriteString(strconv.FormatUint(uint64(v.patch), 10))
	}
	return b.String()
}

// Compare orders by major, then minor, then patch. An absent component sorts
// below any present value at the same position.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.major, other.major); c != 0 {
		return c
	}
	if c := compareComponent(v.minor, v.hasMinor, other.minor, other.hasMinor); c != 0 {
		return c
	}
	return compareComponent(v.patch, v.hasPatch, other.patch, other.hasPatch)
}

func compareComponent(a uint16, hasA bool, b uint16, hasB bool) int {
	switch {
	case !hasA && !hasB:
		return 0
	case !hasA:
		return -1
	case !hasB:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

// Less reports whether v sorts before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other have the same components.
func (v Version) Equal(other Version) bool {
	return v == other
}

// EqualString reports whether v equals the version parsed from s.
func (v Version) EqualString(s string) bool {
	return v == ParseVersion(s)
}
