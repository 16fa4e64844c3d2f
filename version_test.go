package gir_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacoelho/gir"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want gir.Version
	}{
		{in: "", want: gir.MajorVersion(0)},
		{in: "3", want: gir.MajorVersion(3)},
		{in: "2.0", want: gir.MajorVersion(2).WithMinor(0)},
		{in: "1.2.3", want: gir.NewVersion(1, 2, 3)},
		{in: "1.2.3.4", want: gir.NewVersion(1, 2, 3)},
		{in: "1.x.3", want: gir.MajorVersion(1)},
		{in: "1.2.beta", want: gir.MajorVersion(1).WithMinor(2)},
		{in: "x.2.3", want: gir.MajorVersion(0)},
		{in: "70000.1", want: gir.MajorVersion(0)},
		{in: "abc", want: gir.MajorVersion(0)},
		{in: "1.", want: gir.MajorVersion(1)},
		{in: "+1.2", want: gir.MajorVersion(1).WithMinor(2)},
		{in: "1.+2.+3", want: gir.NewVersion(1, 2, 3)},
		{in: "++1.2", want: gir.MajorVersion(0)},
		{in: "1.+", want: gir.MajorVersion(1)},
		{in: "-1.2", want: gir.MajorVersion(0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, gir.ParseVersion(tt.in))
		})
	}
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "1.2.3", gir.NewVersion(1, 2, 3).String())
	assert.Equal(t, "4.0.6", gir.MajorVersion(4).WithPatch(6).String())
	assert.Equal(t, "3", gir.MajorVersion(3).String())
	assert.Equal(t, "2.0", gir.MajorVersion(2).WithMinor(0).String())
}

func TestVersionStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "1.0", "2.56", "4.10.3", "65535.65535.65535"} {
		assert.Equal(t, s, gir.ParseVersion(s).String())
		assert.True(t, gir.ParseVersion(s).EqualString(s))
	}
}

func TestVersionAccessors(t *testing.T) {
	v := gir.MajorVersion(4).WithPatch(6)
	assert.Equal(t, uint16(4), v.Major())

	_, ok := v.Minor()
	assert.False(t, ok)

	patch, ok := v.Patch()
	assert.True(t, ok)
	assert.Equal(t, uint16(6), patch)
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b gir.Version
		want int
	}{
		{name: "equal", a: gir.NewVersion(1, 2, 3), b: gir.NewVersion(1, 2, 3), want: 0},
		{name: "major dominates", a: gir.NewVersion(2, 0, 0), b: gir.NewVersion(1, 9, 9), want: 1},
		{name: "minor dominates patch", a: gir.NewVersion(1, 1, 0), b: gir.NewVersion(1, 0, 9), want: 1},
		{name: "patch", a: gir.NewVersion(1, 0, 1), b: gir.NewVersion(1, 0, 2), want: -1},
		{name: "absent minor below zero", a: gir.MajorVersion(1), b: gir.MajorVersion(1).WithMinor(0), want: -1},
		{name: "absent patch below zero", a: gir.MajorVersion(1).WithMinor(0), b: gir.NewVersion(1, 0, 0), want: -1},
		{name: "major only equal", a: gir.MajorVersion(3), b: gir.ParseVersion("3"), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, -tt.want, tt.b.Compare(tt.a))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
		})
	}
}

func TestVersionSort(t *testing.T) {
	versions := []gir.Version{
		gir.ParseVersion("2.0"),
		gir.ParseVersion("1.0"),
		gir.ParseVersion("1"),
		gir.ParseVersion("1.0.1"),
		gir.ParseVersion("1.0.0"),
	}
	slices.SortFunc(versions, gir.Version.Compare)

	got := make([]string, len(versions))
	for i, v := range versions {
		got[i] = v.String()
	}
	assert.Equal(t, []string{"1", "1.0", "1.0.0", "1.0.1", "2.0"}, got)
}
