package schema

import (
	"fmt"
	"strconv"
)

// Codec converts between an attribute or text value and its typed form.
type Codec[V any] struct {
	Parse  func(string) (V, error)
	Format func(V) string
}

// String is the identity codec.
func String() Codec[string] {
	return Codec[string]{
		Parse:  func(s string) (string, error) { return s, nil },
		Format: func(s string) string { return s },
	}
}

// Bool accepts exactly 0/1/true/false and formats as 0/1.
func Bool() Codec[bool] {
	return Codec[bool]{
		Parse: func(s string) (bool, error) {
			switch s {
			case "1", "true":
				return true, nil
			case "0", "false":
				return false, nil
			}
			return false, fmt.Errorf("invalid boolean %q", s)
		},
		Format: func(v bool) string {
			if v {
				return "1"
			}
			return "0"
		},
	}
}

// Uint parses a decimal unsigned integer that fits in bits.
func Uint[V ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint](bits int) Codec[V] {
	return Codec[V]{
		Parse: func(s string) (V, error) {
			v, err := strconv.ParseUint(s, 10, bits)
			if err != nil {
				return 0, fmt.Errorf("invalid unsigned integer %q", s)
			}
			return V(v), nil
		},
		Format: func(v V) string { return strconv.FormatUint(uint64(v), 10) },
	}
}

// Int parses a decimal signed integer that fits in bits (0 means int).
func Int[V ~int | ~int8 | ~int16 | ~int32 | ~int64](bits int) Codec[V] {
	return Codec[V]{
		Parse: func(s string) (V, error) {
			v, err := strconv.ParseInt(s, 10, bits)
			if err != nil {
				return 0, fmt.Errorf("invalid integer %q", s)
			}
			return V(v), nil
		},
		Format: func(v V) string { return strconv.FormatInt(int64(v), 10) },
	}
}

// Enum builds a codec for a closed string set.
func Enum[V ~string](parse func(string) (V, error)) Codec[V] {
	return Codec[V]{
		Parse:  parse,
		Format: func(v V) string { return string(v) },
	}
}
