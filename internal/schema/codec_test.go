package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolCodec(t *testing.T) {
	c := Bool()
	for _, in := range []string{"1", "true"} {
		v, err := c.Parse(in)
		require.NoError(t, err, in)
		assert.True(t, v, in)
	}
	for _, in := range []string{"0", "false"} {
		v, err := c.Parse(in)
		require.NoError(t, err, in)
		assert.False(t, v, in)
	}
	for _, in := range []string{"yes", "t", "T", "TRUE", "True", "F", ""} {
		_, err := c.Parse(in)
		require.Error(t, err, in)
	}
	assert.Equal(t, "1", c.Format(true))
	assert.Equal(t, "0", c.Format(false))
}

func TestNumericCodecs(t *testing.T) {
	u8 := Uint[uint8](8)
	v, err := u8.Parse("255")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v)
	_, err = u8.Parse("256")
	require.Error(t, err)
	_, err = u8.Parse("-1")
	require.Error(t, err)

	i64 := Int[int64](64)
	n, err := i64.Parse("-2147483648")
	require.NoError(t, err)
	assert.Equal(t, int64(-2147483648), n)
	assert.Equal(t, "-5", i64.Format(-5))
	_, err = Int[int](0).Parse("1.5")
	require.Error(t, err)
}
