package gir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/gir"
)

func TestParseEnums(t *testing.T) {
	stability, err := gir.ParseStability("Unstable")
	require.NoError(t, err)
	assert.Equal(t, gir.StabilityUnstable, stability)

	transfer, err := gir.ParseTransferOwnership("container")
	require.NoError(t, err)
	assert.True(t, transfer.IsContainer())
	assert.False(t, transfer.IsFull())

	scope, err := gir.ParseFunctionScope("notified")
	require.NoError(t, err)
	assert.True(t, scope.IsNotified())

	when, err := gir.ParseSignalEmission("cleanup")
	require.NoError(t, err)
	assert.Equal(t, gir.EmissionCleanup, when)

	dir, err := gir.ParseDirection("inout")
	require.NoError(t, err)
	assert.Equal(t, gir.DirectionInOut, dir)
}

func TestParseEnumsRejectUnknown(t *testing.T) {
	_, err := gir.ParseStability("stable")
	assert.EqualError(t, err, `invalid stability "stable"`)

	_, err = gir.ParseTransferOwnership("floating")
	assert.Error(t, err)

	_, err = gir.ParseFunctionScope("")
	assert.Error(t, err)

	_, err = gir.ParseDirection("both")
	assert.Error(t, err)
}

func TestParseDocFormat(t *testing.T) {
	assert.Equal(t, gir.DocFormatGiDocgen, gir.ParseDocFormat("gi-docgen"))
	assert.Equal(t, gir.DocFormatUnknown, gir.ParseDocFormat("asciidoc"))
	assert.Equal(t, gir.DocFormatUnknown, gir.ParseDocFormat(""))
}
