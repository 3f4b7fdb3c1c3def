package ir

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorPair_String(t *testing.T) {
	assert.Equal(t, "15=5*3", FactorPair{N: 15, Q: 5, P: 3}.String())
	assert.Equal(t, "4=2*2", FactorPair{N: 4, Q: 2, P: 2}.String())
	assert.Equal(t, "18446744073709551615=6148914691236517205*3",
		FactorPair{N: math.MaxUint64, Q: math.MaxUint64 / 3, P: 3}.String())
}

func TestFactorPair_Valid(t *testing.T) {
	assert.True(t, FactorPair{N: 8051, Q: 83, P: 97}.Valid())
	assert.True(t, FactorPair{N: 7, Q: 1, P: 7}.Valid(), "degenerate pair still multiplies out")
	assert.False(t, FactorPair{N: 15, Q: 4, P: 3}.Valid())
	assert.False(t, FactorPair{N: 15, Q: 0, P: 0}.Valid())
}

func TestFactorPair_JSONTags(t *testing.T) {
	data, err := json.Marshal(FactorPair{N: 15, Q: 5, P: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":15,"q":5,"p":3}`, string(data))
}
