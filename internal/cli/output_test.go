package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rhofactor/internal/ir"
)

func TestExitError(t *testing.T) {
	err := NewExitError(ExitFailure, "boom")
	assert.Equal(t, "boom", err.Error())
	assert.Nil(t, err.Unwrap())

	wrapped := WrapExitError(ExitFailure, "load failed", assert.AnError)
	assert.Contains(t, wrapped.Error(), "load failed")
	assert.ErrorIs(t, wrapped, assert.AnError)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "x")))
	assert.Equal(t, ExitFailure, GetExitCode(fmt.Errorf("wrapped: %w", NewExitError(ExitFailure, "x"))))
}

func TestIsSilent(t *testing.T) {
	assert.False(t, IsSilent(nil))
	assert.False(t, IsSilent(assert.AnError))
	assert.False(t, IsSilent(NewExitError(ExitFailure, "x")))
	assert.True(t, IsSilent(&ExitError{Code: ExitFailure, Silent: true}))
}

func TestOutputFormatter_PairText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, f.Pair(ir.FactorPair{N: 15, Q: 5, P: 3}))
	require.NoError(t, f.Pair(ir.FactorPair{N: 4, Q: 2, P: 2}))
	assert.Equal(t, "15=5*3\n4=2*2\n", buf.String())
}

func TestOutputFormatter_PairJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf, RunID: "run-1"}

	require.NoError(t, f.Pair(ir.FactorPair{N: 8051, Q: 83, P: 97}))

	var resp struct {
		Status string        `json:"status"`
		Data   ir.FactorPair `json:"data"`
		RunID  string        `json:"run_id"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, ir.FactorPair{N: 8051, Q: 83, P: 97}, resp.Data)
	assert.Equal(t, "run-1", resp.RunID)
}

func TestOutputFormatter_ErrorText(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: out, ErrWriter: errOut}

	require.NoError(t, f.Error(ErrCodeNotFound, "input file not found: x"))
	assert.Empty(t, out.String(), "text errors stay off stdout")
	assert.Equal(t, "Error [E005]: input file not found: x\n", errOut.String())
}

func TestOutputFormatter_ErrorTextFallsBackToWriter(t *testing.T) {
	out := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: out}

	require.NoError(t, f.Error(ErrCodeGeneric, "oops"))
	assert.Contains(t, out.String(), "E001")
}

func TestOutputFormatter_ErrorJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Error(ErrCodeInvalidNumber, "line 1: invalid number"))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E007", resp.Error.Code)
}
