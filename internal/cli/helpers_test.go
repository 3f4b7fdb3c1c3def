package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeInput writes lines to a temp file and returns its path.
func writeInput(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numbers.txt")
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644)
	require.NoError(t, err)
	return path
}

// execute runs the command with opts and args, capturing stdout and stderr.
func execute(opts *RootOptions, args ...string) (stdout, stderr string, err error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd := NewRootCommandWithOptions(opts)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}
