// Command rhofactor splits each integer in an input file into two factors.
//
//	rhofactor <input-file>
//
// Exit status is 0 on success and 1 on any failure, including a batch that
// runs past its 5 second budget.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/roach88/rhofactor/internal/cli"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !cli.IsSilent(err) {
			fmt.Fprintln(stderr, err)
		}
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}
