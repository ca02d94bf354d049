// Command hornet classifies Constrained Horn Clause inputs as safe,
// unsafe or unknown, one file at a time or across whole fixture
// directories.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hornlab/hornet/pkg/hornet"
	"github.com/hornlab/hornet/pkg/hornet/solver/fixedpoint"
	"github.com/hornlab/hornet/pkg/hornet/solver/z3"
)

var rootCmd = &cobra.Command{
	Use:           "hornet",
	Short:         "CHC safety classification toolkit",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(verifyCmd, batchCmd, statsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildVerifier wires the solver backends. Without a z3-enabled build the
// SMT-LIB2 path is left unconfigured and only Datalog requests succeed.
func buildVerifier(semantic bool) *hornet.Verifier {
	opts := hornet.Options{}

	if eng, err := z3.New(); err == nil {
		opts.Engine = eng
	} else {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	if semantic {
		opts.DatalogSemantics = fixedpoint.New()
	}

	return hornet.New(opts)
}
