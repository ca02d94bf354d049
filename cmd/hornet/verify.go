package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hornlab/hornet/pkg/hornet"
)

var (
	verifyDialect  string
	verifyTimeout  int
	verifyLearn    bool
	verifySemantic bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify [source]",
	Short: "Verify a single CHC input",
	Long: `Verify one CHC input given as a file path or inline text.
Without an argument, reads inputs interactively one line at a time.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyDialect, "dialect", "", "input dialect: smtlib2 or datalog (required)")
	verifyCmd.Flags().IntVar(&verifyTimeout, "timeout", hornet.DefaultTimeout, "solver timeout in seconds")
	verifyCmd.Flags().BoolVar(&verifyLearn, "learn", false, "collect learned answers")
	verifyCmd.Flags().BoolVar(&verifySemantic, "semantic", false, "evaluate datalog semantically instead of the syntactic heuristic")
	verifyCmd.MarkFlagRequired("dialect")
}

func runVerify(cmd *cobra.Command, args []string) error {
	dialect, err := hornet.ParseDialect(verifyDialect)
	if err != nil {
		return err
	}

	verifier := buildVerifier(verifySemantic)

	if len(args) == 1 {
		return verifyOne(cmd, verifier, args[0], dialect)
	}

	// Interactive mode: each line is a complete source string (or a
	// file path). Ctrl+D exits.
	fmt.Println("hornet interactive verify, dialect:", dialect)
	fmt.Println("Enter source text or a file path per line (Ctrl+D to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := verifyOne(cmd, verifier, line, dialect); err != nil {
			fmt.Println("Error:", err)
		}
	}
	fmt.Println()
	return scanner.Err()
}

func verifyOne(cmd *cobra.Command, verifier *hornet.Verifier, src string, dialect hornet.Dialect) error {
	res, err := verifier.Verify(cmd.Context(), hornet.Request{
		Source:  src,
		Dialect: dialect,
		Timeout: verifyTimeout,
		Learn:   verifyLearn,
	})
	if err != nil {
		return err
	}

	fmt.Println("status:", res.Status)
	if res.Model != "" {
		fmt.Println("model:")
		fmt.Println(indent(res.Model))
	}
	if len(res.Learned) > 0 {
		fmt.Println("learned:")
		for _, clause := range res.Learned {
			fmt.Println(indent(clause))
		}
	}
	return nil
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}
	return strings.Join(lines, "\n")
}
