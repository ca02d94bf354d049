package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hornlab/hornet/pkg/hornet/store/sqlite"
)

var (
	statsDB    string
	statsLimit int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize recorded verification runs",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsDB, "db", "", "SQLite database of recorded runs (required)")
	statsCmd.Flags().IntVar(&statsLimit, "recent", 10, "how many recent runs to list")
	statsCmd.MarkFlagRequired("db")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	st, err := sqlite.Open(ctx, statsDB)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	counts, err := st.CountByStatus(ctx)
	if err != nil {
		return err
	}

	statuses := make([]string, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	fmt.Println("verdicts:")
	for _, status := range statuses {
		fmt.Printf("  %-8s %d\n", status, counts[status])
	}

	if statsLimit <= 0 {
		return nil
	}
	runs, err := st.ListRuns(ctx, statsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println("recent runs:")
	for _, r := range runs {
		fmt.Printf("  %s  %-8s %-8s %6dms  %s\n",
			r.ID, r.Dialect, r.Status, r.Duration.Milliseconds(), r.Source)
	}
	return nil
}
