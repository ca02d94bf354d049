package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hornlab/hornet/pkg/hornet"
	"github.com/hornlab/hornet/pkg/hornet/batch"
	"github.com/hornlab/hornet/pkg/hornet/config"
	"github.com/hornlab/hornet/pkg/hornet/store"
	"github.com/hornlab/hornet/pkg/hornet/store/sqlite"
)

var (
	batchDir      string
	batchDialect  string
	batchTimeout  int
	batchLearn    bool
	batchSemantic bool
	batchDB       string
	batchConfig   string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Verify a directory of fixture files and record the outcomes",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchDir, "dir", "", "fixture directory")
	batchCmd.Flags().StringVar(&batchDialect, "dialect", "", "force a dialect instead of inferring from file extensions")
	batchCmd.Flags().IntVar(&batchTimeout, "timeout", 0, "solver timeout in seconds")
	batchCmd.Flags().BoolVar(&batchLearn, "learn", false, "collect learned answers")
	batchCmd.Flags().BoolVar(&batchSemantic, "semantic", false, "evaluate datalog semantically")
	batchCmd.Flags().StringVar(&batchDB, "db", "", "record runs into this SQLite database")
	batchCmd.Flags().StringVar(&batchConfig, "config", "", "YAML config file, overridden by explicit flags")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := &config.Config{}
	if batchConfig != "" {
		var err error
		cfg, err = config.Load(batchConfig)
		if err != nil {
			return err
		}
	}
	applyBatchFlags(cfg)

	if cfg.FixtureDir == "" {
		return fmt.Errorf("--dir or fixture_dir is required")
	}

	var dialect hornet.Dialect
	if cfg.Dialect != "" {
		var err error
		dialect, err = hornet.ParseDialect(cfg.Dialect)
		if err != nil {
			return err
		}
	}

	var st store.Store
	if cfg.StorePath != "" {
		var err error
		st, err = sqlite.Open(ctx, cfg.StorePath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	runner := batch.New(batch.Options{
		Verifier: buildVerifier(cfg.Semantic),
		Store:    st,
		Logger:   logger,
	})

	summary, err := runner.Run(ctx, batch.Request{
		Dir:     cfg.FixtureDir,
		Dialect: dialect,
		Timeout: cfg.TimeoutSeconds,
		Learn:   cfg.Learn,
	})
	if err != nil {
		return err
	}

	fmt.Printf("total=%d safe=%d unsafe=%d unknown=%d\n",
		summary.Total, summary.Safe, summary.Unsafe, summary.Unknown)
	return nil
}

// applyBatchFlags lets explicit flags win over config file values.
func applyBatchFlags(cfg *config.Config) {
	if batchDir != "" {
		cfg.FixtureDir = batchDir
	}
	if batchDialect != "" {
		cfg.Dialect = batchDialect
	}
	if batchTimeout > 0 {
		cfg.TimeoutSeconds = batchTimeout
	}
	if batchLearn {
		cfg.Learn = true
	}
	if batchSemantic {
		cfg.Semantic = true
	}
	if batchDB != "" {
		cfg.StorePath = batchDB
	}
}
