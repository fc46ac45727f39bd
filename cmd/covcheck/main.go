// Command covcheck runs the Laplace-covariance self-test: it estimates the
// covariance of a known 3-D Gaussian from its density by finite differences
// and prints the true, measured and fractional-difference matrices.
//
//	covcheck run [--step 1e-3] [--inverter gonum|doolittle] [--memo]
//	             [--tolerance 1e-2] [--format text|json|yaml|toml] [--xlsx PATH]
//
// Every flag has a HESSCOV_* environment counterpart (see internal/config);
// flags win over the environment, which wins over an optional .env file.
// The exit status is 1 when any fractional difference exceeds the tolerance.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hesscov/covariance"
	"github.com/katalvlaran/hesscov/internal/config"
	"github.com/katalvlaran/hesscov/internal/logging"
	"github.com/katalvlaran/hesscov/selftest"
)

var errToleranceExceeded = errors.New("fractional difference exceeds tolerance")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "covcheck",
		Short:         "Finite-difference Hessian and Laplace covariance self-test",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newRunCmd())

	return rootCmd
}

func newRunCmd() *cobra.Command {
	var (
		envFile string
		flags   config.Config
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Estimate the example covariance and compare it with the truth",
		Long: `Estimate the covariance of a 3-D Gaussian with
Σ = [[400, .2, .1], [.2, 2, .2], [.1, .2, 1]] and μ = [1, 2, 3]
from f(x) = exp(-χ²/2) at μ, then print true cov, meas cov and frac diff.

Environment: HESSCOV_STEP, HESSCOV_INVERTER, HESSCOV_MEMO, HESSCOV_TOLERANCE,
HESSCOV_FORMAT, HESSCOV_XLSX, HESSCOV_LOG_LEVEL, HESSCOV_LOG_DEV.

Example: covcheck run --inverter doolittle --memo --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			merge(cmd, cfg, &flags)
			if err = cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(cfg.Logging())
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()
			logger = logger.With(zap.String("run_id", uuid.NewString()))

			return runCheck(cmd.OutOrStdout(), cfg, logger)
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&envFile, "env-file", "", "Read variables from this file instead of ./.env")
	cmd.Flags().Float64Var(&flags.Step, "step", defaults.Step, "Finite-difference step size")
	cmd.Flags().StringVar(&flags.Inverter, "inverter", defaults.Inverter, "Matrix inverter: gonum or doolittle")
	cmd.Flags().BoolVar(&flags.Memo, "memo", defaults.Memo, "Memoize objective evaluations")
	cmd.Flags().Float64Var(&flags.Tolerance, "tolerance", defaults.Tolerance, "Largest accepted |frac diff|")
	cmd.Flags().StringVar(&flags.Format, "format", defaults.Format, "Report format: text, json, yaml or toml")
	cmd.Flags().StringVar(&flags.XLSX, "xlsx", "", "Also save the report as an XLSX workbook")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", defaults.LogLevel, "Log level: debug, info, warn, error")

	return cmd
}

// merge copies explicitly set flags over the environment configuration.
func merge(cmd *cobra.Command, cfg *config.Config, flags *config.Config) {
	set := cmd.Flags().Changed
	if set("step") {
		cfg.Step = flags.Step
	}
	if set("inverter") {
		cfg.Inverter = flags.Inverter
	}
	if set("memo") {
		cfg.Memo = flags.Memo
	}
	if set("tolerance") {
		cfg.Tolerance = flags.Tolerance
	}
	if set("format") {
		cfg.Format = flags.Format
	}
	if set("xlsx") {
		cfg.XLSX = flags.XLSX
	}
	if set("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
}

func runCheck(out io.Writer, cfg *config.Config, logger *zap.Logger) error {
	inv, err := covariance.InverterByName(cfg.Inverter)
	if err != nil {
		return err
	}
	format, err := selftest.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	report, err := selftest.Run(selftest.Config{
		Step:         cfg.Step,
		Inverter:     inv,
		InverterName: cfg.Inverter,
		Memo:         cfg.Memo,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	if err = report.Encode(out, format); err != nil {
		return err
	}
	if cfg.XLSX != "" {
		if err = report.SaveXLSX(cfg.XLSX); err != nil {
			return err
		}
		logger.Info("xlsx report saved", zap.String("path", cfg.XLSX))
	}

	worst, err := report.MaxFracDiff()
	if err != nil {
		return err
	}
	if !report.Within(cfg.Tolerance) {
		logger.Warn("self-test failed",
			zap.Float64("max_frac_diff", worst), zap.Float64("tolerance", cfg.Tolerance))

		return fmt.Errorf("%w: max |frac diff| %.3g > %.3g", errToleranceExceeded, worst, cfg.Tolerance)
	}

	return nil
}
