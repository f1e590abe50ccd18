package cli

import (
	"github.com/narigama/gen-features/internal/branding"
	"github.com/narigama/gen-features/internal/scaffold"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var benchCrate string

func init() {
	benchCmd.Flags().StringVar(&benchCrate, "crate", branding.CrateName(), "Rust crate path used in the generated `use` lines")
	rootCmd.AddCommand(modCmd)
	rootCmd.AddCommand(benchCmd)
}

var modCmd = &cobra.Command{
	Use:   "mod <year>",
	Short: "Print the feature-gated module index (mod.rs) for a year",
	Long: `Print src/y<year>/mod.rs: one feature-gated "pub mod dNN;" per day and a
main() that runs every enabled day in order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScaffold(cmd, scaffold.KindMod, args[0], branding.CrateName())
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench <year>",
	Short: "Print the criterion benchmark harness for a year",
	Long: `Print benches/aoc<year>.rs: one feature-gated block per day benchmarking
part one and part two against the day's cached input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScaffold(cmd, scaffold.KindBench, args[0], benchCrate)
	},
}

func runScaffold(cmd *cobra.Command, kind, year, crate string) error {
	logger.Debug("rendering scaffold",
		zap.String("kind", kind),
		zap.String("year", year),
		zap.String("crate", crate))
	return scaffold.Render(cmd.OutOrStdout(), kind, scaffold.NewData(year, crate))
}
