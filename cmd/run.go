package cmd

import (
	"os"
	"os/signal"

	"github.com/itsmostafa/invreorder/internal/job"
	"github.com/spf13/cobra"
)

var output string
var force bool
var suffix string
var verifyOutput bool

var runCmd = &cobra.Command{
	Use:   "run SOURCE",
	Short: "Reorder the invoices of a PDF",
	Long: `Reorder the invoices of SOURCE into a new PDF. The output defaults to
SOURCE with the suffix inserted before the extension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Ctrl-C stops between pages and discards the partial output
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		_, err := job.Run(ctx, job.Config{
			Source: args[0],
			Output: output,
			Suffix: suffix,
			Force:  force,
			Verify: verifyOutput,
			Out:    cmd.OutOrStdout(),
		})
		return err
	},
}

func init() {
	runCmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default SOURCE with suffix)")
	runCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the output file if it exists")
	runCmd.Flags().BoolVar(&verifyOutput, "verify", false, "Check the written file against the source")

	// Suffix flag with env var fallback
	defaultSuffix := job.DefaultSuffix
	if envSuffix := os.Getenv("INVREORDER_SUFFIX"); envSuffix != "" {
		defaultSuffix = envSuffix
	}
	runCmd.Flags().StringVar(&suffix, "suffix", defaultSuffix, "Suffix for the default output name")

	rootCmd.AddCommand(runCmd)
}
