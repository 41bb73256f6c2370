package cmd

import (
	"fmt"

	"github.com/itsmostafa/invreorder/internal/job"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify SOURCE OUTPUT",
	Short: "Check a reordered PDF against its source",
	Long:  `Check that OUTPUT is a valid A4 PDF with the same number of pages as SOURCE.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		report := job.Verify(args[0], args[1])
		job.FormatVerification(cmd.OutOrStdout(), report)
		if !report.Passed {
			return fmt.Errorf("verification of %s failed", args[1])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
