package cmd

import (
	"fmt"
	"os"

	"github.com/itsmostafa/invreorder/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "invreorder",
	Short: "Reorder 4-up invoice PDFs into cut-friendly order",
	Long: `invreorder rearranges a PDF whose A4 pages each hold four invoices stacked
top to bottom. Output page i carries invoices i, i+N, i+2N and i+3N, where N is
the page count. After cutting the printed stack into four piles, every pile is
already in sequence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("invreorder %s\n", version.String()))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
