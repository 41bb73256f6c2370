package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/itsmostafa/invreorder/internal/layout"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan PAGES",
	Short: "Print the slot mapping for a document of PAGES pages",
	Long: `Print which source page and slot fills every output slot, without
reading or writing any file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := strconv.Atoi(args[0])
		if err != nil || pages < 1 {
			return fmt.Errorf("invalid page count %q: must be a positive integer", args[0])
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("OUT PAGE", "SLOT", "INVOICE", "SOURCE PAGE", "SOURCE SLOT")
		for _, p := range layout.Plan(pages) {
			t.Row(
				strconv.Itoa(p.Dest.Page),
				strconv.Itoa(p.Dest.Slot),
				strconv.Itoa(p.Invoice),
				strconv.Itoa(p.Source.Page),
				strconv.Itoa(p.Source.Slot),
			)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
