package job

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// boxStyle for the summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)

	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)

	barDoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	barTodoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

const barWidth = 24

// FormatHeader renders the run header with source, output and page count
func FormatHeader(w io.Writer, source, output string, pages int) {
	content := fmt.Sprintf("%s %s\n%s %s\n%s %s",
		dimStyle.Render("Source:"), source,
		dimStyle.Render("Output:"), output,
		dimStyle.Render("Pages: "), titleStyle.Render(fmt.Sprintf("%d (%d invoices)", pages, pages*4)),
	)
	fmt.Fprintln(w, headerBoxStyle.Render(content))
}

// FormatSizeWarning lists source pages that are not A4. They are still
// cut with A4 bands.
func FormatSizeWarning(w io.Writer, pages []int) {
	if len(pages) == 0 {
		return
	}
	nums := make([]string, len(pages))
	for i, p := range pages {
		nums[i] = fmt.Sprintf("%d", p)
	}
	msg := fmt.Sprintf("! pages not A4, bands may be misaligned: %s", strings.Join(nums, ", "))
	fmt.Fprintln(w, warnStyle.Render(msg))
}

// FormatProgress renders one progress line after a finished page
func FormatProgress(w io.Writer, page, total int) {
	fmt.Fprintf(w, "%s %s\n", progressBar(page, total), dimStyle.Render(fmt.Sprintf("page %d/%d", page, total)))
}

func progressBar(done, total int) string {
	filled := 0
	if total > 0 {
		filled = done * barWidth / total
	}
	if filled > barWidth {
		filled = barWidth
	}
	return barDoneStyle.Render(strings.Repeat("█", filled)) +
		barTodoStyle.Render(strings.Repeat("░", barWidth-filled))
}

// FormatSummary renders the summary box after a successful run
func FormatSummary(w io.Writer, res *Result) {
	line := fmt.Sprintf("%s %d  %s %.2fs  %s",
		dimStyle.Render("Pages:"), res.Pages,
		dimStyle.Render("Duration:"), res.Duration.Seconds(),
		successStyle.Render("OK"),
	)
	content := titleStyle.Render("Reorder Complete") + "\n" + line + "\n" +
		dimStyle.Render("Saved to ") + res.Output
	fmt.Fprintln(w, boxStyle.Render(content))
}

// FormatFailure renders a failed run
func FormatFailure(w io.Writer, err error, elapsed time.Duration) {
	fmt.Fprintf(w, "%s %s %s\n",
		errorStyle.Render("FAILED"),
		dimStyle.Render(fmt.Sprintf("after %.2fs:", elapsed.Seconds())),
		err,
	)
}

// FormatVerification renders every check of a verification report
func FormatVerification(w io.Writer, report VerificationReport) {
	for _, check := range report.Checks {
		if check.Passed {
			fmt.Fprintf(w, "%s %s\n", successStyle.Render("✓"), check.Name)
			continue
		}
		fmt.Fprintf(w, "%s %s %s\n", errorStyle.Render("✗"), check.Name, dimStyle.Render(check.Error))
	}
}
