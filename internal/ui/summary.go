package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skalder/a15ctl/internal/transport"
)

// RenderTransmitSummary renders the outcome of a transaction: a green box
// for a clean run, an orange one when the transaction completed with
// warnings. Warnings list the affected frames so the operator knows what to
// check before re-running.
func RenderTransmitSummary(result *transport.Result) string {
	width := GetTerminalWidth()

	var lines []string

	if result.Clean() {
		title := lipgloss.NewStyle().Foreground(SuccessColor).Bold(true).
			Render(fmt.Sprintf("%s  Transaction complete", SuccessMarker))
		lines = append(lines, title)
		lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).
			Render(fmt.Sprintf("All %d frames written and confirmed.", result.FramesWritten)))
		return SuccessBoxStyle(width).Render(strings.Join(lines, "\n"))
	}

	title := lipgloss.NewStyle().Foreground(WarningColor).Bold(true).
		Render(fmt.Sprintf("%s  Transaction completed with warnings", WarningMarker))
	lines = append(lines, title)
	lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).
		Render(fmt.Sprintf("%d of %d frames written.", result.FramesWritten, result.FramesTotal)))

	itemStyle := lipgloss.NewStyle().Foreground(MutedColor)
	for _, werr := range result.WriteErrors {
		lines = append(lines, itemStyle.Render(
			fmt.Sprintf("  %s frame %d not accepted: %v", FailureMarker, werr.FrameIndex, werr.Unwrap())))
	}
	for _, rerr := range result.ReadErrors {
		lines = append(lines, itemStyle.Render(
			fmt.Sprintf("  %s frame %d read-back failed (settings unaffected)", WarningMarker, rerr.FrameIndex)))
	}

	if len(result.WriteErrors) > 0 {
		lines = append(lines, "")
		lines = append(lines, itemStyle.Render(
			"Frames already accepted remain applied. Re-run the command to replay the full transaction."))
	}

	return WarningBoxStyle(width).Render(strings.Join(lines, "\n"))
}
