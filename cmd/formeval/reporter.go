package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const maxFileColumnWidth = 40

// printSessionTable renders the replay results as an aligned text table.
func printSessionTable(w io.Writer, reports []sessionReport) {
	headers := []string{"FILE", "EXERCISE", "SCORE", "REPS", "FRAMES", "EVALUATED", "RANGE"}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		res := r.Result
		rows = append(rows, []string{
			truncateName(r.File, maxFileColumnWidth),
			res.Exercise,
			fmt.Sprintf("%d", res.OverallScore),
			fmt.Sprintf("%d", res.RepCount),
			fmt.Sprintf("%d", res.FrameCount),
			fmt.Sprintf("%d", res.EvaluatedFrames),
			fmt.Sprintf("%.0f-%.0f", res.Digest.MinScore, res.Digest.MaxScore),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	printRow(w, headers, widths)
	for _, row := range rows {
		printRow(w, row, widths)
	}
}

func printRow(w io.Writer, cells []string, widths []int) {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = padRight(cell, widths[i])
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, "  "), " "))
}

// truncateName shortens a name to maxLen runes, replacing the last rune with "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
