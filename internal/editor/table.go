// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package editor

import (
	"bathtub-manager/internal/bathtub"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor     = color.New(color.Bold)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	statusColor     = color.New(color.FgCyan)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

const rowFormat = "%-4s %-20s %-8s %-8s %-8s %-8s %-8s %-10s %-12s\n"

// PrintRecords writes records as a fixed-width table.
func PrintRecords(w io.Writer, records []bathtub.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}

	fmt.Fprintln(w)
	headerColor.Fprintf(w, rowFormat, "ID", "Name", "Top", "Bottom", "Width", "Height", "Incline", "Liters", "Created")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range records {
		created := ""
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, rowFormat,
			fmt.Sprint(r.ID),
			truncate(r.Name, 20),
			fmt.Sprintf("%.1f", r.TopLength),
			fmt.Sprintf("%.1f", r.BottomLength),
			fmt.Sprintf("%.1f", r.Width),
			fmt.Sprintf("%.1f", r.Height),
			fmt.Sprintf("%.2f", r.SideInclineDegrees),
			truncate(r.Liters, 10),
			created,
		)
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
