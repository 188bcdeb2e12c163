package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/viant/conduit/store"
)

const ruleWidth = 60

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func heading(w io.Writer, title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

func note(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, noteStyle.Render(fmt.Sprintf(format, args...)))
}

func printBanner(w io.Writer) {
	heading(w, "CONDUIT ENGINE\nStructural Topology System")
}

func printNeighbors(w io.Writer, ns []store.Neighbor) {
	if len(ns) == 0 {
		fmt.Fprintln(w, "  (no stored states)")
		return
	}
	for i, n := range ns {
		fmt.Fprintf(w, "  %d. %s (distance: %.4f)\n", i+1, n.Name, n.Distance)
	}
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func newTable(headers ...string) *table.Table {
	return table.New().Border(lipgloss.NormalBorder()).Headers(headers...)
}

func f4(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
