// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/smallmat/matrix"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	indexStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	labelStyle  = lipgloss.NewStyle().Bold(true)
)

// renderMatrix draws m as a bordered table labelled with indices in the
// matrix's own base.
func renderMatrix(m *matrix.SmallMatrix[float64]) string {
	s := m.StartIndex()
	headers := make([]string, 0, m.Cols()+1)
	headers = append(headers, "")
	for j := 0; j < m.Cols(); j++ {
		headers = append(headers, strconv.Itoa(j+s))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return indexStyle
			default:
				return cellStyle
			}
		})

	for i, r := range m.ToRows() {
		cells := make([]string, 0, len(r)+1)
		cells = append(cells, strconv.Itoa(i+s))
		for _, v := range r {
			cells = append(cells, strconv.FormatFloat(v, 'g', -1, 64))
		}
		t.Row(cells...)
	}

	return t.Render()
}

// renderSummary prints the inspect fields as "label: value" lines.
func renderSummary(rep inspectReport) string {
	var b strings.Builder
	line := func(label string, v interface{}) {
		fmt.Fprintf(&b, "%s %v\n", labelStyle.Render(label+":"), v)
	}
	line("type", rep.Type)
	line("layout", rep.Layout)
	line("size", rep.Size)
	line("sum", strconv.FormatFloat(rep.Sum, 'g', -1, 64))
	line("prod", strconv.FormatFloat(rep.Prod, 'g', -1, 64))
	if rep.Trace != nil {
		line("trace", strconv.FormatFloat(*rep.Trace, 'g', -1, 64))
	}
	if rep.Det != nil {
		line("det", strconv.FormatFloat(*rep.Det, 'g', -1, 64))
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderCompare prints the compare verdicts as "label: value" lines.
func renderCompare(rep compareReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %v\n", labelStyle.Render("equal:"), rep.Equal)
	fmt.Fprintf(&b, "%s %v (rtol=%g atol=%g)\n", labelStyle.Render("allclose:"), rep.AllClose, rep.RTol, rep.ATol)
	fmt.Fprintf(&b, "%s %v (ulp=%d)", labelStyle.Render("almost_equal:"), rep.AlmostEqual, rep.ULP)

	return b.String()
}
