package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/outlinekit/pkg/outline"
	"github.com/joshuapare/outlinekit/pkg/outlineview"
)

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	warningColor = lipgloss.Color("#FFA500")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")

	insertStyle = lipgloss.NewStyle().Foreground(successColor)
	removeStyle = lipgloss.NewStyle().Foreground(errorColor)
	moveStyle   = lipgloss.NewStyle().Foreground(warningColor)
	groupStyle  = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// paint renders s with style unless color is disabled.
func paint(style lipgloss.Style, s string) string {
	if !cfg.Color {
		return s
	}
	return style.Render(s)
}

func instructionStyle(kind outline.Kind) lipgloss.Style {
	switch kind {
	case outline.KindInsert:
		return insertStyle
	case outline.KindRemove:
		return removeStyle
	default:
		return moveStyle
	}
}

// renderScript formats one instruction per line.
func renderScript(script []outline.Instruction[string]) string {
	var sb strings.Builder
	for _, in := range script {
		sb.WriteString(paint(instructionStyle(in.Kind), in.String()))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderStats formats a one-line script summary.
func renderStats(st outline.Stats) string {
	return paint(mutedStyle, fmt.Sprintf("%d instructions: %d inserts, %d removes, %d moves (%d reparents)",
		st.Total(), st.Inserts, st.Removes, st.Moves, st.Reparents))
}

// renderRows draws rows as an indented tree with disclosure markers.
func renderRows(rows []outlineview.Row[string]) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(strings.Repeat("  ", row.Depth))
		switch {
		case row.HasChildren && row.Expanded:
			sb.WriteString("▾ ")
		case row.HasChildren:
			sb.WriteString("▸ ")
		default:
			sb.WriteString("• ")
		}
		name := row.Item
		if row.Group {
			name = paint(groupStyle, name)
		}
		sb.WriteString(name)
		if row.HasChildren && !row.Expanded {
			sb.WriteString(paint(mutedStyle, fmt.Sprintf(" (%d)", row.ChildCount)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// snapshotRows returns a row for every item of snap, visible or not.
func snapshotRows(snap *outline.Snapshot[string]) []outlineview.Row[string] {
	rows := make([]outlineview.Row[string], 0, snap.Len())
	snap.Walk(func(item string, level int) bool {
		children := len(snap.Children(item))
		rows = append(rows, outlineview.Row[string]{
			Item:        item,
			Parent:      snap.ParentRef(item),
			Depth:       level,
			HasChildren: children > 0,
			ChildCount:  children,
			Expanded:    snap.ShowsExpanded(item),
			Group:       snap.IsGroup(item),
		})
		return true
	})
	return rows
}
