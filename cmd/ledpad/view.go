package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/coreman2200/ledpad/internal/grid"
)

var (
	styleLit    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4eff00"))
	styleGhost  = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a4d1a"))
	styleUnlit  = lipgloss.NewStyle().Foreground(lipgloss.Color("#143314"))
	styleCursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	styleStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("#4eff00")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#557755"))
)

func (m model) View() string {
	var b strings.Builder

	// Ghost of the previous frame shows through where the current one is
	// unlit, for lining up motion between frames.
	var prev *grid.Grid
	if m.ed.Cursor() > 0 {
		p := m.ed.Frame(m.ed.Cursor() - 1)
		prev = &p
	}

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			lit := m.ed.PixelAt(x, y)
			cell := "··"
			style := styleUnlit
			switch {
			case lit:
				cell = "██"
				style = styleLit
			case prev != nil && prev.Get(x, y):
				cell = "▒▒"
				style = styleGhost
			}
			if m.mode == ModeNormal && !m.ed.PlacementActive() && x == m.cursorX && y == m.cursorY {
				style = styleCursor
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteByte('\n')
	}

	b.WriteString(styleDim.Render(m.statusLine()))
	b.WriteByte('\n')
	if m.mode == ModeInput {
		b.WriteString(styleStatus.Render(m.status + " " + m.input + "▌"))
	} else if m.status != "" {
		b.WriteString(styleStatus.Render(m.status))
	}
	b.WriteByte('\n')
	return b.String()
}

func (m model) statusLine() string {
	state := "draw"
	switch {
	case m.play.Playing():
		state = "playing"
	case m.ed.PlacementActive():
		state = "placing"
	case m.mode == ModeShift:
		state = "shift"
	}
	undo := " "
	if m.ed.CanUndo() {
		undo = "u"
	}
	redo := " "
	if m.ed.CanRedo() {
		redo = "r"
	}
	return fmt.Sprintf("frame %d/%d  [%s]  %s%s  effect:%s  speed:%dms",
		m.ed.Cursor()+1, m.ed.FrameCount(), state, undo, redo, m.imgEffect, m.imgSpeed)
}
