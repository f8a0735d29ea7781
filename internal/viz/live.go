// Package viz renders evolved wavefunctions in the terminal: a bubbletea
// playback loop over the computed frames.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/Alper-bit/QTunelling-API/internal/qsim"
)

const (
	graphWidth  = 90
	graphHeight = 16
	frameRate   = 30
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model plays back the frames of one simulation result.
type Model struct {
	result  *qsim.Result
	idx     int
	playing bool
}

func NewModel(res *qsim.Result) Model {
	return Model{result: res, playing: true}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.idx = 0
		case "left", "h":
			m.playing = false
			if m.idx > 0 {
				m.idx--
			}
		case "right", "l":
			m.playing = false
			if m.idx < len(m.result.Frames)-1 {
				m.idx++
			}
		}
	case TickMsg:
		if m.playing {
			m.idx = (m.idx + 1) % len(m.result.Frames)
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	frame := m.result.Frames[m.idx]
	density := qsim.Density(frame.Psi)

	graph := asciigraph.Plot(density,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("probability density |psi|^2"),
	)

	var b strings.Builder
	b.WriteString(headerStyle.Render("quantum wave packet playback"))
	b.WriteString("\n\n")
	b.WriteString(graphStyle.Render(graph))
	b.WriteString("\n")
	b.WriteString(m.statusLine(frame))
	b.WriteString(helpStyle.Render("space pause · ←/→ step · r restart · q quit"))
	return b.String()
}

func (m Model) statusLine(frame qsim.Frame) string {
	status := "playing"
	if !m.playing {
		status = "paused"
	}
	parts := []string{
		labelStyle.Render("t ") + valueStyle.Render(fmt.Sprintf("%.4f", frame.Time)),
		labelStyle.Render("frame ") + valueStyle.Render(fmt.Sprintf("%d/%d", m.idx+1, len(m.result.Frames))),
		labelStyle.Render("norm ") + valueStyle.Render(fmt.Sprintf("%.6f", qsim.Norm(frame.Psi, m.result.Step))),
		labelStyle.Render("barrier ") + valueStyle.Render(fmt.Sprintf("[%g, %g] @ %g", m.result.Params.BarrierStart, m.result.Params.BarrierEnd, m.result.BarrierHeight)),
		valueStyle.Render(status),
	}
	return strings.Join(parts, labelStyle.Render("  |  ")) + "\n"
}

// Run computes nothing itself; it plays back an existing result.
func Run(res *qsim.Result) error {
	if len(res.Frames) == 0 {
		return fmt.Errorf("no frames to play")
	}
	p := tea.NewProgram(NewModel(res))
	_, err := p.Run()
	return err
}
