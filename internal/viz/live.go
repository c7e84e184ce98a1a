package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravsim/internal/gravity"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
)

type TickMsg time.Time

// Model drives one Simulation at one Step per frame tick and renders the
// body positions with a screen-center offset.
type Model struct {
	sim       *gravity.Simulation
	rebuild   func() (*gravity.Simulation, error)
	name      string
	canvas    *Canvas
	energyLog []float64
	zoom      float64
	fps       int
	running   bool
	showHelp  bool
	err       error
}

// NewModel wraps a built simulation. rebuild produces a fresh one for the
// reset key; name labels the header.
func NewModel(sim *gravity.Simulation, rebuild func() (*gravity.Simulation, error), name string, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		sim:       sim,
		rebuild:   rebuild,
		name:      name,
		canvas:    NewCanvas(width, height),
		energyLog: make([]float64, 0, historyCapacity),
		zoom:      1.0,
		fps:       fps,
		running:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			if m.rebuild != nil {
				fresh, err := m.rebuild()
				if err != nil {
					m.err = err
				} else {
					m.sim = fresh
					m.energyLog = m.energyLog[:0]
				}
			}
		case "+", "=":
			m.zoom *= 1.25
		case "-", "_":
			m.zoom /= 1.25
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.sim.Step()
			m.energyLog = append(m.energyLog, m.sim.TotalEnergy())
			if len(m.energyLog) > historyCapacity {
				m.energyLog = m.energyLog[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// scale maps world coordinates to sub-pixels so the widest body spread
// fits the canvas; the simulation center lands on the screen center.
func (m *Model) scale() float64 {
	maxR := 1.0
	for _, b := range m.sim.Bodies() {
		r := math.Hypot(b.Position.X, b.Position.Y)
		if r > maxR {
			maxR = r
		}
	}
	subW := float64(width * 2)
	return subW / (2.2 * maxR) * m.zoom
}

func (m Model) View() string {
	m.canvas.Clear()

	bodies := m.sim.Bodies()
	s := m.scale()
	cx := width * 2 / 2
	cy := height * 4 / 2

	for _, b := range bodies {
		px := cx + int(b.Position.X*s)
		py := cy - int(b.Position.Y*s)
		r := 0
		if b.Radius >= 10 {
			r = 2
		} else if b.Radius >= 5 {
			r = 1
		}
		m.canvas.Disc(px, py, r)
	}

	stats := m.renderStats(bodies)
	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats),
	)

	var b strings.Builder
	b.WriteString(headerStyle.Render("gravsim · " + m.name))
	b.WriteString("\n")
	b.WriteString(main)
	if len(m.energyLog) > 2 {
		graph := asciigraph.Plot(m.energyLog,
			asciigraph.Height(5),
			asciigraph.Width(70),
			asciigraph.Caption("total energy"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}
	if m.showHelp {
		b.WriteString(helpStyle.Render("space pause · r reset · +/- zoom · q quit"))
	} else {
		b.WriteString(helpStyle.Render("? help"))
	}
	return b.String()
}

func (m Model) renderStats(bodies []gravity.Body) string {
	var sb strings.Builder

	status := "running"
	if !m.running {
		status = pausedStyle.Render("paused")
	}
	fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("status"), valueStyle.Render(status))
	fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("t"), valueStyle.Render(fmt.Sprintf("%.2f s", m.sim.Time())))
	fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("steps"), valueStyle.Render(fmt.Sprintf("%d", m.sim.Steps())))
	fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("G"), valueStyle.Render(fmt.Sprintf("%.4g", m.sim.G())))
	fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("dt"), valueStyle.Render(fmt.Sprintf("%.4g s", m.sim.Dt())))
	fmt.Fprintf(&sb, "%s%s\n", labelStyle.Render("energy"), valueStyle.Render(fmt.Sprintf("%.6g", m.sim.TotalEnergy())))
	p := m.sim.Momentum()
	fmt.Fprintf(&sb, "%s%s\n\n", labelStyle.Render("|p|"), valueStyle.Render(fmt.Sprintf("%.4g", p.Norm())))

	for _, b := range bodies {
		fmt.Fprintf(&sb, "%s%s\n",
			labelStyle.Render(b.Name),
			valueStyle.Render(fmt.Sprintf("(%.3g, %.3g, %.3g)", b.Position.X, b.Position.Y, b.Position.Z)))
	}

	if m.err != nil {
		fmt.Fprintf(&sb, "\nerror: %v", m.err)
	}

	return sb.String()
}
