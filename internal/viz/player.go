// Package viz plays back stored trajectories in the terminal.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mdsim/internal/analysis"
	"github.com/san-kum/mdsim/internal/sim"
	"github.com/san-kum/mdsim/internal/storage"
)

const (
	canvasWidth  = 64
	canvasHeight = 20
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	canvasStyle = lipgloss.NewStyle().Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

// Player replays one recorded run: the XY projection of the box on a braille
// canvas plus the mean squared displacement history up to the current frame.
type Player struct {
	meta    *storage.RunMetadata
	traj    sim.Trajectory
	msd     []float64
	canvas  *Canvas
	frame   int
	playing bool
	speed   int // frames advanced per tick
}

func NewPlayer(meta *storage.RunMetadata, traj sim.Trajectory) Player {
	return Player{
		meta:    meta,
		traj:    traj,
		msd:     analysis.MeanSquaredDisplacement(traj),
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		playing: true,
		speed:   1,
	}
}

func (p Player) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case " ":
			p.playing = !p.playing
		case "r":
			p.frame = 0
		case "[":
			p.playing = false
			p.scrub(-1)
		case "]":
			p.playing = false
			p.scrub(1)
		case "+", "=":
			if p.speed < 16 {
				p.speed *= 2
			}
		case "-", "_":
			if p.speed > 1 {
				p.speed /= 2
			}
		}
	case tickMsg:
		if p.playing {
			p.scrub(p.speed)
		}
		return p, tick()
	}
	return p, nil
}

func (p *Player) scrub(delta int) {
	p.frame += delta
	if p.frame < 0 {
		p.frame = 0
	}
	if p.frame >= len(p.traj) {
		p.frame = len(p.traj) - 1
		p.playing = false
	}
}

// draw projects the current frame onto the canvas: x maps to the horizontal
// dot axis and y to the vertical one, with the box border outlined.
func (p *Player) draw() {
	p.canvas.Clear()

	maxX := canvasWidth*2 - 1
	maxY := canvasHeight*4 - 1
	p.canvas.DrawRect(0, 0, maxX, maxY)

	if len(p.traj) == 0 {
		return
	}
	box := p.meta.Box
	for _, pos := range p.traj[p.frame] {
		x := int(pos[0] / box * float64(maxX))
		y := int((1 - pos[1]/box) * float64(maxY))
		p.canvas.Set(x, y)
	}
}

func (p Player) View() string {
	p.draw()

	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("MDSIM PLAYBACK: %s", p.meta.ID)) + "\n")
	s.WriteString(canvasStyle.Render(p.canvas.String()) + "\n")

	status := "PLAYING"
	if !p.playing {
		status = "PAUSED"
	}
	t := float64(p.frame+1) * p.meta.Dt

	s.WriteString(labelStyle.Render("Status") + valueStyle.Render(fmt.Sprintf("%s x%d", status, p.speed)) + "\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d / %d", p.frame+1, len(p.traj))) + "\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.3f", t)) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", p.meta.Particles)) + "\n")

	if p.frame > 1 {
		chart := asciigraph.Plot(p.msd[:p.frame+1],
			asciigraph.Height(4), asciigraph.Width(48), asciigraph.Caption("mean squared displacement"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("space play/pause · [ ] scrub · +/- speed · r restart · q quit"))
	return s.String()
}

// Run plays back a stored trajectory until the user quits.
func Run(meta *storage.RunMetadata, traj sim.Trajectory) error {
	_, err := tea.NewProgram(NewPlayer(meta, traj)).Run()
	return err
}
