// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-astro/astro"
	"github.com/litescript/ls-astro/internal/clock"
	"github.com/litescript/ls-astro/internal/version"
)

// Msg types for Bubble Tea
type (
	// TickMsg drives the spinner and redraws between snapshots.
	TickMsg time.Time

	// SnapshotMsg delivers a freshly computed snapshot.
	SnapshotMsg struct {
		Snapshot clock.Snapshot
	}

	// ErrorMsg signals a compute error.
	ErrorMsg struct {
		Error error
	}
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E2E8F0"))
	unitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Model is the root Bubble Tea model: a live astronomical clock.
type Model struct {
	mgr *clock.Manager

	width    int
	height   int
	ready    bool
	degrees  bool // render angles in degrees instead of h m s
	animTick int

	snapshot clock.Snapshot
	haveSnap bool
	lastErr  error
}

// New creates the root UI model.
func New(mgr *clock.Manager) Model {
	return Model{mgr: mgr}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "d":
			m.degrees = !m.degrees
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		m.animTick++
		return m, tickCmd()

	case SnapshotMsg:
		m.snapshot = msg.Snapshot
		m.haveSnap = true
		m.lastErr = nil

	case ErrorMsg:
		m.lastErr = msg.Error
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())

	if !m.haveSnap {
		spinner := spinnerFrames[m.animTick%len(spinnerFrames)]
		b.WriteString("  " + titleStyle.Render(spinner) + dimStyle.Render(" computing...") + "\n")
		return b.String()
	}

	b.WriteString(m.renderScales())
	b.WriteString("\n")
	b.WriteString(m.renderAngles())
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("ls-astro"))
	b.WriteString(dimStyle.Render("  time scales & earth orientation"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  v%s", version.Version)))
	b.WriteString("\n\n")
	return b.String()
}

func (m Model) renderScales() string {
	snap := m.snapshot

	rows := []struct {
		label string
		date  astro.Date
		note  string
	}{
		{"UTC", snap.UTC, ""},
		{"TAI", snap.TAI, fmt.Sprintf("UTC%+.0fs", snap.LeapSeconds)},
		{"TT", snap.TT, "TAI+32.184s"},
		{"TDB", snap.TDB, fmt.Sprintf("TT%+.6fs", snap.TDBOffset)},
		{"TCG", snap.TCG, ""},
		{"TCB", snap.TCB, ""},
		{"UT1", snap.UT1, ""},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(r.label))
		b.WriteString(valueStyle.Render(clock.FormatDate(r.date)))
		if r.note != "" {
			b.WriteString(unitStyle.Render("  " + r.note))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderAngles() string {
	snap := m.snapshot

	rows := []struct {
		label string
		rad   float64
	}{
		{"ERA", snap.ERA},
		{"GMST", snap.GMST},
		{"GAST", snap.GAST},
		{"LAST", snap.LAST},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(r.label))
		if m.degrees {
			b.WriteString(valueStyle.Render(fmt.Sprintf("%12.8f", r.rad*astro.DegPerRad)))
			b.WriteString(unitStyle.Render(" deg"))
		} else {
			b.WriteString(valueStyle.Render(clock.FormatHMS(r.rad)))
		}
		b.WriteString("\n")
	}

	b.WriteString("  ")
	b.WriteString(labelStyle.Render("CIP"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("X %+.9f  Y %+.9f", snap.CIPX, snap.CIPY)))
	b.WriteString(unitStyle.Render(fmt.Sprintf("  s %+.4f mas", snap.CIOLocator*astro.ArcsecPerRad*1e3)))
	b.WriteString("\n  ")
	b.WriteString(labelStyle.Render("nutation"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("dpsi %+.4f\"  deps %+.4f\"",
		snap.DPsi*astro.ArcsecPerRad, snap.DEps*astro.ArcsecPerRad)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderFooter() string {
	var b strings.Builder
	b.WriteString("\n")

	if m.lastErr != nil {
		b.WriteString("  " + errStyle.Render("ERROR: "+m.lastErr.Error()) + "\n")
	} else if m.snapshot.Warnings != astro.WarnNone {
		b.WriteString("  " + warnStyle.Render("warning: "+m.snapshot.Warnings.String()) + "\n")
	}

	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]
	b.WriteString("  " + titleStyle.Render(spinner) + dimStyle.Render(" live") +
		dimStyle.Render("  |  d: degrees  q: quit") + "\n")
	return b.String()
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
