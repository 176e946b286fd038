package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-astro/astro"
	"github.com/litescript/ls-astro/internal/clock"
)

func testModel(t *testing.T) Model {
	t.Helper()

	mgr := clock.NewManager(clock.DefaultConfig())
	m := New(mgr)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	return m
}

func TestViewBeforeData(t *testing.T) {
	m := testModel(t)
	if !strings.Contains(m.View(), "computing") {
		t.Error("view without data should show the computing state")
	}
}

func TestViewWithSnapshot(t *testing.T) {
	snap, err := clock.Compute(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), clock.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	m := testModel(t)
	next, _ := m.Update(SnapshotMsg{Snapshot: snap})
	m = next.(Model)

	out := m.View()
	for _, want := range []string{"UTC", "TAI", "TDB", "ERA", "GMST", "GAST", "nutation"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDegreeToggle(t *testing.T) {
	snap, err := clock.Compute(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), clock.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	m := testModel(t)
	next, _ := m.Update(SnapshotMsg{Snapshot: snap})
	m = next.(Model)

	hms := clock.FormatHMS(snap.GMST)
	deg := fmt.Sprintf("%12.8f", snap.GMST*astro.DegPerRad)

	if out := m.View(); !strings.Contains(out, hms) || strings.Contains(out, deg) {
		t.Error("default view should render angles as h m s")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = next.(Model)
	if out := m.View(); !strings.Contains(out, deg) || strings.Contains(out, hms) {
		t.Error("toggled view should render angles in degrees")
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should produce a command")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("q produced %T, want tea.QuitMsg", msg)
	}
}
