package clock

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-astro/astro"
)

func TestDateFromTime(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		jd   float64
	}{
		{
			name: "J2000 epoch",
			time: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			jd:   2451545.0,
		},
		{
			name: "unix epoch",
			time: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			jd:   2440587.5,
		},
		{
			name: "known date 2024-01-01 00:00 UTC",
			time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			jd:   2460310.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateFromTime(tt.time)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got.JD()-tt.jd) > 1e-8 {
				t.Errorf("JD = %v, want %v", got.JD(), tt.jd)
			}
		})
	}
}

func TestComputeConsistency(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DUT1 = -0.1

	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	snap, err := Compute(at, cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Fixed-offset relations hold exactly.
	if got := snap.TT.Sub(snap.TAI) * astro.SecPerDay; math.Abs(got-astro.TTMinusTAI) > 1e-6 {
		t.Errorf("TT-TAI = %v s", got)
	}
	if got := snap.TAI.Sub(snap.UTC) * astro.SecPerDay; math.Abs(got-37.0) > 1e-6 {
		t.Errorf("TAI-UTC = %v s, want 37", got)
	}
	if got := snap.UT1.Sub(snap.UTC) * astro.SecPerDay; math.Abs(got-cfg.DUT1) > 1e-6 {
		t.Errorf("UT1-UTC = %v s, want %v", got, cfg.DUT1)
	}

	// Angles normalized.
	for _, a := range []float64{snap.ERA, snap.GMST, snap.GAST, snap.LAST} {
		if a < 0 || a >= astro.TwoPi {
			t.Errorf("angle out of range: %v", a)
		}
	}

	// GAST = ERA - EO by construction.
	if got := astro.Anp(snap.ERA - snap.EO); math.Abs(got-snap.GAST) > 1e-14 {
		t.Errorf("GAST = %v, want %v", snap.GAST, got)
	}

	// Greenwich site: LAST equals GAST.
	if snap.LAST != snap.GAST {
		t.Error("LAST should equal GAST at zero longitude")
	}

	// Site at the reference ellipsoid surface, equator by default.
	if r := snap.SiteXYZ.Norm(); math.Abs(r-6378137.0) > 1.0 {
		t.Errorf("site radius = %v m", r)
	}

	if snap.Warnings != astro.WarnNone {
		t.Errorf("unexpected warnings: %v", snap.Warnings)
	}
}

func TestComputeSiteLongitude(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.LonRad = 1.0

	at := time.Date(2020, 3, 1, 6, 30, 0, 0, time.UTC)
	snap, err := Compute(at, cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := astro.Anp(snap.GAST + 1.0)
	if math.Abs(snap.LAST-want) > 1e-14 {
		t.Errorf("LAST = %v, want %v", snap.LAST, want)
	}
}

func TestComputeFutureDateWarns(t *testing.T) {
	cfg := DefaultConfig()
	at := time.Date(2035, 1, 1, 0, 0, 0, 0, time.UTC)
	snap, err := Compute(at, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Warnings&astro.WarnDubiousYear == 0 {
		t.Errorf("warnings = %v, want WarnDubiousYear", snap.Warnings)
	}
}

func TestManager(t *testing.T) {
	m := NewManager(DefaultConfig())
	if m.HasData() {
		t.Error("fresh manager should have no data")
	}

	if err := m.Update(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if !m.HasData() {
		t.Error("manager should have data after Update")
	}
	if m.LastError() != nil {
		t.Errorf("LastError = %v", m.LastError())
	}

	snap := m.Snapshot()
	if snap.UTC.JD() == 0 {
		t.Error("snapshot not populated")
	}
}

func TestWriteSummary(t *testing.T) {
	snap, err := Compute(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	WriteSummary(&b, snap)
	out := b.String()

	for _, want := range []string{"UTC", "TAI", "TT", "TDB", "UT1", "ERA", "GMST", "GAST"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
	if strings.Contains(out, "warnings") {
		t.Error("summary should carry no warnings for a current date")
	}
}

func TestFormatHMS(t *testing.T) {
	if got := FormatHMS(0); got != "00h00m00.0000s" {
		t.Errorf("FormatHMS(0) = %q", got)
	}
	if got := FormatHMS(math.Pi); got != "12h00m00.0000s" {
		t.Errorf("FormatHMS(pi) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	got := FormatDate(astro.Date{D1: astro.MJDZero, D2: 51544.5})
	if got != "2000-01-01 12:00:00.000000" {
		t.Errorf("FormatDate = %q", got)
	}
}
