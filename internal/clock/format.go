package clock

import (
	"fmt"
	"io"
	"math"

	"github.com/litescript/ls-astro/astro"
)

// FormatDate renders a two-part date as an ISO-like calendar string.
func FormatDate(d astro.Date) string {
	y, m, day, fd, err := astro.JDToCal(d)
	if err != nil {
		return "invalid"
	}
	sec := fd * astro.SecPerDay
	hh := int(sec / 3600.0)
	sec -= float64(hh) * 3600.0
	mm := int(sec / 60.0)
	sec -= float64(mm) * 60.0
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%09.6f", y, m, day, hh, mm, sec)
}

// FormatHMS renders an angle in radians as hours, minutes, seconds of time.
func FormatHMS(rad float64) string {
	hours := astro.Anp(rad) * 12.0 / math.Pi
	hh := int(hours)
	mins := (hours - float64(hh)) * 60.0
	mm := int(mins)
	ss := (mins - float64(mm)) * 60.0
	return fmt.Sprintf("%02dh%02dm%07.4fs", hh, mm, ss)
}

// WriteSummary writes a plain-text table of the snapshot, one scale per line.
func WriteSummary(w io.Writer, snap Snapshot) {
	fmt.Fprintf(w, "civil      %s\n", snap.At.UTC().Format("2006-01-02 15:04:05.000 MST"))
	fmt.Fprintf(w, "UTC        %s  (JD %.9f)\n", FormatDate(snap.UTC), snap.UTC.JD())
	fmt.Fprintf(w, "TAI        %s  (UTC%+.3fs)\n", FormatDate(snap.TAI), snap.LeapSeconds)
	fmt.Fprintf(w, "TT         %s\n", FormatDate(snap.TT))
	fmt.Fprintf(w, "TDB        %s  (TT%+.6fs)\n", FormatDate(snap.TDB), snap.TDBOffset)
	fmt.Fprintf(w, "TCG        %s\n", FormatDate(snap.TCG))
	fmt.Fprintf(w, "TCB        %s\n", FormatDate(snap.TCB))
	fmt.Fprintf(w, "UT1        %s\n", FormatDate(snap.UT1))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "ERA        %s  (%.9f deg)\n", FormatHMS(snap.ERA), snap.ERA*astro.DegPerRad)
	fmt.Fprintf(w, "GMST       %s\n", FormatHMS(snap.GMST))
	fmt.Fprintf(w, "GAST       %s\n", FormatHMS(snap.GAST))
	fmt.Fprintf(w, "LAST       %s\n", FormatHMS(snap.LAST))
	fmt.Fprintf(w, "eq.origins %+.6f arcsec\n", snap.EO*astro.ArcsecPerRad)
	fmt.Fprintf(w, "CIP X,Y    %+.9f %+.9f  s=%+.6f arcsec\n",
		snap.CIPX, snap.CIPY, snap.CIOLocator*astro.ArcsecPerRad)
	fmt.Fprintf(w, "nutation   dpsi %+.4f  deps %+.4f arcsec\n",
		snap.DPsi*astro.ArcsecPerRad, snap.DEps*astro.ArcsecPerRad)
	if snap.Warnings != astro.WarnNone {
		fmt.Fprintf(w, "warnings   %s\n", snap.Warnings)
	}
}
