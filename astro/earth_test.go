package astro

import (
	"math"
	"testing"
)

func TestERAAtJ2000(t *testing.T) {
	got := ERA(Date{J2000, 0.0})
	want := TwoPi * 0.7790572732640
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("ERA(J2000) = %v, want %v", got, want)
	}
}

func TestERASplitInvariance(t *testing.T) {
	splits := []Date{
		{2451545.5, 0.0},
		{2400000.5, 51545.0},
		{2451545.0, 0.5},
		{0.5, 2451545.0},
	}
	ref := ERA(splits[0])
	for _, d := range splits[1:] {
		if got := ERA(d); math.Abs(got-ref) > 1e-12 {
			t.Errorf("ERA(%v) = %v, want %v", d, got, ref)
		}
	}
}

func TestGMST06AtJ2000(t *testing.T) {
	// GMST at the J2000 epoch is close to 280.46 degrees.
	gmst := GMST06(Date{J2000, 0.0}, Date{J2000, 0.0})
	deg := gmst * DegPerRad
	if math.Abs(deg-280.4606) > 0.001 {
		t.Errorf("GMST06 at J2000 = %v deg, want ~280.4606", deg)
	}
	if gmst < 0 || gmst >= TwoPi {
		t.Errorf("GMST06 out of range: %v", gmst)
	}
}

func TestGMST06MonotoneOverDay(t *testing.T) {
	// Stepping UT1 through a day, GMST advances monotonically (unwrapping
	// the 2-pi crossing) by one extra sidereal turn fraction.
	tt := Date{MJDZero, 60310.5}
	const steps = 288

	prev := GMST06(Date{MJDZero, 60310.0}, tt)
	unwrapped := 0.0
	for i := 1; i <= steps; i++ {
		g := GMST06(Date{MJDZero, 60310.0 + float64(i)/steps}, tt)
		step := g - prev
		if step < 0 {
			step += TwoPi
		}
		if step <= 0 {
			t.Fatalf("step %d: GMST not advancing (%v then %v)", i, prev, g)
		}
		unwrapped += step
		prev = g
	}

	want := TwoPi * (1.0 + 1.0/DaysPerYear)
	if math.Abs(unwrapped-want) > 1e-5 {
		t.Errorf("daily advance = %v rad, want ~%v", unwrapped, want)
	}
}

func TestGMST82AgreesWithGMST06(t *testing.T) {
	// The 1982 and 2006 models differ by well under an arcsecond for
	// decades around J2000.
	for _, mjd := range []float64{44239.0, 51544.5, 57754.0, 60310.5} {
		d := Date{MJDZero, mjd}
		g82 := GMST82(d)
		g06 := GMST06(d, d)
		diff := math.Abs(Anpm(g82 - g06))
		if diff > 1.0*RadPerArcsec {
			t.Errorf("MJD %v: GMST82-GMST06 = %v arcsec", mjd, diff*ArcsecPerRad)
		}
	}
}

func TestGST06A(t *testing.T) {
	ut1 := Date{MJDZero, 53736.0}
	tt := Date{MJDZero, 53736.0}

	gst, err := GST06A(ut1, tt)
	if err != nil {
		t.Fatal(err)
	}
	if gst < 0 || gst >= TwoPi {
		t.Errorf("GST06A out of range: %v", gst)
	}

	// Apparent minus mean sidereal time is the equation of the equinoxes,
	// which never exceeds a couple of arcseconds.
	gmst := GMST06(ut1, tt)
	if diff := math.Abs(Anpm(gst - gmst)); diff > 2.0*RadPerArcsec {
		t.Errorf("GST-GMST = %v arcsec, too large", diff*ArcsecPerRad)
	}
}

func TestGST06MatchesGST06A(t *testing.T) {
	ut1 := Date{MJDZero, 53736.0}
	tt := Date{MJDZero, 53736.0}

	rnpb, err := PrecNutMatrix(ModelIAU2006A, tt)
	if err != nil {
		t.Fatal(err)
	}
	want, err := GST06A(ut1, tt)
	if err != nil {
		t.Fatal(err)
	}
	if got := GST06(ut1, tt, rnpb); math.Abs(got-want) > 1e-14 {
		t.Errorf("GST06 = %v, GST06A = %v", got, want)
	}
}
