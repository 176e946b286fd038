package astro

import "math"

// ERA returns the Earth rotation angle (IAU 2000 model) for a UT1 date, in
// radians in the range [0, 2pi). The day fractions of the two parts are
// separated from the elapsed-time term and added back in at the end, which
// keeps the angle accurate however the date was apportioned.
func ERA(ut1 Date) float64 {
	d1, d2 := ut1.D1, ut1.D2
	if d1 >= d2 {
		d1, d2 = d2, d1
	}
	t := d1 + (d2 - J2000)

	// Fractional part of T (days).
	f := math.Mod(d1, 1.0) + math.Mod(d2, 1.0)

	return Anp(TwoPi * (f + 0.7790572732640 + 0.00273781191135448*t))
}

// GMST06 returns Greenwich mean sidereal time consistent with IAU 2006
// precession, in radians in [0, 2pi). The UT1 date fixes the Earth rotation
// angle and the TT date fixes the polynomial part; the distinction matters
// at the microarcsecond level.
func GMST06(ut1, tt Date) float64 {
	t := ((tt.D1 - J2000) + tt.D2) / DaysPerCentury

	return Anp(ERA(ut1) +
		(0.014506+
			(4612.156534+
				(1.3915817+
					(-0.00000044+
						(-0.000029956+
							(-0.0000000368)*t)*t)*t)*t)*t)*RadPerArcsec)
}

// GMST82 returns Greenwich mean sidereal time in the IAU 1982 model, in
// radians in [0, 2pi). Kept for comparison against older products; new code
// should prefer GMST06. The UT1 date drives both the rotation and the
// polynomial here, per the original convention.
func GMST82(ut1 Date) float64 {
	// Coefficients of the IAU 1982 GMST-UT1 model, with the first adjusted
	// by 12 hours because UT1 starts at noon in this formulation.
	const (
		a = 24110.54841 - SecPerDay/2.0
		b = 8640184.812866
		c = 0.093104
		d = -6.2e-6
	)

	d1, d2 := ut1.D1, ut1.D2
	if d1 >= d2 {
		d1, d2 = d2, d1
	}

	t := (d1 + (d2 - J2000)) / DaysPerCentury

	// Fractional part of JD(UT1), in seconds.
	f := SecPerDay * (math.Mod(d1, 1.0) + math.Mod(d2, 1.0))

	return Anp(RadPerTimeSec * ((a + (b+(c+d*t)*t)*t) + f))
}

// GST06 returns Greenwich apparent sidereal time for a UT1/TT epoch pair and
// a supplied classical nutation x precession x bias matrix, in radians in
// [0, 2pi). Passing the matrix lets callers reuse one they already hold.
func GST06(ut1, tt Date, rnpb Mat3) float64 {
	x, y := CIPXY(rnpb)
	s := CIOLocator(tt, x, y)
	return Anp(ERA(ut1) - EqOrigins(rnpb, s))
}

// GST06A returns Greenwich apparent sidereal time consistent with the IAU
// 2006 precession and abridged 2000A nutation, computing the orientation
// matrix internally.
func GST06A(ut1, tt Date) (float64, error) {
	rnpb, err := PrecNutMatrix(ModelIAU2006A, tt)
	if err != nil {
		return 0, err
	}
	return GST06(ut1, tt, rnpb), nil
}
