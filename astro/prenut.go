package astro

import "math"

// Model selects a precession-nutation flavor. The set is fixed; an
// unrecognized selector is a domain error wherever a Model is consumed.
type Model int

const (
	// ModelIAU2006A is IAU 2006 precession with IAU 2000A nutation carrying
	// the P03 adjustments. The nutation series here is abridged (see
	// Nutation), so results track the full model to about 0.01 arcsec.
	ModelIAU2006A Model = iota

	// ModelIAU2000B is the abridged nutation with the fixed planetary
	// offsets of the IAU 2000B convention, composed on the same
	// Fukushima-Williams bias-precession. Cheaper, milliarcsecond-class.
	ModelIAU2000B
)

func (m Model) String() string {
	switch m {
	case ModelIAU2006A:
		return "IAU2006A"
	case ModelIAU2000B:
		return "IAU2000B"
	default:
		return "unknown"
	}
}

// MeanObliquity returns the mean obliquity of the ecliptic for a TT date,
// IAU 2006 precession model, in radians.
//
// Reference: Hilton, J. et al., 2006, Celest.Mech.Dyn.Astron. 94, 351.
func MeanObliquity(tt Date) float64 {
	t := ((tt.D1 - J2000) + tt.D2) / DaysPerCentury

	return (84381.406 +
		(-46.836769+
			(-0.0001831+
				(0.00200340+
					(-0.000000576+
						(-0.0000000434)*t)*t)*t)*t)*t) * RadPerArcsec
}

// PrecessionFW returns the four Fukushima-Williams precession angles
// gamma_bar, phi_bar, psi_bar and epsilon_A for a TT date, IAU 2006 (P03),
// referred directly to the GCRS pole (frame bias included), all in radians.
func PrecessionFW(tt Date) (gamb, phib, psib, epsa float64) {
	t := ((tt.D1 - J2000) + tt.D2) / DaysPerCentury

	gamb = (-0.052928 +
		(10.556378+
			(0.4932044+
				(-0.00031238+
					(-0.000002788+
						(0.0000000260)*t)*t)*t)*t)*t) * RadPerArcsec

	phib = (84381.412819 +
		(-46.811016+
			(0.0511268+
				(0.00053289+
					(-0.000000440+
						(-0.0000000176)*t)*t)*t)*t)*t) * RadPerArcsec

	psib = (-0.041775 +
		(5038.481484+
			(1.5584175+
				(-0.00018522+
					(-0.000026452+
						(-0.0000000148)*t)*t)*t)*t)*t) * RadPerArcsec

	epsa = MeanObliquity(tt)
	return gamb, phib, psib, epsa
}

// FWMatrix forms the rotation matrix for the given Fukushima-Williams angles.
// The composition order R1(-eps) R3(-psi) R1(phib) R3(gamb) is part of the
// contract: supplied with the four precession angles it gives the
// bias-precession matrix; with the nutation components added to psi and eps
// it gives the full nutation x precession x bias matrix.
func FWMatrix(gamb, phib, psi, eps float64) Mat3 {
	return Identity().Rz(gamb).Rx(phib).Rz(-psi).Rx(-eps)
}

// nutTerm is one luni-solar nutation term: multiples of the Delaunay
// arguments l, l', F, D, Om and the sine/cosine coefficients for longitude
// (sp, spt, cp) and obliquity (ce, cet, se) in units of 0.1 microarcsecond.
type nutTerm struct {
	nl, nlp, nf, nd, nom int
	sp, spt, cp          float64
	ce, cet, se          float64
}

// nutSeries holds the dominant luni-solar terms of the IAU 2000A nutation,
// every term whose longitude amplitude exceeds roughly 4 milliarcseconds.
// The truncation bounds the departure from the full 678-term series at about
// 0.01 arcsec; the fixed planetary offsets applied in nutation00 absorb the
// bulk of what the planetary series would contribute.
var nutSeries = []nutTerm{
	{0, 0, 0, 0, 1, -172064161.0, -174666.0, 33386.0, 92052331.0, 9086.0, 15377.0},
	{0, 0, 2, -2, 2, -13170906.0, -1675.0, -13696.0, 5730336.0, -3015.0, -4587.0},
	{0, 0, 2, 0, 2, -2276413.0, -234.0, 2796.0, 978459.0, -485.0, 1374.0},
	{0, 0, 0, 0, 2, 2074554.0, 207.0, -698.0, -897492.0, 470.0, -291.0},
	{0, 1, 0, 0, 0, 1475877.0, -3633.0, 11817.0, 73871.0, -184.0, -1924.0},
	{0, 1, 2, -2, 2, -516821.0, 1226.0, -524.0, 224386.0, -677.0, -174.0},
	{1, 0, 0, 0, 0, 711159.0, 73.0, -872.0, -6750.0, 0.0, 358.0},
	{0, 0, 2, 0, 1, -387298.0, -367.0, 380.0, 200728.0, 18.0, 318.0},
	{1, 0, 2, 0, 2, -301461.0, -36.0, 816.0, 129025.0, -63.0, 367.0},
	{0, -1, 2, -2, 2, 215829.0, -494.0, 111.0, -95929.0, 299.0, 132.0},
	{0, 0, 2, -2, 1, 128227.0, 137.0, 181.0, -68982.0, -9.0, 39.0},
	{-1, 0, 2, 0, 2, 123457.0, 11.0, 19.0, -53311.0, 32.0, -4.0},
	{-1, 0, 0, 2, 0, 156994.0, 10.0, -168.0, -1235.0, 0.0, 82.0},
	{1, 0, 0, 0, 1, 63110.0, 63.0, 27.0, -33228.0, 0.0, -9.0},
	{-1, 0, 0, 0, 1, -57976.0, -63.0, -189.0, 31429.0, 0.0, -75.0},
	{-1, 0, 2, 2, 2, -59641.0, -11.0, 149.0, 25543.0, -11.0, 66.0},
	{1, 0, 2, 0, 1, -51613.0, -42.0, 129.0, 26366.0, 0.0, 78.0},
	{-2, 0, 2, 0, 1, 45893.0, 50.0, 31.0, -24236.0, -10.0, 20.0},
	{0, 0, 0, 2, 0, 63384.0, 11.0, -150.0, -1220.0, 0.0, 29.0},
	{0, 0, 2, 2, 2, -38571.0, -1.0, 158.0, 16452.0, -11.0, 68.0},
}

// nutation00 evaluates the abridged IAU 2000 nutation in longitude and
// obliquity (radians) for a TT date. The luni-solar series is summed from
// the smallest term upward, matching the reference accumulation order, and
// the fixed offsets stand in for the planetary series (IAU 2000B
// convention: -0.135 mas in longitude, +0.388 mas in obliquity).
func nutation00(tt Date) (dpsi, deps float64) {
	// 0.1 microarcsecond to radians.
	const u2r = RadPerArcsec / 1e7
	// Milliarcseconds to radians.
	const mas2r = RadPerArcsec / 1e3

	t := ((tt.D1 - J2000) + tt.D2) / DaysPerCentury

	el := FundArgLunarAnomaly(t)
	elp := FundArgSolarAnomaly(t)
	f := FundArgMoonLongitude(t)
	d := FundArgElongation(t)
	om := FundArgMoonNode(t)

	var dp, de float64
	for i := len(nutSeries) - 1; i >= 0; i-- {
		tm := &nutSeries[i]
		arg := math.Mod(float64(tm.nl)*el+
			float64(tm.nlp)*elp+
			float64(tm.nf)*f+
			float64(tm.nd)*d+
			float64(tm.nom)*om, TwoPi)
		sarg, carg := math.Sincos(arg)

		dp += (tm.sp+tm.spt*t)*sarg + tm.cp*carg
		de += (tm.ce+tm.cet*t)*carg + tm.se*sarg
	}

	dpsi = dp*u2r - 0.135*mas2r
	deps = de*u2r + 0.388*mas2r
	return dpsi, deps
}

// Nutation returns the nutation components in longitude and obliquity
// (radians, with respect to the mean equinox and ecliptic of date) for a TT
// date and model flavor. For ModelIAU2006A the IAU 2000 values receive the
// P03 adjustments for the changed obliquity rate and the secular variation
// of the Earth's J2 form factor (Wallace & Capitaine 2006, Eqs. 5).
func Nutation(model Model, tt Date) (dpsi, deps float64, err error) {
	switch model {
	case ModelIAU2000B:
		dpsi, deps = nutation00(tt)
		return dpsi, deps, nil
	case ModelIAU2006A:
		t := ((tt.D1 - J2000) + tt.D2) / DaysPerCentury

		// Factor correcting for secular variation of J2.
		fj2 := -2.7774e-6 * t

		dp, de := nutation00(tt)
		dpsi = dp + dp*(0.4697e-6+fj2)
		deps = de + de*fj2
		return dpsi, deps, nil
	default:
		return 0, 0, errOf("Nutation", ErrUnsupportedModel)
	}
}

// PrecNutMatrix forms the bias-precession-nutation matrix for a TT date and
// model flavor. The matrix operates in the sense V(date) = rbpn * V(GCRS).
// Composition is nutation x precession x bias, realized by adding the
// nutation components to the Fukushima-Williams psi_bar and epsilon_A before
// forming the rotation; the order must not be altered.
func PrecNutMatrix(model Model, tt Date) (Mat3, error) {
	gamb, phib, psib, epsa := PrecessionFW(tt)
	dp, de, err := Nutation(model, tt)
	if err != nil {
		return Mat3{}, err
	}
	return FWMatrix(gamb, phib, psib+dp, epsa+de), nil
}

// PrecessionMatrix forms the bias-precession matrix (no nutation), IAU 2006,
// for a TT date. V(date) = rbp * V(GCRS).
func PrecessionMatrix(tt Date) Mat3 {
	gamb, phib, psib, epsa := PrecessionFW(tt)
	return FWMatrix(gamb, phib, psib, epsa)
}

// RotateGCRS rotates a GCRS vector into the true equatorial frame of date
// for the given TT epoch and model flavor.
func RotateGCRS(model Model, tt Date, p Vec3) (Vec3, error) {
	r, err := PrecNutMatrix(model, tt)
	if err != nil {
		return Vec3{}, err
	}
	return r.MulVec(p), nil
}

// CIPXY extracts the Celestial Intermediate Pole X,Y coordinates from a
// bias-precession-nutation matrix: the CIP unit vector is its bottom row.
func CIPXY(rbpn Mat3) (x, y float64) {
	return rbpn[2][0], rbpn[2][1]
}

// EqOrigins returns the equation of the origins (ERA minus GAST, radians)
// given the classical nutation x precession x bias matrix and the CIO
// locator s, evaluating Wallace & Capitaine (2006) expression (16).
func EqOrigins(rnpb Mat3, s float64) float64 {
	x := rnpb[2][0]
	ax := x / (1.0 + rnpb[2][2])
	xs := 1.0 - ax*x
	ys := -ax * rnpb[2][1]
	zs := -x
	p := rnpb[0][0]*xs + rnpb[0][1]*ys + rnpb[0][2]*zs
	q := rnpb[1][0]*xs + rnpb[1][1]*ys + rnpb[1][2]*zs
	if p != 0.0 || q != 0.0 {
		return s - math.Atan2(q, p)
	}
	return s
}
