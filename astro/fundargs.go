package astro

import "math"

// Fundamental arguments of the Sun, Moon and planets, IERS Conventions
// (2003), after Simon et al. (1994) and Souchay et al. (1999). The argument t
// is TDB in Julian centuries since J2000.0; TT is an acceptable substitute.
// Each expression is evaluated in the published nested order.

// FundArgLunarAnomaly returns l, the mean anomaly of the Moon, in radians.
func FundArgLunarAnomaly(t float64) float64 {
	return math.Mod(485868.249036+
		t*(1717915923.2178+
			t*(31.8792+
				t*(0.051635+
					t*(-0.00024470)))), ArcsecPerTurn) * RadPerArcsec
}

// FundArgSolarAnomaly returns l', the mean anomaly of the Sun, in radians.
func FundArgSolarAnomaly(t float64) float64 {
	return math.Mod(1287104.793048+
		t*(129596581.0481+
			t*(-0.5532+
				t*(0.000136+
					t*(-0.00001149)))), ArcsecPerTurn) * RadPerArcsec
}

// FundArgMoonLongitude returns F, the mean longitude of the Moon minus that
// of its ascending node, in radians.
func FundArgMoonLongitude(t float64) float64 {
	return math.Mod(335779.526232+
		t*(1739527262.8478+
			t*(-12.7512+
				t*(-0.001037+
					t*(0.00000417)))), ArcsecPerTurn) * RadPerArcsec
}

// FundArgElongation returns D, the mean elongation of the Moon from the Sun,
// in radians.
func FundArgElongation(t float64) float64 {
	return math.Mod(1072260.703692+
		t*(1602961601.2090+
			t*(-6.3706+
				t*(0.006593+
					t*(-0.00003169)))), ArcsecPerTurn) * RadPerArcsec
}

// FundArgMoonNode returns Omega, the mean longitude of the Moon's ascending
// node, in radians.
func FundArgMoonNode(t float64) float64 {
	return math.Mod(450160.398036+
		t*(-6962890.5431+
			t*(7.4722+
				t*(0.007702+
					t*(-0.00005939)))), ArcsecPerTurn) * RadPerArcsec
}

// FundArgMercury returns the mean longitude of Mercury in radians.
func FundArgMercury(t float64) float64 {
	return math.Mod(4.402608842+2608.7903141574*t, TwoPi)
}

// FundArgVenus returns the mean longitude of Venus in radians.
func FundArgVenus(t float64) float64 {
	return math.Mod(3.176146697+1021.3285546211*t, TwoPi)
}

// FundArgEarth returns the mean longitude of Earth in radians.
func FundArgEarth(t float64) float64 {
	return math.Mod(1.753470314+628.3075849991*t, TwoPi)
}

// FundArgMars returns the mean longitude of Mars in radians.
func FundArgMars(t float64) float64 {
	return math.Mod(6.203480913+334.0612426700*t, TwoPi)
}

// FundArgJupiter returns the mean longitude of Jupiter in radians.
func FundArgJupiter(t float64) float64 {
	return math.Mod(0.599546497+52.9690962641*t, TwoPi)
}

// FundArgSaturn returns the mean longitude of Saturn in radians.
func FundArgSaturn(t float64) float64 {
	return math.Mod(0.874016757+21.3299104960*t, TwoPi)
}

// FundArgUranus returns the mean longitude of Uranus in radians.
func FundArgUranus(t float64) float64 {
	return math.Mod(5.481293872+7.4781598567*t, TwoPi)
}

// FundArgPrecession returns the general accumulated precession in longitude,
// in radians (Kinoshita & Souchay 1990, after Lieske et al. 1977).
func FundArgPrecession(t float64) float64 {
	return (0.024381750 + 0.00000538691*t) * t
}
