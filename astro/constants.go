// Package astro implements fundamental-astronomy routines: time-scale
// conversions, Earth rotation and sidereal time, precession-nutation-bias
// frame construction, and the coordinate/vector utilities they are built on.
// Conventions (two-part Julian dates, summation order, warning semantics)
// follow the SOFA/ERFA family so results are directly comparable.
package astro

// Physical and astronomical constants. Values carry the full printed
// precision of the IAU/IERS sources; do not round them.
const (
	// TwoPi is 2*pi.
	TwoPi = 6.283185307179586476925287

	// DegPerRad converts radians to degrees.
	DegPerRad = 57.29577951308232087679815

	// RadPerDeg converts degrees to radians.
	RadPerDeg = 1.745329251994329576923691e-2

	// ArcsecPerRad converts radians to arcseconds.
	ArcsecPerRad = 206264.8062470963551564734

	// RadPerArcsec converts arcseconds to radians.
	RadPerArcsec = 4.848136811095359935899141e-6

	// RadPerTimeSec converts seconds of time to radians.
	RadPerTimeSec = 7.272205216643039903848712e-5

	// ArcsecPerTurn is the number of arcseconds in a full circle.
	ArcsecPerTurn = 1296000.0

	// SecPerDay is the number of SI seconds per day.
	SecPerDay = 86400.0

	// DaysPerYear is the length of the Julian year in days.
	DaysPerYear = 365.25

	// DaysPerCentury is the length of the Julian century in days.
	DaysPerCentury = 36525.0

	// DaysPerMillennium is the length of the Julian millennium in days.
	DaysPerMillennium = 365250.0

	// J2000 is the reference epoch J2000.0 as a Julian Date.
	J2000 = 2451545.0

	// MJDZero is the Julian Date of Modified Julian Date zero.
	MJDZero = 2400000.5

	// MJDJ2000 is the reference epoch J2000.0 as a Modified Julian Date.
	MJDJ2000 = 51544.5

	// MJD1977 is 1977 January 1.0 as a Modified Julian Date.
	MJD1977 = 43144.0

	// TTMinusTAI is TT-TAI in seconds.
	TTMinusTAI = 32.184

	// AUMeters is the astronomical unit in meters (IAU 2012).
	AUMeters = 149597870.7e3

	// LightSpeed is the speed of light in m/s.
	LightSpeed = 299792458.0

	// LightTimeAU is the light time for 1 au in seconds.
	LightTimeAU = AUMeters / LightSpeed

	// LightSpeedAUDay is the speed of light in au per day.
	LightSpeedAUDay = SecPerDay / LightTimeAU

	// LG is 1 - d(TT)/d(TCG).
	LG = 6.969290134e-10

	// LB is 1 - d(TDB)/d(TCB).
	LB = 1.550519768e-8

	// TDB0 is TDB-TCB in seconds at TAI 1977 January 1.0.
	TDB0 = -6.55e-5
)
