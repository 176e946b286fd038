package astro

import "math"

// S2C converts spherical coordinates (longitude theta, latitude phi, both
// radians) to a unit direction vector.
func S2C(theta, phi float64) Vec3 {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return Vec3{cp * ct, cp * st, sp}
}

// C2S converts a direction vector to spherical coordinates (longitude,
// latitude, radians). The vector need not be unit length. A vector on the
// polar axis gives longitude zero; the null vector gives zero for both.
func C2S(p Vec3) (theta, phi float64) {
	d2 := p.X*p.X + p.Y*p.Y
	if d2 == 0.0 {
		theta = 0.0
	} else {
		theta = math.Atan2(p.Y, p.X)
	}
	if p.Z == 0.0 {
		phi = 0.0
	} else {
		phi = math.Atan2(p.Z, math.Sqrt(d2))
	}
	return theta, phi
}

// PV is a position and velocity pair. Units are the caller's affair except
// where a function states them (the star routines use AU and AU/day).
type PV struct {
	P, V Vec3
}

// Advance propagates the position along the velocity for dt (in the time
// unit the velocity is expressed in), leaving the velocity unchanged.
func (pv PV) Advance(dt float64) PV {
	return PV{pv.P.Add(pv.V.Scale(dt)), pv.V}
}

// S2PV converts spherical position and velocity (longitude theta, latitude
// phi, radial distance r, and their derivatives td, pd, rd) to a Cartesian
// position-velocity pair.
func S2PV(theta, phi, r, td, pd, rd float64) PV {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	rcp := r * cp
	x := rcp * ct
	y := rcp * st
	rpd := r * pd
	w := rpd*sp - cp*rd

	return PV{
		P: Vec3{x, y, r * sp},
		V: Vec3{-y*td - w*ct, x*td - w*st, rpd*cp + sp*rd},
	}
}

// PV2S converts a Cartesian position-velocity pair to spherical coordinates
// and their derivatives. If the position is the null vector the origin is
// notionally moved along the direction of motion so that the angles remain
// meaningful; if position and velocity are both null, everything is zero.
func PV2S(pv PV) (theta, phi, r, td, pd, rd float64) {
	x, y, z := pv.P.X, pv.P.Y, pv.P.Z
	xd, yd, zd := pv.V.X, pv.V.Y, pv.V.Z

	rxy2 := x*x + y*y
	r2 := rxy2 + z*z
	rtrue := math.Sqrt(r2)

	rw := rtrue
	if rtrue == 0.0 {
		x, y, z = xd, yd, zd
		rxy2 = x*x + y*y
		r2 = rxy2 + z*z
		rw = math.Sqrt(r2)
	}

	rxy := math.Sqrt(rxy2)
	xyp := x*xd + y*yd
	if rxy2 != 0.0 {
		theta = math.Atan2(y, x)
		phi = math.Atan2(z, rxy)
		td = (x*yd - y*xd) / rxy2
		pd = (zd*rxy2 - z*xyp) / (r2 * rxy)
	} else {
		if z != 0.0 {
			phi = math.Atan2(z, rxy)
		}
	}
	r = rtrue
	if rw != 0.0 {
		rd = (xyp + z*zd) / rw
	}
	return theta, phi, r, td, pd, rd
}

// Sepp returns the angular separation between two vectors, in radians.
// Using the cross product for the sine and the dot product for the cosine
// keeps the result accurate for separations near 0 and near pi alike.
// Either vector being null gives zero.
func Sepp(a, b Vec3) float64 {
	axb := a.Cross(b)
	ss := axb.Norm()
	cs := a.Dot(b)
	if ss != 0.0 || cs != 0.0 {
		return math.Atan2(ss, cs)
	}
	return 0.0
}

// Seps returns the angular separation between two points given in spherical
// coordinates (longitude, latitude pairs, radians).
func Seps(al1, ap1, al2, ap2 float64) float64 {
	return Sepp(S2C(al1, ap1), S2C(al2, ap2))
}

// AzElToHaDec converts horizon coordinates (azimuth north through east,
// elevation, radians) at site latitude phi to equatorial hour angle and
// declination. All latitudes are geodetic.
func AzElToHaDec(az, el, phi float64) (ha, dec float64) {
	sa, ca := math.Sincos(az)
	se, ce := math.Sincos(el)
	sp, cp := math.Sincos(phi)

	x := -ca*ce*sp + se*cp
	y := -sa * ce
	z := ca*ce*cp + se*sp

	r := math.Sqrt(x*x + y*y)
	if r != 0.0 {
		ha = math.Atan2(y, x)
	}
	dec = math.Atan2(z, r)
	return ha, dec
}

// HaDecToAzEl converts equatorial hour angle and declination to horizon
// azimuth (radians, [0, 2pi), north through east) and elevation at site
// latitude phi.
func HaDecToAzEl(ha, dec, phi float64) (az, el float64) {
	sh, ch := math.Sincos(ha)
	sd, cd := math.Sincos(dec)
	sp, cp := math.Sincos(phi)

	x := -ch*cd*sp + sd*cp
	y := -sh * cd
	z := ch*cd*cp + sd*sp

	r := math.Sqrt(x*x + y*y)
	a := 0.0
	if r != 0.0 {
		a = math.Atan2(y, x)
	}
	if a < 0.0 {
		a += TwoPi
	}
	az = a
	el = math.Atan2(z, r)
	return az, el
}

// ParallacticAngle returns the parallactic angle for an hour angle and
// declination at site latitude phi, in radians. Zero at the pole of the
// observing site.
func ParallacticAngle(ha, dec, phi float64) float64 {
	cp := math.Cos(phi)
	sqsz := cp * math.Sin(ha)
	cqsz := math.Sin(phi)*math.Cos(dec) - cp*math.Sin(dec)*math.Cos(ha)
	if sqsz != 0.0 || cqsz != 0.0 {
		return math.Atan2(sqsz, cqsz)
	}
	return 0.0
}
